package mysql

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type replyRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, gen IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: gen,
	}
}

func (r *replyRepository) CreateReply(ctx context.Context, in *domain.CreateReply) (*domain.CreatedReply, error) {
	row := model.NewReplyFromDomain(in, newID("reply", r.newID), now())
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.ToCreated(), nil
}

func (r *replyRepository) GetReplyByID(ctx context.Context, replyID string) (*domain.Reply, error) {
	var row model.Reply
	err := r.DB.WithContext(ctx).Where("id = ?", replyID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res := row.ToDomain()
	return &res, nil
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.Reply, error) {
	var rows []model.Reply
	err := r.DB.WithContext(ctx).
		Select("replies.*, COALESCE(users.username, replies.owner) AS username").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.created_at ASC, replies.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, replyID string, actingUserID string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ? AND deleted_at IS NULL", replyID).
		Updates(map[string]any{
			"deleted_at": now(),
			"deleted_by": actingUserID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		logrus.Warnf("reply %s was already deleted or does not exist", replyID)
	}
	return nil
}
