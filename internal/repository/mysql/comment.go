package mysql

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, gen IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: gen,
	}
}

func (c *commentRepository) CreateComment(ctx context.Context, in *domain.CreateComment) (*domain.CreatedComment, error) {
	row := model.NewCommentFromDomain(in, newID("comment", c.newID), now())
	if err := c.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.ToCreated(), nil
}

func (c *commentRepository) GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	var row model.Comment
	err := c.DB.WithContext(ctx).Where("id = ?", commentID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res := row.ToDomain()
	return &res, nil
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []model.Comment
	err := c.DB.WithContext(ctx).
		Select("comments.*, COALESCE(users.username, comments.owner) AS username").
		Joins("LEFT JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.created_at ASC, comments.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

// DeleteCommentByID keeps the first deletion's audit fields; deleting again is a no-op.
func (c *commentRepository) DeleteCommentByID(ctx context.Context, commentID string, actingUserID string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND deleted_at IS NULL", commentID).
		Updates(map[string]any{
			"deleted_at": now(),
			"deleted_by": actingUserID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		logrus.Warnf("comment %s was already deleted or does not exist", commentID)
	}
	return nil
}
