package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type likeRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeDBRepository(db *gorm.DB, gen IDGenerator) *likeRepository {
	return &likeRepository{DB: db, newID: gen}
}

func (m *likeRepository) GetLikeByCommentAndUser(ctx context.Context, commentID, userID string) (*domain.Like, error) {
	var row model.Like
	err := m.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res := row.ToDomain()
	return &res, nil
}

func (m *likeRepository) CreateLike(ctx context.Context, commentID, userID string) (string, error) {
	row := &model.Like{
		ID:        newID("like", m.newID),
		CommentID: commentID,
		UserID:    userID,
		CreatedAt: now(),
	}
	err := m.DB.WithContext(ctx).Create(row).Error
	if isDuplicateKey(err) {
		return "", domain.ErrConflict
	}
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func (m *likeRepository) DeleteLike(ctx context.Context, commentID, userID string) (string, error) {
	var row model.Like
	err := m.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	result := m.DB.WithContext(ctx).Where("id = ?", row.ID).Delete(&model.Like{})
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", domain.ErrNotFound
	}
	return row.ID, nil
}

func (m *likeRepository) CountLikeByCommentID(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
