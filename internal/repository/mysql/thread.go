package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

// mysql层只负责数据库操作
var _ domain.ThreadDBRepository = (*threadRepository)(nil)

// NewThreadDBRepository 创建数据库操作层
func NewThreadDBRepository(db *gorm.DB, gen IDGenerator) *threadRepository {
	return &threadRepository{DB: db, newID: gen}
}

func (m *threadRepository) CreateThread(ctx context.Context, t *domain.CreateThread) (*domain.CreatedThread, error) {
	row := model.NewThreadFromDomain(t, newID("thread", m.newID), now())
	if err := m.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.ToCreated(), nil
}

func (m *threadRepository) IsThreadExist(ctx context.Context, threadID string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id = ?", threadID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *threadRepository) GetThreadByID(ctx context.Context, threadID string) (*domain.Thread, error) {
	var row model.Thread
	err := m.DB.WithContext(ctx).
		Select("threads.*, COALESCE(users.username, threads.owner) AS username").
		Joins("LEFT JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
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

func (m *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int64) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return
}
