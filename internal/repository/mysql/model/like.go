package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// Like 一个用户对一条评论至多一条记录
type Like struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:idx_likes_comment_user,priority:1"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:idx_likes_comment_user,priority:2"`
	CreatedAt time.Time `gorm:"type:datetime(6);not null"`
}

func (Like) TableName() string {
	return "likes"
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		ID:        m.ID,
		CommentID: m.CommentID,
		UserID:    m.UserID,
	}
}
