package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Reply struct {
	ID        string     `gorm:"primaryKey;type:varchar(50)"`
	ThreadID  string     `gorm:"column:thread_id;type:varchar(50);not null"`
	CommentID string     `gorm:"column:comment_id;type:varchar(50);not null;index"`
	Content   string     `gorm:"type:text;not null"`
	Owner     string     `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time  `gorm:"type:datetime(6);not null"`
	DeletedAt *time.Time `gorm:"type:datetime(6)"`
	DeletedBy *string    `gorm:"type:varchar(50)"`
	Username  string     `gorm:"->;-:migration"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(r *domain.CreateReply, id string, createdAt time.Time) *Reply {
	return &Reply{
		ID:        id,
		ThreadID:  r.ThreadID,
		CommentID: r.CommentID,
		Content:   r.Content,
		Owner:     r.Owner,
		CreatedAt: createdAt,
	}
}

func (m *Reply) ToDomain() domain.Reply {
	r := domain.Reply{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		CommentID: m.CommentID,
		Content:   m.Content,
		Owner:     m.Owner,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
		DeletedAt: m.DeletedAt,
	}
	if m.DeletedBy != nil {
		r.DeletedBy = *m.DeletedBy
	}
	return r
}

func (m *Reply) ToCreated() *domain.CreatedReply {
	return &domain.CreatedReply{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}
