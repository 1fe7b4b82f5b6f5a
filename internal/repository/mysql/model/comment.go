package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Comment struct {
	ID        string     `gorm:"primaryKey;type:varchar(50)"`
	ThreadID  string     `gorm:"column:thread_id;type:varchar(50);not null;index"`
	Content   string     `gorm:"type:text;not null"`
	Owner     string     `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time  `gorm:"type:datetime(6);not null"`
	DeletedAt *time.Time `gorm:"type:datetime(6)"`
	DeletedBy *string    `gorm:"type:varchar(50)"`
	Username  string     `gorm:"->;-:migration"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.CreateComment, id string, createdAt time.Time) *Comment {
	return &Comment{
		ID:        id,
		ThreadID:  c.ThreadID,
		Content:   c.Content,
		Owner:     c.Owner,
		CreatedAt: createdAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	c := domain.Comment{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		Content:   m.Content,
		Owner:     m.Owner,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
		DeletedAt: m.DeletedAt,
	}
	if m.DeletedBy != nil {
		c.DeletedBy = *m.DeletedBy
	}
	return c
}

func (m *Comment) ToCreated() *domain.CreatedComment {
	return &domain.CreatedComment{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}
