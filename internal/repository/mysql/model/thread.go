package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"type:datetime(6);not null"`
	// resolved from users on read
	Username string `gorm:"->;-:migration"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(t *domain.CreateThread, id string, createdAt time.Time) *Thread {
	return &Thread{
		ID:        id,
		Title:     t.Title,
		Body:      t.Body,
		Owner:     t.Owner,
		CreatedAt: createdAt,
	}
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Owner:     m.Owner,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
	}
}

func (m *Thread) ToCreated() *domain.CreatedThread {
	return &domain.CreatedThread{
		ID:    m.ID,
		Title: m.Title,
		Owner: m.Owner,
	}
}
