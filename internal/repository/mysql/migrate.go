package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

// AutoMigrate creates or updates the forum tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Thread{},
		&model.Comment{},
		&model.Reply{},
		&model.Like{},
	)
}
