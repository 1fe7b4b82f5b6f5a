package model

// User is read only here; rows are written by the account service.
type User struct {
	ID       string `gorm:"primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Fullname string `gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}
