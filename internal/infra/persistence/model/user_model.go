package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The password column holds the argon2id PHC string.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Username      string `gorm:"type:varchar(32);uniqueIndex;not null"`
	DisplayedName string `gorm:"column:displayed_name;type:varchar(50);not null"`
	Password      string `gorm:"type:text;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Quotes []QuoteModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
