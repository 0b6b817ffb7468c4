package model

import (
	"time"
)

// QuoteModel mirrors the 'quotes' table. user_id references users.id.
type QuoteModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	QuoteContent string    `gorm:"column:quote_content;type:text;not null"`
	WhoSaid      string    `gorm:"column:who_said;type:varchar(255);not null"`
	WhenWasSaid  time.Time `gorm:"column:when_was_said;type:date;not null"`
	UserID       int64     `gorm:"column:user_id;not null;index"`
	CreationDate time.Time `gorm:"column:creation_date;not null;index;autoCreateTime"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}
