package models

import "time"

type Update struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Title     *string `gorm:"type:varchar(255)"`
	Content   string  `gorm:"type:text;not null"`
	ProjectID uint    `gorm:"not null;index"`
	CreatedAt time.Time
}
