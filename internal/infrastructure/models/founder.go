package models

import "time"

type Founder struct {
	ID             uint    `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"type:varchar(255);not null"`
	Email          string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"`
	ContactDetails *string `gorm:"type:varchar(255)"`
	CompanyName    *string `gorm:"type:varchar(255)"`
	Industry       *string `gorm:"type:varchar(255)"`
	Role           *string `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
