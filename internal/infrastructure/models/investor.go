package models

import "time"

type Investor struct {
	ID                   uint    `gorm:"primaryKey;autoIncrement"`
	Name                 string  `gorm:"type:varchar(255);not null"`
	Email                string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash         string  `gorm:"type:varchar(255);not null"`
	InvestmentFocus      *string `gorm:"type:varchar(255)"`
	InvestmentBudget     *string `gorm:"type:varchar(255)"`
	InvestmentSector     *string `gorm:"type:varchar(255)"`
	InvestmentExperience *string `gorm:"type:varchar(255)"`
	LinkedInProfile      *string `gorm:"type:varchar(255)"`
	Role                 *string `gorm:"type:varchar(100)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
