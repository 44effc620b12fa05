package models

import "time"

type Project struct {
	ID                  uint    `gorm:"primaryKey;autoIncrement"`
	Name                string  `gorm:"type:varchar(255);not null"`
	Description         string  `gorm:"type:text;not null"`
	TargetAmount        float64 `gorm:"not null;default:0"`
	FundsRaised         float64 `gorm:"not null;default:0"`
	ImageURL            *string `gorm:"type:varchar(512)"`
	PDFDocumentPath     *string `gorm:"type:varchar(512)"`
	FounderID           uint    `gorm:"not null;index"`
	Deadline            time.Time
	FundingType         *string `gorm:"type:varchar(100)"`
	MinInvestment       float64 `gorm:"default:0"`
	ContactEmail        *string `gorm:"type:varchar(255)"`
	Address             *string `gorm:"type:varchar(255)"`
	Phone               *string `gorm:"type:varchar(100)"`
	PersonalizedMessage *string `gorm:"type:text"`
	MotivationLetter    *string `gorm:"type:text"`
	Category            *string `gorm:"type:varchar(100)"`
	Status              string  `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
