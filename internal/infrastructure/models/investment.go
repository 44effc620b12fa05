package models

import "time"

type Investment struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	Amount     float64 `gorm:"not null"`
	InvestorID uint    `gorm:"not null;index"`
	ProjectID  uint    `gorm:"not null;index"`
	CreatedAt  time.Time
}
