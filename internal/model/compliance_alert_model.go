package model

import (
	"time"

	"github.com/google/uuid"
)

type ComplianceAlert struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	DueDate      *time.Time
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"`
	Severity     string     `gorm:"type:varchar(10);not null;default:'medium'"`
	LinkToAction *string    `gorm:"type:text"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (ComplianceAlert) TableName() string {
	return "compliance_alerts"
}
