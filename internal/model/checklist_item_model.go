package model

import (
	"time"

	"github.com/google/uuid"
)

type ChecklistItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChecklistId uuid.UUID `gorm:"type:uuid;not null;index"`
	Checklist   Checklist `gorm:"foreignKey:ChecklistId;constraint:OnDelete:CASCADE"`
	Text        string    `gorm:"type:text;not null"`
	Completed   bool      `gorm:"not null;default:false"`
	OrderIndex  int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ChecklistItem) TableName() string {
	return "checklist_items"
}
