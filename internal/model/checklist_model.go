package model

import (
	"time"

	"github.com/google/uuid"
)

type Checklist struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_checklists_owner_name"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_checklists_owner_name"`
	Progress  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Checklist) TableName() string {
	return "checklists"
}
