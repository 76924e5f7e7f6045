package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Document struct {
	Id           uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID          `gorm:"type:uuid;not null;index"`
	Name         string             `gorm:"type:varchar(255);not null"`
	DocumentType string             `gorm:"type:varchar(100);not null"`
	UploadDate   time.Time          `gorm:"not null"`
	FilePath     *string            `gorm:"type:text"`
	Metadata     datatypes.JSONMap  `gorm:"type:jsonb"`
	CreatedAt    time.Time          `gorm:"autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
