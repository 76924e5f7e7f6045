package model

import (
	"time"

	"github.com/google/uuid"
)

type RecentActivity struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActivityType string     `gorm:"type:varchar(100);not null"`
	Description  string     `gorm:"type:text;not null"`
	ReferenceId  *uuid.UUID `gorm:"type:uuid"`
	Timestamp    time.Time  `gorm:"not null;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (RecentActivity) TableName() string {
	return "recent_activity"
}
