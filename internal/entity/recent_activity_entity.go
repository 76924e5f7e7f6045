package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecentActivity is append-only: entries are written once and never updated.
type RecentActivity struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	ActivityType string
	Description  string
	ReferenceId  *uuid.UUID
	Timestamp    time.Time
	CreatedAt    time.Time
}
