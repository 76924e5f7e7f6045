package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AlertStatusPending      = "pending"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"

	AlertSeverityLow    = "low"
	AlertSeverityMedium = "medium"
	AlertSeverityHigh   = "high"
)

type ComplianceAlert struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Title        string
	Description  string
	DueDate      *time.Time
	Status       string
	Severity     string
	LinkToAction *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
