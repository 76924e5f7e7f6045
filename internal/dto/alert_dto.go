package dto

import (
	"time"

	"github.com/google/uuid"
)

type ComplianceAlertResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       string     `json:"status"`
	Severity     string     `json:"severity"`
	LinkToAction *string    `json:"link_to_action,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type UpdateAlertStatusRequest struct {
	Id     uuid.UUID `json:"-"`
	Status string    `json:"status" validate:"required,oneof=pending acknowledged resolved"`
}
