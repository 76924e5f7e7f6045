package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChecklistResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Progress  int        `json:"progress"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ChecklistItemResponse struct {
	Id          uuid.UUID `json:"id"`
	ChecklistId uuid.UUID `json:"checklist_id"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	OrderIndex  int       `json:"order_index"`
}

type UpdateChecklistProgressRequest struct {
	Id       uuid.UUID `json:"-"`
	Progress int       `json:"progress" validate:"min=0,max=100"`
}

type UpdateChecklistItemRequest struct {
	Id        uuid.UUID `json:"-"`
	Completed bool      `json:"completed"`
}
