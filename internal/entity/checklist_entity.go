package entity

import (
	"time"

	"github.com/google/uuid"
)

type Checklist struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Progress  int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type ChecklistItem struct {
	Id          uuid.UUID
	ChecklistId uuid.UUID
	Text        string
	Completed   bool
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
