package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecentActivityResponse struct {
	Id           uuid.UUID  `json:"id"`
	ActivityType string     `json:"activity_type"`
	Description  string     `json:"description"`
	ReferenceId  *uuid.UUID `json:"reference_id,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
}

type ListActivityRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}
