package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is a required-document record. FilePath is nil until the owner
// uploads a matching file; Metadata carries at least status and description.
type Document struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	DocumentType string
	UploadDate   time.Time
	FilePath     *string
	Metadata     map[string]interface{}
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
