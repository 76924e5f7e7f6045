package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	Id           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	DocumentType string                 `json:"document_type"`
	UploadDate   time.Time              `json:"upload_date"`
	FilePath     *string                `json:"file_path"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}
