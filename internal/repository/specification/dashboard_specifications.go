package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedByUser scopes a query to one owner's records.
type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByName matches the reconciliation key of a checklist exactly.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByNames matches any of a set of checklist names.
type ByNames struct {
	Names []string
}

func (s ByNames) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name IN ?", s.Names)
}

type ByChecklistID struct {
	ChecklistID uuid.UUID
}

func (s ByChecklistID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("checklist_id = ?", s.ChecklistID)
}

// NotUploaded matches required documents with no file attached yet.
type NotUploaded struct{}

func (s NotUploaded) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("file_path IS NULL")
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
