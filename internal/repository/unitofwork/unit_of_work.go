package unitofwork

import (
	"context"

	"startup-compliance-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Begin/Commit/
// Rollback bound a database transaction so a multi-write absorption either
// lands completely or not at all.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChecklistRepository() contract.ChecklistRepository
	ChecklistItemRepository() contract.ChecklistItemRepository
	DocumentRepository() contract.DocumentRepository
	RecentActivityRepository() contract.RecentActivityRepository
	ComplianceAlertRepository() contract.ComplianceAlertRepository
}
