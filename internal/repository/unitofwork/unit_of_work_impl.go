package unitofwork

import (
	"context"
	"fmt"

	"startup-compliance-be/internal/repository/contract"
	"startup-compliance-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ChecklistRepository() contract.ChecklistRepository {
	return implementation.NewChecklistRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChecklistItemRepository() contract.ChecklistItemRepository {
	return implementation.NewChecklistItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentRepository() contract.DocumentRepository {
	return implementation.NewDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RecentActivityRepository() contract.RecentActivityRepository {
	return implementation.NewRecentActivityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ComplianceAlertRepository() contract.ComplianceAlertRepository {
	return implementation.NewComplianceAlertRepository(u.getDB())
}
