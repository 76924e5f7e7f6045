package contract

import (
	"context"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChecklistRepository interface {
	Create(ctx context.Context, checklist *entity.Checklist) error
	Update(ctx context.Context, checklist *entity.Checklist) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Checklist, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Checklist, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ChecklistItemRepository interface {
	// CreateBatch inserts the items in one statement, preserving the given
	// order via OrderIndex.
	CreateBatch(ctx context.Context, items []*entity.ChecklistItem) error
	Update(ctx context.Context, item *entity.ChecklistItem) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChecklistItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChecklistItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
