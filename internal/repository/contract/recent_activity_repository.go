package contract

import (
	"context"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/repository/specification"
)

// RecentActivityRepository is append-only; there is no update or delete.
type RecentActivityRepository interface {
	Create(ctx context.Context, activity *entity.RecentActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentActivity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
