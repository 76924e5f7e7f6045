package contract

import (
	"context"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/repository/specification"
)

type ComplianceAlertRepository interface {
	Create(ctx context.Context, alert *entity.ComplianceAlert) error
	Update(ctx context.Context, alert *entity.ComplianceAlert) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceAlert, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceAlert, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
