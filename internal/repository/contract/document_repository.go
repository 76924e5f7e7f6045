package contract

import (
	"context"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/repository/specification"
)

type DocumentRepository interface {
	CreateBatch(ctx context.Context, documents []*entity.Document) error
	Update(ctx context.Context, document *entity.Document) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
