package service

import (
	"context"

	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDocumentService interface {
	List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentResponse, error)
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
	}
}

func (c *documentService) List(ctx context.Context, userId uuid.UUID) ([]dto.DocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "upload_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DocumentResponse, len(documents))
	for i, d := range documents {
		responses[i] = dto.DocumentResponse{
			Id:           d.Id,
			Name:         d.Name,
			DocumentType: d.DocumentType,
			UploadDate:   d.UploadDate,
			FilePath:     d.FilePath,
			Metadata:     d.Metadata,
		}
	}
	return responses, nil
}
