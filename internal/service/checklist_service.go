package service

import (
	"context"
	"time"

	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IChecklistService interface {
	List(ctx context.Context, userId uuid.UUID) ([]dto.ChecklistResponse, error)
	Items(ctx context.Context, userId uuid.UUID, checklistId uuid.UUID) ([]dto.ChecklistItemResponse, error)
	UpdateProgress(ctx context.Context, userId uuid.UUID, req *dto.UpdateChecklistProgressRequest) (*dto.ChecklistResponse, error)
	UpdateItem(ctx context.Context, userId uuid.UUID, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error)
}

type checklistService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChecklistService(uowFactory unitofwork.RepositoryFactory) IChecklistService {
	return &checklistService{
		uowFactory: uowFactory,
	}
}

func (c *checklistService) List(ctx context.Context, userId uuid.UUID) ([]dto.ChecklistResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	checklists, err := uow.ChecklistRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ChecklistResponse, len(checklists))
	for i, checklist := range checklists {
		responses[i] = dto.ChecklistResponse{
			Id:        checklist.Id,
			Name:      checklist.Name,
			Progress:  checklist.Progress,
			CreatedAt: checklist.CreatedAt,
			UpdatedAt: checklist.UpdatedAt,
		}
	}
	return responses, nil
}

func (c *checklistService) Items(ctx context.Context, userId uuid.UUID, checklistId uuid.UUID) ([]dto.ChecklistItemResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Ownership check before exposing items.
	checklist, err := uow.ChecklistRepository().FindOne(ctx,
		specification.ByID{ID: checklistId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, nil
	}

	items, err := uow.ChecklistItemRepository().FindAll(ctx,
		specification.ByChecklistID{ChecklistID: checklistId},
		specification.OrderBy{Field: "order_index"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ChecklistItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.ChecklistItemResponse{
			Id:          item.Id,
			ChecklistId: item.ChecklistId,
			Text:        item.Text,
			Completed:   item.Completed,
			OrderIndex:  item.OrderIndex,
		}
	}
	return responses, nil
}

func (c *checklistService) UpdateProgress(ctx context.Context, userId uuid.UUID, req *dto.UpdateChecklistProgressRequest) (*dto.ChecklistResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	checklist, err := uow.ChecklistRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, nil
	}

	now := time.Now()
	checklist.Progress = req.Progress
	checklist.UpdatedAt = &now

	if err := uow.ChecklistRepository().Update(ctx, checklist); err != nil {
		return nil, err
	}

	return &dto.ChecklistResponse{
		Id:        checklist.Id,
		Name:      checklist.Name,
		Progress:  checklist.Progress,
		CreatedAt: checklist.CreatedAt,
		UpdatedAt: checklist.UpdatedAt,
	}, nil
}

func (c *checklistService) UpdateItem(ctx context.Context, userId uuid.UUID, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ChecklistItemRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	// The item row has no owner column; verify through its checklist.
	checklist, err := uow.ChecklistRepository().FindOne(ctx,
		specification.ByID{ID: item.ChecklistId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, nil
	}

	now := time.Now()
	item.Completed = req.Completed
	item.UpdatedAt = &now

	if err := uow.ChecklistItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	return &dto.ChecklistItemResponse{
		Id:          item.Id,
		ChecklistId: item.ChecklistId,
		Text:        item.Text,
		Completed:   item.Completed,
		OrderIndex:  item.OrderIndex,
	}, nil
}
