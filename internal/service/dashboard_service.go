package service

import (
	"context"

	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/repository/memory"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDashboardService interface {
	Summary(ctx context.Context, userId uuid.UUID) (*dto.DashboardSummaryResponse, error)
}

type dashboardService struct {
	uowFactory   unitofwork.RepositoryFactory
	summaryCache *memory.SummaryRepository
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, summaryCache *memory.SummaryRepository) IDashboardService {
	return &dashboardService{
		uowFactory:   uowFactory,
		summaryCache: summaryCache,
	}
}

func (c *dashboardService) Summary(ctx context.Context, userId uuid.UUID) (*dto.DashboardSummaryResponse, error) {
	if cached, found := c.summaryCache.Get(userId); found {
		return cached, nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	checklistCount, err := uow.ChecklistRepository().Count(ctx,
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	checklists, err := uow.ChecklistRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	var openItems int64
	for _, checklist := range checklists {
		count, err := uow.ChecklistItemRepository().Count(ctx,
			specification.ByChecklistID{ChecklistID: checklist.Id},
			specification.Filter("completed", false),
		)
		if err != nil {
			return nil, err
		}
		openItems += count
	}

	documentCount, err := uow.DocumentRepository().Count(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.NotUploaded{},
	)
	if err != nil {
		return nil, err
	}

	alertCount, err := uow.ComplianceAlertRepository().Count(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.ByStatus{Status: entity.AlertStatusPending},
	)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryResponse{
		ChecklistCount:        checklistCount,
		OpenItemCount:         openItems,
		RequiredDocumentCount: documentCount,
		PendingAlertCount:     alertCount,
	}
	c.summaryCache.Save(userId, summary)
	return summary, nil
}
