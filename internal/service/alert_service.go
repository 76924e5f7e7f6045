package service

import (
	"context"
	"time"

	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAlertService interface {
	List(ctx context.Context, userId uuid.UUID) ([]dto.ComplianceAlertResponse, error)
	UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateAlertStatusRequest) (*dto.ComplianceAlertResponse, error)
}

type alertService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAlertService(uowFactory unitofwork.RepositoryFactory) IAlertService {
	return &alertService{
		uowFactory: uowFactory,
	}
}

func (c *alertService) List(ctx context.Context, userId uuid.UUID) ([]dto.ComplianceAlertResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	alerts, err := uow.ComplianceAlertRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ComplianceAlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = dto.ComplianceAlertResponse{
			Id:           a.Id,
			Title:        a.Title,
			Description:  a.Description,
			DueDate:      a.DueDate,
			Status:       a.Status,
			Severity:     a.Severity,
			LinkToAction: a.LinkToAction,
			CreatedAt:    a.CreatedAt,
		}
	}
	return responses, nil
}

func (c *alertService) UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateAlertStatusRequest) (*dto.ComplianceAlertResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	alert, err := uow.ComplianceAlertRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, nil
	}

	now := time.Now()
	alert.Status = req.Status
	alert.UpdatedAt = &now

	if err := uow.ComplianceAlertRepository().Update(ctx, alert); err != nil {
		return nil, err
	}

	return &dto.ComplianceAlertResponse{
		Id:           alert.Id,
		Title:        alert.Title,
		Description:  alert.Description,
		DueDate:      alert.DueDate,
		Status:       alert.Status,
		Severity:     alert.Severity,
		LinkToAction: alert.LinkToAction,
		CreatedAt:    alert.CreatedAt,
	}, nil
}
