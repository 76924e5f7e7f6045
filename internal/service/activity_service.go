package service

import (
	"context"

	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IActivityService interface {
	List(ctx context.Context, userId uuid.UUID, req *dto.ListActivityRequest) ([]dto.RecentActivityResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
	}
}

func (c *activityService) List(ctx context.Context, userId uuid.UUID, req *dto.ListActivityRequest) ([]dto.RecentActivityResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	activities, err := uow.RecentActivityRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RecentActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = dto.RecentActivityResponse{
			Id:           a.Id,
			ActivityType: a.ActivityType,
			Description:  a.Description,
			ReferenceId:  a.ReferenceId,
			Timestamp:    a.Timestamp,
		}
	}
	return responses, nil
}
