package mapper

import (
	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/model"
)

type RecentActivityMapper struct{}

func NewRecentActivityMapper() *RecentActivityMapper {
	return &RecentActivityMapper{}
}

func (m *RecentActivityMapper) ToEntity(a *model.RecentActivity) *entity.RecentActivity {
	if a == nil {
		return nil
	}

	return &entity.RecentActivity{
		Id:           a.Id,
		UserId:       a.UserId,
		ActivityType: a.ActivityType,
		Description:  a.Description,
		ReferenceId:  a.ReferenceId,
		Timestamp:    a.Timestamp,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *RecentActivityMapper) ToModel(a *entity.RecentActivity) *model.RecentActivity {
	if a == nil {
		return nil
	}

	return &model.RecentActivity{
		Id:           a.Id,
		UserId:       a.UserId,
		ActivityType: a.ActivityType,
		Description:  a.Description,
		ReferenceId:  a.ReferenceId,
		Timestamp:    a.Timestamp,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *RecentActivityMapper) ToEntities(activities []*model.RecentActivity) []*entity.RecentActivity {
	entities := make([]*entity.RecentActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
