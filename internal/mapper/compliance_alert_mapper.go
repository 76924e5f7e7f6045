package mapper

import (
	"time"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/model"
)

type ComplianceAlertMapper struct{}

func NewComplianceAlertMapper() *ComplianceAlertMapper {
	return &ComplianceAlertMapper{}
}

func (m *ComplianceAlertMapper) ToEntity(a *model.ComplianceAlert) *entity.ComplianceAlert {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.ComplianceAlert{
		Id:           a.Id,
		UserId:       a.UserId,
		Title:        a.Title,
		Description:  a.Description,
		DueDate:      a.DueDate,
		Status:       a.Status,
		Severity:     a.Severity,
		LinkToAction: a.LinkToAction,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ComplianceAlertMapper) ToModel(a *entity.ComplianceAlert) *model.ComplianceAlert {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.ComplianceAlert{
		Id:           a.Id,
		UserId:       a.UserId,
		Title:        a.Title,
		Description:  a.Description,
		DueDate:      a.DueDate,
		Status:       a.Status,
		Severity:     a.Severity,
		LinkToAction: a.LinkToAction,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ComplianceAlertMapper) ToEntities(alerts []*model.ComplianceAlert) []*entity.ComplianceAlert {
	entities := make([]*entity.ComplianceAlert, len(alerts))
	for i, a := range alerts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
