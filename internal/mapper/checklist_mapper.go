package mapper

import (
	"time"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/model"
)

type ChecklistMapper struct{}

func NewChecklistMapper() *ChecklistMapper {
	return &ChecklistMapper{}
}

func (m *ChecklistMapper) ToEntity(c *model.Checklist) *entity.Checklist {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Checklist{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		Progress:  c.Progress,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChecklistMapper) ToModel(c *entity.Checklist) *model.Checklist {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Checklist{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		Progress:  c.Progress,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChecklistMapper) ToEntities(checklists []*model.Checklist) []*entity.Checklist {
	entities := make([]*entity.Checklist, len(checklists))
	for i, c := range checklists {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type ChecklistItemMapper struct{}

func NewChecklistItemMapper() *ChecklistItemMapper {
	return &ChecklistItemMapper{}
}

func (m *ChecklistItemMapper) ToEntity(i *model.ChecklistItem) *entity.ChecklistItem {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChecklistItem{
		Id:          i.Id,
		ChecklistId: i.ChecklistId,
		Text:        i.Text,
		Completed:   i.Completed,
		OrderIndex:  i.OrderIndex,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ChecklistItemMapper) ToModel(i *entity.ChecklistItem) *model.ChecklistItem {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.ChecklistItem{
		Id:          i.Id,
		ChecklistId: i.ChecklistId,
		Text:        i.Text,
		Completed:   i.Completed,
		OrderIndex:  i.OrderIndex,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ChecklistItemMapper) ToEntities(items []*model.ChecklistItem) []*entity.ChecklistItem {
	entities := make([]*entity.ChecklistItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}

func (m *ChecklistItemMapper) ToModels(items []*entity.ChecklistItem) []*model.ChecklistItem {
	models := make([]*model.ChecklistItem, len(items))
	for i, item := range items {
		models[i] = m.ToModel(item)
	}
	return models
}
