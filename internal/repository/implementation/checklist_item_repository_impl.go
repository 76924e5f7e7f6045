package implementation

import (
	"context"
	"errors"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/mapper"
	"startup-compliance-be/internal/model"
	"startup-compliance-be/internal/repository/contract"
	"startup-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChecklistItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChecklistItemMapper
}

func NewChecklistItemRepository(db *gorm.DB) contract.ChecklistItemRepository {
	return &ChecklistItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewChecklistItemMapper(),
	}
}

func (r *ChecklistItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChecklistItemRepositoryImpl) CreateBatch(ctx context.Context, items []*entity.ChecklistItem) error {
	if len(items) == 0 {
		return nil
	}
	models := r.mapper.ToModels(items)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*items[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ChecklistItemRepositoryImpl) Update(ctx context.Context, item *entity.ChecklistItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChecklistItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChecklistItem, error) {
	var m model.ChecklistItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChecklistItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChecklistItem, error) {
	var models []*model.ChecklistItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChecklistItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChecklistItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
