package implementation

import (
	"context"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/mapper"
	"startup-compliance-be/internal/model"
	"startup-compliance-be/internal/repository/contract"
	"startup-compliance-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RecentActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecentActivityMapper
}

func NewRecentActivityRepository(db *gorm.DB) contract.RecentActivityRepository {
	return &RecentActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecentActivityMapper(),
	}
}

func (r *RecentActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecentActivityRepositoryImpl) Create(ctx context.Context, activity *entity.RecentActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecentActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentActivity, error) {
	var models []*model.RecentActivity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecentActivityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RecentActivity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
