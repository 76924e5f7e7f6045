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

type ComplianceAlertRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComplianceAlertMapper
}

func NewComplianceAlertRepository(db *gorm.DB) contract.ComplianceAlertRepository {
	return &ComplianceAlertRepositoryImpl{
		db:     db,
		mapper: mapper.NewComplianceAlertMapper(),
	}
}

func (r *ComplianceAlertRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComplianceAlertRepositoryImpl) Create(ctx context.Context, alert *entity.ComplianceAlert) error {
	m := r.mapper.ToModel(alert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceAlertRepositoryImpl) Update(ctx context.Context, alert *entity.ComplianceAlert) error {
	m := r.mapper.ToModel(alert)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceAlertRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceAlert, error) {
	var m model.ComplianceAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComplianceAlertRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceAlert, error) {
	var models []*model.ComplianceAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComplianceAlertRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ComplianceAlert{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
