package implementation

import (
	"context"
	"errors"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/mapper"
	"startup-compliance-be/internal/model"
	"startup-compliance-be/internal/repository/contract"
	"startup-compliance-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrChecklistNameTaken signals the unique (user_id, name) index rejected a
// create. The orchestrator treats it as the already-existed outcome.
var ErrChecklistNameTaken = errors.New("checklist name already exists for this user")

type ChecklistRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChecklistMapper
}

func NewChecklistRepository(db *gorm.DB) contract.ChecklistRepository {
	return &ChecklistRepositoryImpl{
		db:     db,
		mapper: mapper.NewChecklistMapper(),
	}
}

func (r *ChecklistRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChecklistRepositoryImpl) Create(ctx context.Context, checklist *entity.Checklist) error {
	m := r.mapper.ToModel(checklist)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrChecklistNameTaken
		}
		return err
	}
	*checklist = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChecklistRepositoryImpl) Update(ctx context.Context, checklist *entity.Checklist) error {
	m := r.mapper.ToModel(checklist)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*checklist = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChecklistRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Checklist{}, id).Error
}

func (r *ChecklistRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Checklist, error) {
	var m model.Checklist
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChecklistRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Checklist, error) {
	var models []*model.Checklist
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChecklistRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Checklist{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
