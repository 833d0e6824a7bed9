// file: internals/features/lms/guard/repository/guard_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "kursusku_backend/internals/features/lms/catalog/model"
	enrModel "kursusku_backend/internals/features/lms/enrollments/model"
	"kursusku_backend/internals/features/lms/guard/service"
	pmodel "kursusku_backend/internals/features/lms/progress/model"
)

type GuardRepository struct {
	DB *gorm.DB
}

func NewGuardRepository(db *gorm.DB) *GuardRepository {
	return &GuardRepository{DB: db}
}

var _ service.Store = (*GuardRepository)(nil)

func (r *GuardRepository) ModuleByID(ctx context.Context, moduleID uuid.UUID) (*catalogModel.FormationModuleModel, error) {
	var m catalogModel.FormationModuleModel
	err := r.DB.WithContext(ctx).First(&m, "formation_module_id = ?", moduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GuardRepository) EnrollmentByUserFormation(ctx context.Context, userID, formationID uuid.UUID) (*enrModel.EnrollmentModel, error) {
	var e enrModel.EnrollmentModel
	err := r.DB.WithContext(ctx).
		First(&e, "enrollment_user_id = ? AND enrollment_formation_id = ?", userID, formationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GuardRepository) ReleasePolicyByModule(ctx context.Context, moduleID uuid.UUID) (*catalogModel.ModuleReleasePolicyModel, error) {
	var p catalogModel.ModuleReleasePolicyModel
	err := r.DB.WithContext(ctx).First(&p, "module_release_module_id = ?", moduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GuardRepository) PrerequisitesByModule(ctx context.Context, moduleID uuid.UUID) ([]catalogModel.ModulePrerequisiteModel, error) {
	var out []catalogModel.ModulePrerequisiteModel
	err := r.DB.WithContext(ctx).
		Where("module_prereq_module_id = ?", moduleID).
		Find(&out).Error
	return out, err
}

func (r *GuardRepository) ItemProgressByUserModule(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error) {
	var row pmodel.ItemProgressModel
	err := r.DB.WithContext(ctx).
		First(&row, "item_progress_user_id = ? AND item_progress_module_id = ?", userID, moduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
