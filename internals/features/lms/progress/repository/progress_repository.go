// file: internals/features/lms/progress/repository/progress_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogModel "kursusku_backend/internals/features/lms/catalog/model"
	pmodel "kursusku_backend/internals/features/lms/progress/model"
	"kursusku_backend/internals/features/lms/progress/service"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

var _ service.Store = (*ProgressRepository)(nil)

func (r *ProgressRepository) ModuleInFormation(ctx context.Context, moduleID, formationID uuid.UUID) (*catalogModel.FormationModuleModel, error) {
	var m catalogModel.FormationModuleModel
	err := r.DB.WithContext(ctx).
		First(&m, "formation_module_id = ? AND formation_module_formation_id = ?", moduleID, formationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ProgressRepository) ModulesByFormation(ctx context.Context, formationID uuid.UUID) ([]catalogModel.FormationModuleModel, error) {
	var out []catalogModel.FormationModuleModel
	err := r.DB.WithContext(ctx).
		Where("formation_module_formation_id = ?", formationID).
		Order("formation_module_order ASC").
		Find(&out).Error
	return out, err
}

func (r *ProgressRepository) ItemProgressByUserModule(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error) {
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

func (r *ProgressRepository) ItemProgressByUserFormation(ctx context.Context, userID, formationID uuid.UUID) ([]pmodel.ItemProgressModel, error) {
	var out []pmodel.ItemProgressModel
	err := r.DB.WithContext(ctx).
		Where("item_progress_user_id = ? AND item_progress_formation_id = ?", userID, formationID).
		Find(&out).Error
	return out, err
}

// ItemProgressByUserModuleForUpdate: row lock supaya dua transisi terminal
// yang balapan terserialisasi di DB, bukan di aplikasi.
func (r *ProgressRepository) ItemProgressByUserModuleForUpdate(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error) {
	var row pmodel.ItemProgressModel
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "item_progress_user_id = ? AND item_progress_module_id = ?", userID, moduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// InsertItemProgress: ON CONFLICT DO NOTHING pada (user_id, module_id).
// created=false berarti insert paralel lain menang; service me-re-read row
// pemenang dan menerapkan transisinya di situ — bukan menimpanya.
func (r *ProgressRepository) InsertItemProgress(ctx context.Context, row *pmodel.ItemProgressModel) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "item_progress_user_id"},
				{Name: "item_progress_module_id"},
			},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ProgressRepository) UpdateItemProgress(ctx context.Context, row *pmodel.ItemProgressModel) error {
	return r.DB.WithContext(ctx).Save(row).Error
}

func (r *ProgressRepository) AppendAuditLog(ctx context.Context, row *pmodel.LearningAuditLogModel) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *ProgressRepository) UpsertUserProgress(ctx context.Context, row *pmodel.UserProgressModel) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_progress_user_id"},
				{Name: "user_progress_formation_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_progress_completed_modules",
				"user_progress_total_modules",
				"user_progress_percent",
				"user_progress_updated_at",
			}),
		}).
		Create(row).Error
}

func (r *ProgressRepository) SetEnrollmentProgressPercent(ctx context.Context, userID, formationID uuid.UUID, percent float64) error {
	return r.DB.WithContext(ctx).
		Exec(`UPDATE formation_enrollments
		      SET enrollment_progress_percent = ?, enrollment_updated_at = now()
		      WHERE enrollment_user_id = ? AND enrollment_formation_id = ?`,
			percent, userID, formationID).Error
}

func (r *ProgressRepository) Transaction(ctx context.Context, fn func(service.Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ProgressRepository{DB: tx})
	})
}
