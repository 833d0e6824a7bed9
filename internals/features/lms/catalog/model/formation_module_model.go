// file: internals/features/lms/catalog/model/formation_module_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Module Type ('video','text','quiz','exercise')
============================================================================= */
type ModuleType string

const (
	ModuleTypeVideo    ModuleType = "video"
	ModuleTypeText     ModuleType = "text"
	ModuleTypeQuiz     ModuleType = "quiz"
	ModuleTypeExercise ModuleType = "exercise"
)

func (t ModuleType) String() string { return string(t) }
func (t ModuleType) Valid() bool {
	switch t {
	case ModuleTypeVideo, ModuleTypeText, ModuleTypeQuiz, ModuleTypeExercise:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (t *ModuleType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = ModuleType(v)
	case []byte:
		*t = ModuleType(string(v))
	default:
		return fmt.Errorf("unsupported type for ModuleType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid ModuleType: %q", *t)
	}
	return nil
}
func (t ModuleType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid ModuleType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   MODEL: formation_modules
============================================================================= */
type FormationModuleModel struct {
	FormationModuleID          uuid.UUID  `gorm:"column:formation_module_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"formation_module_id"`
	FormationModuleFormationID uuid.UUID  `gorm:"column:formation_module_formation_id;type:uuid;not null;index:idx_fmodule_formation_order,priority:1" json:"formation_module_formation_id"`
	FormationModuleTitle       string     `gorm:"column:formation_module_title;type:varchar(180);not null" json:"formation_module_title"`
	FormationModuleType        ModuleType `gorm:"column:formation_module_type;type:varchar(16);not null" json:"formation_module_type"`
	FormationModuleOrder       int        `gorm:"column:formation_module_order;not null;default:0;index:idx_fmodule_formation_order,priority:2" json:"formation_module_order"`

	FormationModuleCreatedAt time.Time      `gorm:"column:formation_module_created_at;not null;autoCreateTime" json:"formation_module_created_at"`
	FormationModuleUpdatedAt time.Time      `gorm:"column:formation_module_updated_at;not null;autoUpdateTime" json:"formation_module_updated_at"`
	FormationModuleDeletedAt gorm.DeletedAt `gorm:"column:formation_module_deleted_at;index" json:"formation_module_deleted_at,omitempty"`
}

func (FormationModuleModel) TableName() string { return "formation_modules" }

func (m *FormationModuleModel) IsQuiz() bool { return m.FormationModuleType == ModuleTypeQuiz }
