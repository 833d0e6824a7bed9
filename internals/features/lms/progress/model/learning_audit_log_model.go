// file: internals/features/lms/progress/model/learning_audit_log_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   MODEL: learning_audit_logs (append-only)
   Details dipegang sebagai struct bertipe di business logic, baru
   diserialisasi ke JSONB di boundary penyimpanan.
============================================================================= */
type LearningAuditLogModel struct {
	LearningAuditID          uuid.UUID `gorm:"column:learning_audit_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"learning_audit_id"`
	LearningAuditUserID      uuid.UUID `gorm:"column:learning_audit_user_id;type:uuid;not null;index:idx_laudit_user" json:"learning_audit_user_id"`
	LearningAuditFormationID uuid.UUID `gorm:"column:learning_audit_formation_id;type:uuid;not null" json:"learning_audit_formation_id"`
	LearningAuditModuleID    uuid.UUID `gorm:"column:learning_audit_module_id;type:uuid;not null" json:"learning_audit_module_id"`

	LearningAuditEvent   string         `gorm:"column:learning_audit_event;type:varchar(16);not null" json:"learning_audit_event"`
	LearningAuditDetails datatypes.JSON `gorm:"column:learning_audit_details;type:jsonb" json:"learning_audit_details,omitempty"`

	LearningAuditCreatedAt time.Time `gorm:"column:learning_audit_created_at;not null;autoCreateTime" json:"learning_audit_created_at"`
}

func (LearningAuditLogModel) TableName() string { return "learning_audit_logs" }

// ProgressEventDetails: payload audit untuk event progress.
type ProgressEventDetails struct {
	Event        string   `json:"event"`
	TimeSpentSec int      `json:"time_spent_sec"`
	Progress     *float64 `json:"progress,omitempty"`
	Score        *float64 `json:"score,omitempty"`
}

func (m *LearningAuditLogModel) SetDetails(d ProgressEventDetails) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	m.LearningAuditDetails = datatypes.JSON(b)
	return nil
}
