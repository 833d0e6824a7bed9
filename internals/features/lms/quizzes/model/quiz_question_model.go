// file: internals/features/lms/quizzes/model/quiz_question_model.go
package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Question Type ('multiple_choice','true_false','open_ended')
============================================================================= */
type QuizQuestionType string

const (
	QuizQuestionTypeMultipleChoice QuizQuestionType = "multiple_choice"
	QuizQuestionTypeTrueFalse      QuizQuestionType = "true_false"
	QuizQuestionTypeOpenEnded      QuizQuestionType = "open_ended"
)

func (t QuizQuestionType) String() string { return string(t) }
func (t QuizQuestionType) Valid() bool {
	switch t {
	case QuizQuestionTypeMultipleChoice, QuizQuestionTypeTrueFalse, QuizQuestionTypeOpenEnded:
		return true
	default:
		return false
	}
}

func (t *QuizQuestionType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = QuizQuestionType(v)
	case []byte:
		*t = QuizQuestionType(string(v))
	default:
		return fmt.Errorf("unsupported type for QuizQuestionType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid QuizQuestionType: %q", *t)
	}
	return nil
}
func (t QuizQuestionType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid QuizQuestionType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   MODEL: quiz_questions
   Kunci jawaban ditetapkan PER TIPE saat authoring:
   - multiple_choice / true_false → quiz_question_correct_index
   - open_ended                  → quiz_question_correct_text
   Tidak ada lagi kolom "correct" ganda makna yang diparse defensif saat grading.
============================================================================= */
type QuizQuestionModel struct {
	QuizQuestionID     uuid.UUID        `gorm:"column:quiz_question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_question_id"`
	QuizQuestionQuizID uuid.UUID        `gorm:"column:quiz_question_quiz_id;type:uuid;not null;index:idx_qquestion_quiz_order,priority:1" json:"quiz_question_quiz_id"`
	QuizQuestionType   QuizQuestionType `gorm:"column:quiz_question_type;type:varchar(16);not null" json:"quiz_question_type"`
	QuizQuestionText   string           `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`

	// Opsi untuk multiple_choice; true_false implisit ["Benar","Salah"] boleh kosong
	QuizQuestionOptions pq.StringArray `gorm:"column:quiz_question_options;type:text[]" json:"quiz_question_options,omitempty"`

	QuizQuestionCorrectIndex *int    `gorm:"column:quiz_question_correct_index" json:"quiz_question_correct_index,omitempty"`
	QuizQuestionCorrectText  *string `gorm:"column:quiz_question_correct_text;type:text" json:"quiz_question_correct_text,omitempty"`
	QuizQuestionExplanation  *string `gorm:"column:quiz_question_explanation;type:text" json:"quiz_question_explanation,omitempty"`

	QuizQuestionPoints float64 `gorm:"column:quiz_question_points;type:numeric(6,2);not null;default:1" json:"quiz_question_points"`
	QuizQuestionOrder  int     `gorm:"column:quiz_question_order;not null;default:0;index:idx_qquestion_quiz_order,priority:2" json:"quiz_question_order"`

	QuizQuestionCreatedAt time.Time      `gorm:"column:quiz_question_created_at;not null;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time      `gorm:"column:quiz_question_updated_at;not null;autoUpdateTime" json:"quiz_question_updated_at"`
	QuizQuestionDeletedAt gorm.DeletedAt `gorm:"column:quiz_question_deleted_at" json:"quiz_question_deleted_at,omitempty"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

// ------------------------
// Helpers
// ------------------------

func (m *QuizQuestionModel) IsOpenEnded() bool { return m.QuizQuestionType == QuizQuestionTypeOpenEnded }
func (m *QuizQuestionModel) IsChoice() bool {
	return m.QuizQuestionType == QuizQuestionTypeMultipleChoice || m.QuizQuestionType == QuizQuestionTypeTrueFalse
}

// CorrectChoice: index jawaban benar utk multiple_choice/true_false.
func (m *QuizQuestionModel) CorrectChoice() (int, bool) {
	if !m.IsChoice() || m.QuizQuestionCorrectIndex == nil {
		return 0, false
	}
	return *m.QuizQuestionCorrectIndex, true
}

// CorrectText: kanonik jawaban benar utk open_ended.
func (m *QuizQuestionModel) CorrectText() (string, bool) {
	if !m.IsOpenEnded() || m.QuizQuestionCorrectText == nil {
		return "", false
	}
	return *m.QuizQuestionCorrectText, true
}

// ValidateAnswerKey: pastikan varian kunci cocok dengan tipe soal.
func (m *QuizQuestionModel) ValidateAnswerKey() error {
	switch m.QuizQuestionType {
	case QuizQuestionTypeMultipleChoice:
		if m.QuizQuestionCorrectIndex == nil {
			return errors.New("multiple_choice butuh correct_index")
		}
		if *m.QuizQuestionCorrectIndex < 0 || *m.QuizQuestionCorrectIndex >= len(m.QuizQuestionOptions) {
			return errors.New("correct_index di luar range options")
		}
	case QuizQuestionTypeTrueFalse:
		if m.QuizQuestionCorrectIndex == nil {
			return errors.New("true_false butuh correct_index")
		}
		if *m.QuizQuestionCorrectIndex != 0 && *m.QuizQuestionCorrectIndex != 1 {
			return errors.New("correct_index true_false harus 0 atau 1")
		}
	case QuizQuestionTypeOpenEnded:
		if m.QuizQuestionCorrectText == nil || *m.QuizQuestionCorrectText == "" {
			return errors.New("open_ended butuh correct_text")
		}
	default:
		return fmt.Errorf("tipe soal tidak dikenal: %q", m.QuizQuestionType)
	}
	return nil
}
