// file: internals/features/lms/progress/service/progress_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	catalogModel "kursusku_backend/internals/features/lms/catalog/model"
	pmodel "kursusku_backend/internals/features/lms/progress/model"
)

/* =========================================================
   STORE (diimplementasikan repository GORM; fake di test)
   Konvensi: lookup yang tidak ketemu mengembalikan (nil, nil).
========================================================= */

type Store interface {
	ModuleInFormation(ctx context.Context, moduleID, formationID uuid.UUID) (*catalogModel.FormationModuleModel, error)
	ModulesByFormation(ctx context.Context, formationID uuid.UUID) ([]catalogModel.FormationModuleModel, error)

	ItemProgressByUserModule(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error)
	// ItemProgressByUserModuleForUpdate me-lock row (FOR UPDATE) — panggil di dalam Transaction.
	ItemProgressByUserModuleForUpdate(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error)
	ItemProgressByUserFormation(ctx context.Context, userID, formationID uuid.UUID) ([]pmodel.ItemProgressModel, error)

	// InsertItemProgress memakai ON CONFLICT DO NOTHING pada (user_id, module_id);
	// created=false berarti row pemenang lain baru saja commit — caller wajib
	// re-read lalu menerapkan transisinya di atas row tersebut.
	InsertItemProgress(ctx context.Context, row *pmodel.ItemProgressModel) (created bool, err error)
	UpdateItemProgress(ctx context.Context, row *pmodel.ItemProgressModel) error
	AppendAuditLog(ctx context.Context, row *pmodel.LearningAuditLogModel) error

	UpsertUserProgress(ctx context.Context, row *pmodel.UserProgressModel) error
	SetEnrollmentProgressPercent(ctx context.Context, userID, formationID uuid.UUID, percent float64) error

	Transaction(ctx context.Context, fn func(Store) error) error
}

// CertificateIssuer dipanggil Aggregator saat progress mencapai 100%.
type CertificateIssuer interface {
	Issue(ctx context.Context, userID, formationID uuid.UUID) error
}

/* =========================================================
   SERVICE
========================================================= */

// Kontribusi time_spent per event di-clamp supaya klien nakal tidak
// menggelembungkan statistik.
const maxTimeSpentPerEventSec = 600

type ProgressService struct {
	Store  Store
	Issuer CertificateIssuer
	Now    func() time.Time
}

func NewProgressService(store Store, issuer CertificateIssuer) *ProgressService {
	return &ProgressService{Store: store, Issuer: issuer, Now: time.Now}
}

/* =========================================================
   INPUT SUBMIT EVENT
========================================================= */

type SubmitEventInput struct {
	UserID      uuid.UUID
	FormationID uuid.UUID
	ModuleID    uuid.UUID
	Event       pmodel.ProgressEventType

	// Payload "data" opsional dari klien
	TimeSpentSec int
	Progress     *float64
	Score        *float64
}

/* =========================================================
   PUBLIC API: SubmitEvent
========================================================= */

// SubmitEvent:
// - validasi module ∈ formation
// - terapkan transition table pada row ItemProgress (dibuat lazy); row yang
//   sudah ada di-lock FOR UPDATE, insert pertama yang kalah race di-re-read
// - akumulasi time_spent (clamp per event)
// - tulis progress + audit log dalam 1 transaksi
// - lalu panggil Aggregator secara sinkron (read-after-write)
func (s *ProgressService) SubmitEvent(ctx context.Context, in *SubmitEventInput) error {
	if in == nil {
		return fiber.NewError(fiber.StatusBadRequest, "input kosong")
	}
	if !in.Event.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "event tidak dikenal")
	}

	now := s.Now()

	err := s.Store.Transaction(ctx, func(tx Store) error {
		module, err := tx.ModuleInFormation(ctx, in.ModuleID, in.FormationID)
		if err != nil {
			return err
		}
		if module == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Module tidak ditemukan pada formation tersebut")
		}

		// FOR UPDATE menserialisasi dua transisi terminal pada row yang sama;
		// race pada insert pertama ditangkap ON CONFLICT di bawah.
		row, err := tx.ItemProgressByUserModuleForUpdate(ctx, in.UserID, in.ModuleID)
		if err != nil {
			return err
		}
		if row == nil {
			// dibuat lazy saat event pertama
			fresh := &pmodel.ItemProgressModel{
				ItemProgressUserID:      in.UserID,
				ItemProgressModuleID:    in.ModuleID,
				ItemProgressFormationID: in.FormationID,
				ItemProgressStatus:      pmodel.ItemProgressNotStarted,
			}
			applyTransition(fresh, in, now)
			fresh.ItemProgressTimeSpentSec = clampTimeSpent(in.TimeSpentSec)
			fresh.ItemProgressLastEventAt = now

			created, err := tx.InsertItemProgress(ctx, fresh)
			if err != nil {
				return err
			}
			if !created {
				// request paralel menang; terapkan transisi di atas row commit-nya
				// supaya status terminal (PASSED/COMPLETED) tidak tertimpa diam-diam
				row, err = tx.ItemProgressByUserModuleForUpdate(ctx, in.UserID, in.ModuleID)
				if err != nil {
					return err
				}
				if row == nil {
					return fiber.NewError(fiber.StatusConflict, "Progress sedang ditulis, coba lagi")
				}
			}
		}
		if row != nil {
			applyTransition(row, in, now)
			row.ItemProgressTimeSpentSec += clampTimeSpent(in.TimeSpentSec)
			row.ItemProgressLastEventAt = now
			if err := tx.UpdateItemProgress(ctx, row); err != nil {
				return err
			}
		}

		audit := &pmodel.LearningAuditLogModel{
			LearningAuditUserID:      in.UserID,
			LearningAuditFormationID: in.FormationID,
			LearningAuditModuleID:    in.ModuleID,
			LearningAuditEvent:       in.Event.String(),
		}
		if err := audit.SetDetails(pmodel.ProgressEventDetails{
			Event:        in.Event.String(),
			TimeSpentSec: in.TimeSpentSec,
			Progress:     in.Progress,
			Score:        in.Score,
		}); err != nil {
			return err
		}
		return tx.AppendAuditLog(ctx, audit)
	})
	if err != nil {
		return err
	}

	// Aggregator best-effort terhadap request pemicu: gagal → log saja.
	if err := s.Recompute(ctx, in.UserID, in.FormationID); err != nil {
		log.Printf("[ProgressService] recompute gagal (diabaikan). user_id=%s formation_id=%s err=%v", in.UserID, in.FormationID, err)
	}
	return nil
}

// applyTransition menerapkan transition table ItemProgress.
// COMPLETED dan PASSED tidak pernah diturunkan otomatis oleh event apa pun;
// FAILED boleh dimasuki ulang (retake).
func applyTransition(row *pmodel.ItemProgressModel, in *SubmitEventInput, now time.Time) {
	switch in.Event {
	case pmodel.ProgressEventStart:
		if row.ItemProgressStatus == pmodel.ItemProgressNotStarted {
			row.ItemProgressStatus = pmodel.ItemProgressInProgress
		}
		// started_at di-set sekali, tidak pernah di-overwrite
		if row.ItemProgressStartedAt == nil {
			t := now
			row.ItemProgressStartedAt = &t
		}

	case pmodel.ProgressEventProgress:
		// hanya upgrade dari not_started; tidak pernah downgrade
		if row.ItemProgressStatus == pmodel.ItemProgressNotStarted {
			row.ItemProgressStatus = pmodel.ItemProgressInProgress
		}

	case pmodel.ProgressEventComplete:
		if row.ItemProgressStatus == pmodel.ItemProgressPassed {
			return
		}
		row.ItemProgressStatus = pmodel.ItemProgressCompleted
		t := now
		row.ItemProgressCompletedAt = &t

	case pmodel.ProgressEventPassed, pmodel.ProgressEventFailed:
		passed := in.Event == pmodel.ProgressEventPassed
		if !passed && row.ItemProgressStatus.CountsAsCompleted() {
			// failed tidak menurunkan completed/passed
			return
		}
		if passed {
			row.ItemProgressStatus = pmodel.ItemProgressPassed
		} else {
			row.ItemProgressStatus = pmodel.ItemProgressFailed
		}
		row.ItemProgressPassed = &passed
		t := now
		row.ItemProgressCompletedAt = &t
		if in.Score != nil {
			row.ItemProgressScore = in.Score
		}
	}
}

func clampTimeSpent(sec int) int {
	if sec < 0 {
		return 0
	}
	if sec > maxTimeSpentPerEventSec {
		return maxTimeSpentPerEventSec
	}
	return sec
}

/* =========================================================
   PUBLIC API: RecordQuizResult
   Dipakai Quiz Session Engine setelah grading commit.
========================================================= */

func (s *ProgressService) RecordQuizResult(ctx context.Context, userID, formationID, moduleID uuid.UUID, score float64, passed bool) error {
	ev := pmodel.ProgressEventFailed
	if passed {
		ev = pmodel.ProgressEventPassed
	}
	return s.SubmitEvent(ctx, &SubmitEventInput{
		UserID:      userID,
		FormationID: formationID,
		ModuleID:    moduleID,
		Event:       ev,
		Score:       &score,
	})
}

/* =========================================================
   PUBLIC API: Recompute (Aggregator)
========================================================= */

// Recompute agregasi module-level → formation-level. Idempoten: tanpa
// perubahan ItemProgress, hasilnya identik dan sertifikat tetap satu.
func (s *ProgressService) Recompute(ctx context.Context, userID, formationID uuid.UUID) error {
	var reached100 bool

	err := s.Store.Transaction(ctx, func(tx Store) error {
		modules, err := tx.ModulesByFormation(ctx, formationID)
		if err != nil {
			return err
		}
		if len(modules) == 0 {
			// formation kosong: tidak ada yang bisa diagregasi
			return nil
		}

		rows, err := tx.ItemProgressByUserFormation(ctx, userID, formationID)
		if err != nil {
			return err
		}
		byModule := make(map[uuid.UUID]pmodel.ItemProgressStatus, len(rows))
		for _, r := range rows {
			byModule[r.ItemProgressModuleID] = r.ItemProgressStatus
		}

		completed := 0
		for _, m := range modules {
			if byModule[m.FormationModuleID].CountsAsCompleted() {
				completed++
			}
		}
		percent := float64(completed) / float64(len(modules)) * 100

		if err := tx.UpsertUserProgress(ctx, &pmodel.UserProgressModel{
			UserProgressUserID:           userID,
			UserProgressFormationID:      formationID,
			UserProgressCompletedModules: completed,
			UserProgressTotalModules:     len(modules),
			UserProgressPercent:          percent,
		}); err != nil {
			return err
		}

		// denormalized read path untuk dashboard
		if err := tx.SetEnrollmentProgressPercent(ctx, userID, formationID, percent); err != nil {
			return err
		}

		reached100 = percent >= 100
		return nil
	})
	if err != nil {
		return err
	}

	// Issuer punya error boundary sendiri: kegagalan sertifikat tidak boleh
	// menggagalkan event yang memicunya.
	if reached100 && s.Issuer != nil {
		if err := s.Issuer.Issue(ctx, userID, formationID); err != nil {
			log.Printf("[ProgressService] issue certificate gagal (diabaikan). user_id=%s formation_id=%s err=%v", userID, formationID, err)
		}
	}
	return nil
}

/* =========================================================
   READ API
========================================================= */

// GetItemProgress: row progress user pada satu module; nil kalau belum ada event.
func (s *ProgressService) GetItemProgress(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error) {
	return s.Store.ItemProgressByUserModule(ctx, userID, moduleID)
}
