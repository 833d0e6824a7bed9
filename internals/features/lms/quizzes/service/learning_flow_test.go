// file: internals/features/lms/quizzes/service/learning_flow_test.go
//
// Alur lengkap learner: selesaikan modul teks → kerjakan quiz → lulus →
// progress 100% → sertifikat terbit sekali. Service asli dirangkai dengan
// store in-memory, tanpa database.
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "kursusku_backend/internals/features/lms/catalog/model"
	cmodel "kursusku_backend/internals/features/lms/certificates/model"
	certService "kursusku_backend/internals/features/lms/certificates/service"
	pmodel "kursusku_backend/internals/features/lms/progress/model"
	progressService "kursusku_backend/internals/features/lms/progress/service"
)

/* =========================================================
   FAKE: progress store
========================================================= */

type flowItemKey struct {
	userID   uuid.UUID
	moduleID uuid.UUID
}

type flowProgressStore struct {
	modules map[uuid.UUID][]catalogModel.FormationModuleModel
	items   map[flowItemKey]*pmodel.ItemProgressModel
	agg     map[uuid.UUID]*pmodel.UserProgressModel // key = formation_id
	enrPct  map[uuid.UUID]float64
	audits  int
}

func newFlowProgressStore() *flowProgressStore {
	return &flowProgressStore{
		modules: map[uuid.UUID][]catalogModel.FormationModuleModel{},
		items:   map[flowItemKey]*pmodel.ItemProgressModel{},
		agg:     map[uuid.UUID]*pmodel.UserProgressModel{},
		enrPct:  map[uuid.UUID]float64{},
	}
}

func (f *flowProgressStore) ModuleInFormation(_ context.Context, moduleID, formationID uuid.UUID) (*catalogModel.FormationModuleModel, error) {
	for i, m := range f.modules[formationID] {
		if m.FormationModuleID == moduleID {
			return &f.modules[formationID][i], nil
		}
	}
	return nil, nil
}

func (f *flowProgressStore) ModulesByFormation(_ context.Context, formationID uuid.UUID) ([]catalogModel.FormationModuleModel, error) {
	return f.modules[formationID], nil
}

func (f *flowProgressStore) ItemProgressByUserModule(_ context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error) {
	row, ok := f.items[flowItemKey{userID, moduleID}]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *flowProgressStore) ItemProgressByUserFormation(_ context.Context, userID, formationID uuid.UUID) ([]pmodel.ItemProgressModel, error) {
	var out []pmodel.ItemProgressModel
	for k, v := range f.items {
		if k.userID == userID && v.ItemProgressFormationID == formationID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *flowProgressStore) ItemProgressByUserModuleForUpdate(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error) {
	return f.ItemProgressByUserModule(ctx, userID, moduleID)
}

func (f *flowProgressStore) InsertItemProgress(_ context.Context, row *pmodel.ItemProgressModel) (bool, error) {
	key := flowItemKey{row.ItemProgressUserID, row.ItemProgressModuleID}
	if _, exists := f.items[key]; exists {
		return false, nil
	}
	cp := *row
	f.items[key] = &cp
	return true, nil
}

func (f *flowProgressStore) UpdateItemProgress(_ context.Context, row *pmodel.ItemProgressModel) error {
	cp := *row
	f.items[flowItemKey{row.ItemProgressUserID, row.ItemProgressModuleID}] = &cp
	return nil
}

func (f *flowProgressStore) AppendAuditLog(_ context.Context, _ *pmodel.LearningAuditLogModel) error {
	f.audits++
	return nil
}

func (f *flowProgressStore) UpsertUserProgress(_ context.Context, row *pmodel.UserProgressModel) error {
	cp := *row
	f.agg[row.UserProgressFormationID] = &cp
	return nil
}

func (f *flowProgressStore) SetEnrollmentProgressPercent(_ context.Context, _, formationID uuid.UUID, percent float64) error {
	f.enrPct[formationID] = percent
	return nil
}

func (f *flowProgressStore) Transaction(_ context.Context, fn func(progressService.Store) error) error {
	return fn(f)
}

/* =========================================================
   FAKE: certificate store
========================================================= */

type flowCertStore struct {
	enabled map[uuid.UUID]bool
	certs   []cmodel.CertificateModel
	inserts int
}

func (f *flowCertStore) FormationCertificateEnabled(_ context.Context, formationID uuid.UUID) (bool, error) {
	return f.enabled[formationID], nil
}

func (f *flowCertStore) CertificateByUserFormation(_ context.Context, userID, formationID uuid.UUID) (*cmodel.CertificateModel, error) {
	for i := range f.certs {
		if f.certs[i].CertificateUserID == userID && f.certs[i].CertificateFormationID == formationID {
			return &f.certs[i], nil
		}
	}
	return nil, nil
}

func (f *flowCertStore) CertificateByNumber(_ context.Context, number string) (*cmodel.CertificateModel, error) {
	for i := range f.certs {
		if f.certs[i].CertificateNumber == number {
			return &f.certs[i], nil
		}
	}
	return nil, nil
}

func (f *flowCertStore) CertificatesByUser(_ context.Context, userID uuid.UUID) ([]cmodel.CertificateModel, error) {
	var out []cmodel.CertificateModel
	for _, c := range f.certs {
		if c.CertificateUserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *flowCertStore) InsertCertificate(_ context.Context, cert *cmodel.CertificateModel) error {
	f.inserts++
	cert.CertificateID = uuid.New()
	f.certs = append(f.certs, *cert)
	return nil
}

/* =========================================================
   E2E FLOW
========================================================= */

func TestLearnerFlow_TextModuleThenQuizToCertificate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	// Quiz fixture menyiapkan formation + module quiz + 4 soal + enrollment.
	fx := newQuizFixture()
	textModule := uuid.New()

	pstore := newFlowProgressStore()
	pstore.modules[fx.formationID] = []catalogModel.FormationModuleModel{
		{FormationModuleID: textModule, FormationModuleFormationID: fx.formationID, FormationModuleType: catalogModel.ModuleTypeText, FormationModuleOrder: 1},
		{FormationModuleID: fx.moduleID, FormationModuleFormationID: fx.formationID, FormationModuleType: catalogModel.ModuleTypeQuiz, FormationModuleOrder: 2},
	}

	cstore := &flowCertStore{enabled: map[uuid.UUID]bool{fx.formationID: true}}
	certs := certService.NewCertificateService(cstore)
	certs.Now = func() time.Time { return now }

	progress := progressService.NewProgressService(pstore, certs)
	progress.Now = func() time.Time { return now }

	// Quiz service memakai aggregator asli, bukan recorder palsu.
	fx.svc.Progress = progress

	// 1) learner menonton modul teks sampai selesai
	require.NoError(t, progress.SubmitEvent(ctx, &progressService.SubmitEventInput{
		UserID:       fx.userID,
		FormationID:  fx.formationID,
		ModuleID:     textModule,
		Event:        pmodel.ProgressEventStart,
		TimeSpentSec: 240,
	}))
	require.NoError(t, progress.SubmitEvent(ctx, &progressService.SubmitEventInput{
		UserID:      fx.userID,
		FormationID: fx.formationID,
		ModuleID:    textModule,
		Event:       pmodel.ProgressEventComplete,
	}))

	agg := pstore.agg[fx.formationID]
	require.NotNil(t, agg)
	assert.Equal(t, 50.0, agg.UserProgressPercent)
	assert.Empty(t, cstore.certs, "sertifikat belum boleh terbit di 50%%")

	// 2) learner mengerjakan quiz dan lulus
	start, err := fx.svc.Start(ctx, fx.quizID, fx.userID)
	require.NoError(t, err)

	result, err := fx.svc.Submit(ctx, &SubmitInput{
		SessionID: start.Session.QuizSessionID,
		UserID:    fx.userID,
		Answers:   fx.allCorrect(),
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)

	// 3) hasil quiz mengalir sampai progress formation dan sertifikat
	item := pstore.items[flowItemKey{fx.userID, fx.moduleID}]
	require.NotNil(t, item)
	assert.Equal(t, pmodel.ItemProgressPassed, item.ItemProgressStatus)

	agg = pstore.agg[fx.formationID]
	assert.Equal(t, 2, agg.UserProgressCompletedModules)
	assert.Equal(t, 100.0, agg.UserProgressPercent)
	assert.Equal(t, 100.0, pstore.enrPct[fx.formationID])

	require.Len(t, cstore.certs, 1)
	cert := cstore.certs[0]
	assert.Equal(t, fx.userID, cert.CertificateUserID)
	assert.NotEmpty(t, cert.CertificateNumber)

	// 4) event susulan tidak menggandakan sertifikat
	require.NoError(t, progress.SubmitEvent(ctx, &progressService.SubmitEventInput{
		UserID:      fx.userID,
		FormationID: fx.formationID,
		ModuleID:    textModule,
		Event:       pmodel.ProgressEventComplete,
	}))
	assert.Len(t, cstore.certs, 1)
	assert.Equal(t, 1, cstore.inserts)

	// 5) nomor sertifikat bisa diverifikasi publik
	verified, err := certs.VerifyNumber(ctx, cert.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, cert.CertificateFormationID, verified.CertificateFormationID)
}
