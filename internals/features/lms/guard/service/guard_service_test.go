// file: internals/features/lms/guard/service/guard_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "kursusku_backend/internals/features/lms/catalog/model"
	enrModel "kursusku_backend/internals/features/lms/enrollments/model"
	pmodel "kursusku_backend/internals/features/lms/progress/model"
)

/* =========================================================
   FAKE STORE (read-only, in-memory)
========================================================= */

type fakeGuardStore struct {
	modules     map[uuid.UUID]*catalogModel.FormationModuleModel
	enrollments map[uuid.UUID]*enrModel.EnrollmentModel // key = formation_id
	policies    map[uuid.UUID]*catalogModel.ModuleReleasePolicyModel
	prereqs     map[uuid.UUID][]catalogModel.ModulePrerequisiteModel
	progress    map[uuid.UUID]*pmodel.ItemProgressModel // key = module_id
}

func newFakeGuardStore() *fakeGuardStore {
	return &fakeGuardStore{
		modules:     map[uuid.UUID]*catalogModel.FormationModuleModel{},
		enrollments: map[uuid.UUID]*enrModel.EnrollmentModel{},
		policies:    map[uuid.UUID]*catalogModel.ModuleReleasePolicyModel{},
		prereqs:     map[uuid.UUID][]catalogModel.ModulePrerequisiteModel{},
		progress:    map[uuid.UUID]*pmodel.ItemProgressModel{},
	}
}

func (f *fakeGuardStore) ModuleByID(_ context.Context, moduleID uuid.UUID) (*catalogModel.FormationModuleModel, error) {
	return f.modules[moduleID], nil
}

func (f *fakeGuardStore) EnrollmentByUserFormation(_ context.Context, _, formationID uuid.UUID) (*enrModel.EnrollmentModel, error) {
	return f.enrollments[formationID], nil
}

func (f *fakeGuardStore) ReleasePolicyByModule(_ context.Context, moduleID uuid.UUID) (*catalogModel.ModuleReleasePolicyModel, error) {
	return f.policies[moduleID], nil
}

func (f *fakeGuardStore) PrerequisitesByModule(_ context.Context, moduleID uuid.UUID) ([]catalogModel.ModulePrerequisiteModel, error) {
	return f.prereqs[moduleID], nil
}

func (f *fakeGuardStore) ItemProgressByUserModule(_ context.Context, _, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error) {
	return f.progress[moduleID], nil
}

/* =========================================================
   FIXTURE
========================================================= */

var guardNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type guardFixture struct {
	store       *fakeGuardStore
	svc         *GuardService
	userID      uuid.UUID
	formationID uuid.UUID
	moduleID    uuid.UUID
}

func newGuardFixture() *guardFixture {
	store := newFakeGuardStore()
	svc := NewGuardService(store)
	svc.Now = func() time.Time { return guardNow }

	fx := &guardFixture{
		store:       store,
		svc:         svc,
		userID:      uuid.New(),
		formationID: uuid.New(),
		moduleID:    uuid.New(),
	}
	store.modules[fx.moduleID] = &catalogModel.FormationModuleModel{
		FormationModuleID:          fx.moduleID,
		FormationModuleFormationID: fx.formationID,
		FormationModuleTitle:       "Pengantar Jaringan",
		FormationModuleType:        catalogModel.ModuleTypeVideo,
	}
	return fx
}

func (fx *guardFixture) enrollActive(at time.Time) {
	fx.store.enrollments[fx.formationID] = &enrModel.EnrollmentModel{
		EnrollmentUserID:      fx.userID,
		EnrollmentFormationID: fx.formationID,
		EnrollmentEnrolledAt:  at,
		EnrollmentStatus:      enrModel.EnrollmentActive,
	}
}

func (fx *guardFixture) evaluate(t *testing.T) *Decision {
	t.Helper()
	d, err := fx.svc.Evaluate(context.Background(), fx.userID, fx.moduleID)
	require.NoError(t, err)
	return d
}

/* =========================================================
   TESTS
========================================================= */

func TestEvaluate_ModuleNotFound(t *testing.T) {
	fx := newGuardFixture()
	_, err := fx.svc.Evaluate(context.Background(), fx.userID, uuid.New())
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestEvaluate_NotEnrolled(t *testing.T) {
	fx := newGuardFixture()
	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	require.Len(t, d.Reasons, 1)
	assert.Equal(t, ReasonNotEnrolled, d.Reasons[0].Code)
}

func TestEvaluate_SuspendedEnrollmentBehavesLikeNotEnrolled(t *testing.T) {
	fx := newGuardFixture()
	fx.store.enrollments[fx.formationID] = &enrModel.EnrollmentModel{
		EnrollmentUserID:      fx.userID,
		EnrollmentFormationID: fx.formationID,
		EnrollmentEnrolledAt:  guardNow.Add(-24 * time.Hour),
		EnrollmentStatus:      enrModel.EnrollmentSuspended,
	}
	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonNotEnrolled, d.Reasons[0].Code)
}

// Enrollment memblokir lebih dulu: drip & prereq tidak ikut dilaporkan.
func TestEvaluate_EnrollmentShortCircuitsOtherChecks(t *testing.T) {
	fx := newGuardFixture()
	future := guardNow.Add(48 * time.Hour)
	fx.store.policies[fx.moduleID] = &catalogModel.ModuleReleasePolicyModel{
		ModuleReleaseModuleID: fx.moduleID,
		ModuleReleaseAt:       &future,
	}
	fx.store.prereqs[fx.moduleID] = []catalogModel.ModulePrerequisiteModel{{
		ModulePrereqModuleID:         fx.moduleID,
		ModulePrereqRequiresModuleID: uuid.New(),
		ModulePrereqRequirement:      catalogModel.PrereqRequirementCompleted,
	}}

	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	require.Len(t, d.Reasons, 1)
	assert.Equal(t, ReasonNotEnrolled, d.Reasons[0].Code)
}

func TestEvaluate_DripByFixedDate(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-72 * time.Hour))
	future := guardNow.Add(2 * time.Hour)
	fx.store.policies[fx.moduleID] = &catalogModel.ModuleReleasePolicyModel{
		ModuleReleaseModuleID: fx.moduleID,
		ModuleReleaseAt:       &future,
	}

	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	require.Len(t, d.Reasons, 1)
	assert.Equal(t, ReasonLockedByDrip, d.Reasons[0].Code)
	require.NotNil(t, d.Reasons[0].AvailableAt)
	assert.True(t, d.Reasons[0].AvailableAt.Equal(future))
}

func TestEvaluate_DripByEnrollmentDelay(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-30 * time.Minute))
	delay := 60 // menit
	fx.store.policies[fx.moduleID] = &catalogModel.ModuleReleasePolicyModel{
		ModuleReleaseModuleID:     fx.moduleID,
		ModuleReleaseDelayMinutes: &delay,
	}

	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonLockedByDrip, d.Reasons[0].Code)
}

// Tepat di momen available_at modul sudah terbuka (Before, bukan <=).
func TestEvaluate_DripBoundaryIsInclusive(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-time.Hour))
	at := guardNow
	fx.store.policies[fx.moduleID] = &catalogModel.ModuleReleasePolicyModel{
		ModuleReleaseModuleID: fx.moduleID,
		ModuleReleaseAt:       &at,
	}

	d := fx.evaluate(t)
	assert.True(t, d.Allowed)
}

// Dua aturan rilis sekaligus: yang paling lambat menentukan.
func TestEvaluate_DripTakesLaterOfDateAndDelay(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-10 * time.Minute))
	past := guardNow.Add(-time.Hour)
	delay := 60
	fx.store.policies[fx.moduleID] = &catalogModel.ModuleReleasePolicyModel{
		ModuleReleaseModuleID:     fx.moduleID,
		ModuleReleaseAt:           &past,
		ModuleReleaseDelayMinutes: &delay,
	}

	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonLockedByDrip, d.Reasons[0].Code)
}

func TestEvaluate_CollectsAllUnmetPrerequisites(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-24 * time.Hour))

	reqA, reqB, reqC := uuid.New(), uuid.New(), uuid.New()
	fx.store.prereqs[fx.moduleID] = []catalogModel.ModulePrerequisiteModel{
		{ModulePrereqRequiresModuleID: reqA, ModulePrereqRequirement: catalogModel.PrereqRequirementCompleted},
		{ModulePrereqRequiresModuleID: reqB, ModulePrereqRequirement: catalogModel.PrereqRequirementPassed},
		{ModulePrereqRequiresModuleID: reqC, ModulePrereqRequirement: catalogModel.PrereqRequirementCompleted},
	}
	// reqC sudah selesai, A & B belum
	fx.store.progress[reqC] = &pmodel.ItemProgressModel{
		ItemProgressModuleID: reqC,
		ItemProgressStatus:   pmodel.ItemProgressCompleted,
	}

	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	require.Len(t, d.Reasons, 1)
	assert.Equal(t, ReasonLockedByPrereq, d.Reasons[0].Code)
	require.Len(t, d.Reasons[0].Unmet, 2)
	assert.Equal(t, reqA, d.Reasons[0].Unmet[0].RequiresModuleID)
	assert.Equal(t, "not_started", d.Reasons[0].Unmet[0].CurrentStatus)
	assert.Equal(t, reqB, d.Reasons[0].Unmet[1].RequiresModuleID)
}

// COMPLETED requirement dipenuhi juga oleh status PASSED.
func TestEvaluate_PassedSatisfiesCompletedRequirement(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-24 * time.Hour))
	req := uuid.New()
	fx.store.prereqs[fx.moduleID] = []catalogModel.ModulePrerequisiteModel{
		{ModulePrereqRequiresModuleID: req, ModulePrereqRequirement: catalogModel.PrereqRequirementCompleted},
	}
	fx.store.progress[req] = &pmodel.ItemProgressModel{
		ItemProgressModuleID: req,
		ItemProgressStatus:   pmodel.ItemProgressPassed,
	}

	assert.True(t, fx.evaluate(t).Allowed)
}

// PASSED requirement TIDAK dipenuhi oleh sekadar COMPLETED.
func TestEvaluate_CompletedDoesNotSatisfyPassedRequirement(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-24 * time.Hour))
	req := uuid.New()
	fx.store.prereqs[fx.moduleID] = []catalogModel.ModulePrerequisiteModel{
		{ModulePrereqRequiresModuleID: req, ModulePrereqRequirement: catalogModel.PrereqRequirementPassed},
	}
	fx.store.progress[req] = &pmodel.ItemProgressModel{
		ItemProgressModuleID: req,
		ItemProgressStatus:   pmodel.ItemProgressCompleted,
	}

	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	assert.Equal(t, "completed", d.Reasons[0].Unmet[0].CurrentStatus)
}

func TestEvaluate_MinScoreBoundary(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-24 * time.Hour))
	req := uuid.New()
	min := 80.0
	fx.store.prereqs[fx.moduleID] = []catalogModel.ModulePrerequisiteModel{
		{ModulePrereqRequiresModuleID: req, ModulePrereqRequirement: catalogModel.PrereqRequirementMinScore, ModulePrereqMinScore: &min},
	}

	score := 79.0
	fx.store.progress[req] = &pmodel.ItemProgressModel{
		ItemProgressModuleID: req,
		ItemProgressStatus:   pmodel.ItemProgressFailed,
		ItemProgressScore:    &score,
	}
	d := fx.evaluate(t)
	require.False(t, d.Allowed)
	require.NotNil(t, d.Reasons[0].Unmet[0].CurrentScore)
	assert.Equal(t, 79.0, *d.Reasons[0].Unmet[0].CurrentScore)

	// tepat di ambang = lolos
	score = 80.0
	assert.True(t, fx.evaluate(t).Allowed)
}

func TestEvaluate_AllChecksPass(t *testing.T) {
	fx := newGuardFixture()
	fx.enrollActive(guardNow.Add(-24 * time.Hour))
	past := guardNow.Add(-time.Hour)
	fx.store.policies[fx.moduleID] = &catalogModel.ModuleReleasePolicyModel{
		ModuleReleaseModuleID: fx.moduleID,
		ModuleReleaseAt:       &past,
	}
	req := uuid.New()
	fx.store.prereqs[fx.moduleID] = []catalogModel.ModulePrerequisiteModel{
		{ModulePrereqRequiresModuleID: req, ModulePrereqRequirement: catalogModel.PrereqRequirementCompleted},
	}
	fx.store.progress[req] = &pmodel.ItemProgressModel{
		ItemProgressModuleID: req,
		ItemProgressStatus:   pmodel.ItemProgressCompleted,
	}

	d := fx.evaluate(t)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reasons)
}
