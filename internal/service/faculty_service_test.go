package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/repository"
	"github.com/alexanderramin/promotrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacultyService(t *testing.T, observers ...UseCaseObserver) (FacultyService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := NewFacultyService(
		repository.NewSQLiteFacultyRepo(database),
		repository.NewSQLiteAchievementRepo(database),
		testutil.NewTestUoW(database),
		observers...,
	)
	return svc, database
}

func onboard(t *testing.T, svc FacultyService, position domain.Position, items ...*domain.Achievement) {
	t.Helper()
	_, err := svc.CompleteWizard(context.Background(), testutil.NewTestProfile(position), testutil.NewTestSet(items...))
	require.NoError(t, err)
}

func TestFacultyService_GetFreshRecord(t *testing.T) {
	svc, _ := newFacultyService(t)

	f, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.False(t, f.WizardCompleted)
	assert.Equal(t, 0, f.Points.Total)
	assert.Len(t, f.Points.Breakdown, len(domain.Categories))
	assert.Equal(t, domain.ApplicationNotApplied, f.Promotion.Status)
}

func TestFacultyService_CompleteWizardPersists(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()

	items := testutil.NewTestSet(
		&domain.Achievement{Details: domain.Research{Title: "A", Quartile: domain.QuartileQ1}},
		&domain.Achievement{Details: domain.Patent{Title: "B", Status: domain.PatentPending}},
	)
	f, err := svc.CompleteWizard(ctx, testutil.NewTestProfile(domain.PositionTeachingAssistant), items)
	require.NoError(t, err)
	assert.Equal(t, 25, f.Points.Total)

	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.WizardCompleted)
	assert.Equal(t, 25, reloaded.Points.Total)
	assert.Equal(t, 15, reloaded.Points.Breakdown[domain.CategoryResearch])
	assert.Equal(t, 10, reloaded.Points.Breakdown[domain.CategoryPatents])
	assert.Equal(t, "Dr. Test", reloaded.Profile.Name)
	for _, a := range reloaded.Achievements.All() {
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
	}
	assert.Empty(t, items[domain.CategoryResearch][0].ID, "caller set is not modified")
}

func TestFacultyService_CompleteWizardTwiceRejected(t *testing.T) {
	svc, _ := newFacultyService(t)
	onboard(t, svc, domain.PositionLecturer, testutil.NewTestResearch(domain.QuartileQ1))

	_, err := svc.CompleteWizard(context.Background(), testutil.NewTestProfile(domain.PositionTeachingAssistant), nil)
	require.ErrorIs(t, err, domain.ErrWizardCompleted)

	f, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PositionLecturer, f.Profile.CurrentPosition)
	assert.Equal(t, 1, f.Achievements.Len())
}

func TestFacultyService_AddRequiresWizard(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()

	_, err := svc.AddAchievement(ctx, domain.Teaching{Title: "Intro", Type: domain.TeachingLectures})
	require.ErrorIs(t, err, domain.ErrWizardIncomplete)

	f, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Achievements.Len())
}

func TestFacultyService_AddAchievementRecomputes(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	onboard(t, svc, domain.PositionTeachingAssistant,
		testutil.NewTestResearch(domain.QuartileQ1),
		testutil.NewTestResearch(domain.QuartileQ1),
		testutil.NewTestResearch(domain.QuartileQ1),
	)

	res, err := svc.AddAchievement(ctx, domain.Conference{Title: "Summit", Type: domain.ConferenceLocal, Role: domain.RoleKeynote})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Achievement.Points)
	assert.Equal(t, 50, res.Faculty.Points.Total)
	assert.True(t, res.Faculty.Promotion.Eligible)

	e, err := svc.Eligibility(ctx)
	require.NoError(t, err)
	assert.True(t, e.Eligible)
	assert.Equal(t, 0, e.PointsNeeded)
	assert.Equal(t, domain.PositionLecturer, e.Requirement.NextPosition)
}

func TestFacultyService_DeleteAchievement(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	keep := testutil.NewTestPatent(domain.PatentGranted)
	drop := testutil.NewTestSupervision(domain.SupervisionPhD)
	onboard(t, svc, domain.PositionLecturer, keep, drop)

	res, err := svc.DeleteAchievement(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, drop.ID, res.Achievement.ID)
	assert.Equal(t, 20, res.Faculty.Points.Total)

	_, err = svc.DeleteAchievement(ctx, drop.ID)
	require.ErrorIs(t, err, domain.ErrAchievementNotFound)

	f, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, f.Points.Total)
	assert.Equal(t, 0, f.Points.Breakdown[domain.CategorySupervision])
}

func TestFacultyService_GetAchievement(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	patent := testutil.NewTestPatent(domain.PatentPending)
	onboard(t, svc, domain.PositionLecturer, patent)

	got, err := svc.GetAchievement(ctx, patent.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryPatents, got.Category())
	assert.Equal(t, 10, got.Points)

	_, err = svc.GetAchievement(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAchievementNotFound)
}

func TestFacultyService_ListAchievementsByCategory(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	onboard(t, svc, domain.PositionLecturer,
		testutil.NewTestTeaching(domain.TeachingCourseDevelopment),
		testutil.NewTestResearch(domain.QuartileQ3),
		testutil.NewTestTeaching(domain.TeachingLectures),
	)

	all, err := svc.ListAchievements(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	teaching, err := svc.ListAchievements(ctx, domain.CategoryTeaching)
	require.NoError(t, err)
	require.Len(t, teaching, 2)
	total := 0
	for _, a := range teaching {
		assert.Equal(t, domain.CategoryTeaching, a.Category())
		total += a.Points
	}
	assert.Equal(t, 11, total)

	none, err := svc.ListAchievements(ctx, domain.CategoryPatents)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFacultyService_UpdateProfileReevaluates(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	onboard(t, svc, domain.PositionAssistantProfessor,
		testutil.NewTestResearch(domain.QuartileQ1),
		testutil.NewTestResearch(domain.QuartileQ1),
		testutil.NewTestResearch(domain.QuartileQ2),
		testutil.NewTestResearch(domain.QuartileQ2),
	)

	e, err := svc.Eligibility(ctx)
	require.NoError(t, err)
	require.False(t, e.Eligible)
	require.Equal(t, 6, e.PointsNeeded)

	pos := domain.PositionLecturer
	f, err := svc.UpdateProfile(ctx, domain.ProfilePatch{CurrentPosition: &pos})
	require.NoError(t, err)
	assert.True(t, f.Promotion.Eligible)
	assert.Equal(t, "Dr. Test", f.Profile.Name)

	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PositionLecturer, reloaded.Profile.CurrentPosition)
	assert.Equal(t, 4, reloaded.Profile.YearsOfService)
}

func TestFacultyService_ApplyLifecycle(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	onboard(t, svc, domain.PositionTeachingAssistant, testutil.NewTestResearch(domain.QuartileQ1))

	_, err := svc.Apply(ctx)
	require.ErrorIs(t, err, domain.ErrIneligibleApplication)
	f, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationNotApplied, f.Promotion.Status)

	for i := 0; i < 2; i++ {
		_, err := svc.AddAchievement(ctx, domain.Patent{Title: "P", Status: domain.PatentGranted})
		require.NoError(t, err)
	}

	f, err = svc.Apply(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, f.Promotion.Status)
	require.NotNil(t, f.Promotion.ApplicationDate)

	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.Promotion.IsPending())
	require.NotNil(t, reloaded.Promotion.ApplicationDate)
	assert.True(t, f.Promotion.ApplicationDate.Equal(*reloaded.Promotion.ApplicationDate))

	_, err = svc.Apply(ctx)
	require.ErrorIs(t, err, domain.ErrAlreadyPending)
}

func TestFacultyService_ApplicationDateSurvivesReload(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	applied := time.Date(2026, 9, 14, 8, 30, 15, 123456789, time.UTC)
	svc.(*facultyService).now = func() time.Time { return applied }
	onboard(t, svc, domain.PositionLecturer,
		testutil.NewTestPatent(domain.PatentGranted),
		testutil.NewTestPatent(domain.PatentGranted),
		testutil.NewTestSupervision(domain.SupervisionMasters),
	)

	f, err := svc.Apply(ctx)
	require.NoError(t, err)
	require.NotNil(t, f.Promotion.ApplicationDate)
	assert.True(t, applied.Equal(*f.Promotion.ApplicationDate))

	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Promotion.ApplicationDate)
	assert.True(t, applied.Equal(*reloaded.Promotion.ApplicationDate))
}

func TestFacultyService_Reset(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	onboard(t, svc, domain.PositionLecturer, testutil.NewTestTraining(true), testutil.NewTestTeaching(domain.TeachingAssessment))

	fresh, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.False(t, fresh.WizardCompleted)

	f, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, f.WizardCompleted)
	assert.Equal(t, domain.Profile{}, f.Profile)
	assert.Equal(t, 0, f.Achievements.Len())
	for _, c := range domain.Categories {
		assert.Equal(t, 0, f.Points.Breakdown[c])
	}
	assert.Equal(t, domain.ApplicationNotApplied, f.Promotion.Status)

	onboard(t, svc, domain.PositionTeachingAssistant)
}

func TestFacultyService_ResetRecordIsNotEligibleAfterReload(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	onboard(t, svc, domain.PositionTeachingAssistant,
		testutil.NewTestPatent(domain.PatentGranted),
		testutil.NewTestPatent(domain.PatentGranted),
		testutil.NewTestPatent(domain.PatentGranted),
	)

	fresh, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.False(t, fresh.Promotion.Eligible)

	f, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, f.Promotion.Eligible)

	e, err := svc.Eligibility(ctx)
	require.NoError(t, err)
	assert.False(t, e.Eligible)
	assert.False(t, e.Configured)
	assert.Equal(t, 0, e.CurrentPoints)
}

func TestFacultyService_SimulateDoesNotPersist(t *testing.T) {
	svc, _ := newFacultyService(t)
	ctx := context.Background()
	onboard(t, svc, domain.PositionLecturer, testutil.NewTestResearch(domain.QuartileQ1))

	sim, err := svc.Simulate(ctx, testutil.NewTestSet(
		testutil.NewTestPatent(domain.PatentGranted),
		testutil.NewTestSupervision(domain.SupervisionPhD),
	))
	require.NoError(t, err)
	assert.Equal(t, 15, sim.CurrentPoints)
	assert.Equal(t, 50, sim.SimulatedPoints)
	assert.Equal(t, 35, sim.PointsGained)
	assert.True(t, sim.WouldBeEligible)

	f, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, f.Points.Total)
}

func TestFacultyService_EmitsUseCaseEvents(t *testing.T) {
	rec := &recordingObserver{}
	svc, _ := newFacultyService(t, rec)
	ctx := context.Background()

	onboard(t, svc, domain.PositionTeachingAssistant)
	_, _ = svc.Apply(ctx)

	require.Len(t, rec.Events, 2)
	assert.Equal(t, "complete-wizard", rec.Events[0].Name)
	assert.True(t, rec.Events[0].Success)
	assert.Equal(t, "apply", rec.Events[1].Name)
	assert.False(t, rec.Events[1].Success)
	assert.ErrorIs(t, rec.Events[1].Err, domain.ErrIneligibleApplication)
}

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	svc, _ := newFacultyService(t, NewLogUseCaseObserver(&buf))

	onboard(t, svc, domain.PositionLecturer, testutil.NewTestResearch(domain.QuartileQ3))

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=complete-wizard")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "total=10")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
