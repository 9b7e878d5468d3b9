package service

import (
	"context"
	"testing"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
	"github.com/Hacnine/BestaTechnology-sub001/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	plans    PlanService
	bookings BookingService
	status   StatusService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	plans := NewPlanService(
		repository.NewSQLitePlanRepo(database),
		repository.NewSQLiteCadRepo(database),
		repository.NewSQLiteSampleRepo(database),
		repository.NewSQLiteBookingRepo(database),
		repository.NewSQLiteTrackingRepo(database),
		testutil.NewTestUoW(database),
	)
	return &fixture{
		plans:    plans,
		bookings: NewBookingService(repository.NewSQLiteBookingRepo(database)),
		status:   NewStatusService(plans),
	}
}

// freezeStatusClock pins the status service's notion of now.
func (f *fixture) freezeStatusClock(t *testing.T, now time.Time) {
	t.Helper()
	s, ok := f.status.(*statusService)
	require.True(t, ok)
	s.clock = func() time.Time { return now }
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// createPlan opens a plan with the given style and shipment target.
func (f *fixture) createPlan(t *testing.T, style string, sending time.Time) *domain.TimeAndActionPlan {
	t.Helper()
	p, err := f.plans.Create(context.Background(), CreatePlanInput{
		StyleName:         style,
		MerchandiserID:    "merch-1",
		SampleSendingDate: sending,
	})
	require.NoError(t, err)
	return p
}

// completeUpstream drives all three upstream stages of a plan to completion.
func (f *fixture) completeUpstream(t *testing.T, planID string, actual time.Time) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.plans.CompleteCad(ctx, planID, actual))
	require.NoError(t, f.plans.CompleteSample(ctx, planID, actual))

	p, err := f.plans.GetByID(ctx, planID)
	require.NoError(t, err)
	_, err = f.bookings.Accept(ctx, p.FabricBooking.ID, "fabric-1")
	require.NoError(t, err)
	require.NoError(t, f.bookings.Complete(ctx, p.FabricBooking.ID, "fabric-1", actual))
}
