package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingFixture(t *testing.T) (*SQLiteBookingRepo, *SQLitePlanRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSQLiteBookingRepo(database), NewSQLitePlanRepo(database)
}

func createBooking(t *testing.T, plans *SQLitePlanRepo, bookings *SQLiteBookingRepo, style string, opts ...testutil.BookingOption) string {
	t.Helper()
	ctx := context.Background()
	p := testutil.NewTestPlan(style)
	require.NoError(t, plans.Create(ctx, p))
	b := testutil.NewTestBooking(p.ID, style, opts...)
	require.NoError(t, bookings.Create(ctx, b))
	return b.ID
}

func TestBookingRepo_Claim(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	id := createBooking(t, plans, bookings, "Style A")
	claimedAt := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	require.NoError(t, bookings.Claim(ctx, id, "alice", claimedAt))

	got, err := bookings.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.ClaimedBy("alice"))
	require.NotNil(t, got.ClaimedAt)
	assert.Equal(t, claimedAt, *got.ClaimedAt)
}

func TestBookingRepo_Claim_ConflictAndIdempotency(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	id := createBooking(t, plans, bookings, "Style A")
	firstClaim := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	require.NoError(t, bookings.Claim(ctx, id, "alice", firstClaim))

	// A different actor is rejected.
	err := bookings.Claim(ctx, id, "bob", firstClaim.Add(time.Minute))
	assert.ErrorIs(t, err, ErrClaimConflict)

	// The owner re-accepting is a no-op success; claimed_at is preserved.
	require.NoError(t, bookings.Claim(ctx, id, "alice", firstClaim.Add(time.Hour)))
	got, err := bookings.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.ClaimedBy("alice"))
	assert.Equal(t, firstClaim, *got.ClaimedAt)
}

func TestBookingRepo_Claim_NotFound(t *testing.T) {
	bookings, _ := newBookingFixture(t)

	err := bookings.Claim(context.Background(), "missing", "alice", time.Now().UTC())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingRepo_Complete(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	id := createBooking(t, plans, bookings, "Style A")
	require.NoError(t, bookings.Claim(ctx, id, "alice", time.Now().UTC()))

	actual := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, bookings.Complete(ctx, id, "alice", actual))

	got, err := bookings.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.ActualCompleteDate)
	assert.Equal(t, actual, *got.ActualCompleteDate)
}

func TestBookingRepo_Complete_NotOwner(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	id := createBooking(t, plans, bookings, "Style A")
	require.NoError(t, bookings.Claim(ctx, id, "alice", time.Now().UTC()))

	err := bookings.Complete(ctx, id, "bob", time.Now().UTC())
	assert.ErrorIs(t, err, ErrNotOwner)

	// Unclaimed bookings cannot be completed either.
	id2 := createBooking(t, plans, bookings, "Style B")
	err = bookings.Complete(ctx, id2, "bob", time.Now().UTC())
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestBookingRepo_Complete_AlreadyComplete(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	id := createBooking(t, plans, bookings, "Style A")
	require.NoError(t, bookings.Claim(ctx, id, "alice", time.Now().UTC()))
	first := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, bookings.Complete(ctx, id, "alice", first))

	err := bookings.Complete(ctx, id, "alice", first.AddDate(0, 0, 5))
	assert.ErrorIs(t, err, ErrAlreadyComplete)

	got, err := bookings.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, first, *got.ActualCompleteDate)
}

func TestBookingRepo_ListViewsAreDisjoint(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	mine := createBooking(t, plans, bookings, "Mine Style")
	require.NoError(t, bookings.Claim(ctx, mine, "alice", time.Now().UTC()))
	other := createBooking(t, plans, bookings, "Other Style")
	require.NoError(t, bookings.Claim(ctx, other, "bob", time.Now().UTC()))
	free := createBooking(t, plans, bookings, "Free Style")

	got, err := bookings.ListMine(ctx, "alice", BookingFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine, got[0].ID)

	got, err = bookings.ListUnclaimed(ctx, BookingFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, free, got[0].ID)
}

func TestBookingRepo_List_SearchFilter(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	createBooking(t, plans, bookings, "Denim Jacket")
	createBooking(t, plans, bookings, "Linen Shirt")
	createBooking(t, plans, bookings, "Denim Skirt")

	got, err := bookings.ListUnclaimed(ctx, BookingFilter{Search: "denim"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = bookings.ListUnclaimed(ctx, BookingFilter{Search: "shirt"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Linen Shirt", got[0].StyleName)
}

func TestBookingRepo_List_PlannedDateRange(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	createBooking(t, plans, bookings, "Jan Style", testutil.WithBookingPlanned(jan))
	createBooking(t, plans, bookings, "Feb Style", testutil.WithBookingPlanned(feb))
	createBooking(t, plans, bookings, "Mar Style", testutil.WithBookingPlanned(mar))

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	got, err := bookings.ListUnclaimed(ctx, BookingFilter{PlannedFrom: &from, PlannedTo: &to})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Feb Style", got[0].StyleName)
}

func TestBookingRepo_List_Pagination(t *testing.T) {
	bookings, plans := newBookingFixture(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		ids = append(ids, createBooking(t, plans, bookings, fmt.Sprintf("Style %02d", i)))
	}

	page1, err := bookings.ListUnclaimed(ctx, BookingFilter{Limit: 2})
	require.NoError(t, err)
	page2, err := bookings.ListUnclaimed(ctx, BookingFilter{Offset: 2, Limit: 2})
	require.NoError(t, err)
	page3, err := bookings.ListUnclaimed(ctx, BookingFilter{Offset: 4, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, page1, 2)
	assert.Len(t, page2, 2)
	assert.Len(t, page3, 1)

	// Pages are windows over the same ordering with no overlap.
	seen := make(map[string]bool)
	for _, b := range append(append(page1, page2...), page3...) {
		assert.False(t, seen[b.ID], "booking %s appeared on two pages", b.ID)
		seen[b.ID] = true
	}
	assert.Len(t, seen, 5)
}
