package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/turfbook/turfbook/internal/ground"
	"github.com/turfbook/turfbook/internal/pricing"
)

type fakeRepo struct {
	byID        map[uint]*Booking
	created     []*Booking
	updated     []*Booking
	booked      []pricing.TimeRange
	bookedCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uint]*Booking)}
}

func (f *fakeRepo) Create(b *Booking) error {
	f.created = append(f.created, b)
	return nil
}

func (f *fakeRepo) GetByID(id uint) (*Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetUserBookings(uint, int, int) ([]Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) GetAll(int, int, Filters) ([]Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Update(b *Booking) error {
	f.updated = append(f.updated, b)
	copied := *b
	f.byID[b.ID] = &copied
	return nil
}

func (f *fakeRepo) BookedRanges(uint, string) ([]pricing.TimeRange, error) {
	f.bookedCalls++
	return f.booked, nil
}

func (f *fakeRepo) CountBySport() ([]SportCount, error)     { return nil, nil }
func (f *fakeRepo) CountByWeekday() ([]WeekdayCount, error) { return nil, nil }
func (f *fakeRepo) Revenue(string, string) (float64, error) { return 0, nil }

type fakeGrounds struct {
	grounds map[uint]*ground.Ground
}

func (f *fakeGrounds) GetGroundByID(id uint) (*ground.Ground, error) {
	return f.grounds[id], nil
}

type fakePromos struct {
	percent float64
	err     error
}

func (f *fakePromos) ResolveActivePercent(string, time.Time) (float64, error) {
	return f.percent, f.err
}

type fakeMemberships struct {
	percent float64
}

func (f *fakeMemberships) ActiveDiscountPercent(uint, time.Time) (float64, error) {
	return f.percent, nil
}

type fakeFeedback struct {
	has bool
}

func (f *fakeFeedback) HasFeedbackFromUser(uint) (bool, error) {
	return f.has, nil
}

type fakeNotifier struct {
	created     []string
	transitions []string
}

func (f *fakeNotifier) BookingCreated(reference, _, _, _ string, _ float64) {
	f.created = append(f.created, reference)
}

func (f *fakeNotifier) BookingStatusChanged(_, from, to string) {
	f.transitions = append(f.transitions, from+">"+to)
}

type fixture struct {
	repo        *fakeRepo
	promos      *fakePromos
	memberships *fakeMemberships
	feedback    *fakeFeedback
	notifier    *fakeNotifier
	service     *BookingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	grounds := &fakeGrounds{grounds: map[uint]*ground.Ground{
		1: {
			Name:         "Center Court",
			PricePerHour: 20,
			OpeningTime:  "08:00",
			ClosingTime:  "22:00",
			IsActive:     true,
		},
		2: {
			Name:         "Old Pitch",
			PricePerHour: 15,
			OpeningTime:  "08:00",
			ClosingTime:  "22:00",
			IsActive:     false,
		},
	}}

	f := &fixture{
		repo:        newFakeRepo(),
		promos:      &fakePromos{},
		memberships: &fakeMemberships{},
		feedback:    &fakeFeedback{},
		notifier:    &fakeNotifier{},
	}
	f.service = NewBookingService(f.repo, grounds, f.promos, f.memberships, f.feedback, f.notifier, 5)
	return f
}

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		AcceptTerms:   true,
		GroundID:      1,
		Date:          "2026-09-12",
		SlotIDs:       []int{3, 4, 5},
		PaymentMethod: PaymentMethodCard,
	}
}

func TestCreateRequiresAcceptedTerms(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.AcceptTerms = false

	_, err := f.service.Create(7, req)
	require.ErrorIs(t, err, ErrTermsNotAccepted)
	require.Empty(t, f.repo.created, "nothing may be written when terms are rejected")
}

func TestCreateHappyPath(t *testing.T) {
	f := newFixture(t)

	b, err := f.service.Create(7, validCreateRequest())
	require.NoError(t, err)

	require.Equal(t, "10:00", b.StartTime)
	require.Equal(t, "13:00", b.EndTime)
	require.Equal(t, StatusPending, b.Status)
	require.Equal(t, PaymentPaid, b.PaymentStatus)
	require.InDelta(t, 60.0, b.TotalAmount, 1e-9)
	require.NotEmpty(t, b.Reference)
	require.Nil(t, b.PromoCode)
	require.False(t, b.MembershipApplied)

	require.Len(t, f.repo.created, 1)
	require.Equal(t, []string{b.Reference}, f.notifier.created)
}

func TestCreateCashPaymentStaysPending(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.PaymentMethod = "cash"

	b, err := f.service.Create(7, req)
	require.NoError(t, err)
	require.Equal(t, PaymentPending, b.PaymentStatus)
}

func TestCreateRejectsOverlappingSelection(t *testing.T) {
	f := newFixture(t)
	f.repo.booked = []pricing.TimeRange{{Start: "12:00", End: "14:00"}}

	_, err := f.service.Create(7, validCreateRequest())
	require.ErrorIs(t, err, ErrSlotUnavailable)
	require.Empty(t, f.repo.created)
	require.Empty(t, f.notifier.created)
}

func TestCreateRejectsNonContiguousSelection(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.SlotIDs = []int{2, 4}

	_, err := f.service.Create(7, req)
	require.ErrorIs(t, err, pricing.ErrNonContiguous)
	require.Empty(t, f.repo.created)
}

func TestCreateRejectsInactiveGround(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.GroundID = 2

	_, err := f.service.Create(7, req)
	require.ErrorIs(t, err, ErrGroundInactive)
}

func TestCreateRejectsUnknownGround(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.GroundID = 99

	_, err := f.service.Create(7, req)
	require.ErrorIs(t, err, ErrGroundNotFound)
}

func TestCreateRejectsBadDate(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.Date = "12-09-2026"

	_, err := f.service.Create(7, req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestQuoteStacksDiscountsInOrder(t *testing.T) {
	f := newFixture(t)
	f.promos.percent = 10
	f.memberships.percent = 20

	// 3 slots at 20/hr: 60, promo takes 6 off the subtotal, membership 20%
	// off the remaining 54.
	quote, err := f.service.Quote(7, QuoteRequest{
		GroundID:  1,
		Date:      "2026-09-12",
		SlotIDs:   []int{3, 4, 5},
		PromoCode: "SUMMER10",
	})
	require.NoError(t, err)

	require.InDelta(t, 60.0, quote.Subtotal, 1e-9)
	require.InDelta(t, 43.2, quote.Total, 1e-9)
	require.True(t, quote.MembershipApplied)
	require.Equal(t, "10:00", quote.StartTime)
	require.Equal(t, "13:00", quote.EndTime)
}

func TestQuoteAppliesFeedbackDiscount(t *testing.T) {
	f := newFixture(t)
	f.feedback.has = true

	quote, err := f.service.Quote(7, QuoteRequest{
		GroundID: 1,
		Date:     "2026-09-12",
		SlotIDs:  []int{1},
	})
	require.NoError(t, err)

	require.InDelta(t, 20.0, quote.Subtotal, 1e-9)
	require.InDelta(t, 19.0, quote.Total, 1e-9)
	require.InDelta(t, 5.0, quote.FeedbackPercent, 1e-9)
}

func TestAvailabilityMarksBookedSlots(t *testing.T) {
	f := newFixture(t)
	f.repo.booked = []pricing.TimeRange{{Start: "10:00", End: "12:00"}}

	slots, err := f.service.Availability(1, "2026-09-12")
	require.NoError(t, err)
	require.Len(t, slots, 14)

	for _, s := range slots {
		switch s.ID {
		case 3, 4:
			require.True(t, s.Booked, "slot %d overlaps the booked range", s.ID)
		default:
			require.False(t, s.Booked, "slot %d is free", s.ID)
		}
	}
}

func TestAvailabilityIsCachedAndInvalidatedOnCreate(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Availability(1, "2026-09-12")
	require.NoError(t, err)
	_, err = f.service.Availability(1, "2026-09-12")
	require.NoError(t, err)
	require.Equal(t, 1, f.repo.bookedCalls, "second read must come from cache")

	_, err = f.service.Create(7, validCreateRequest())
	require.NoError(t, err)

	_, err = f.service.Availability(1, "2026-09-12")
	require.NoError(t, err)
	require.Greater(t, f.repo.bookedCalls, 2, "create must drop the cached grid")
}

func TestStatusTransitions(t *testing.T) {
	f := newFixture(t)
	f.repo.byID[1] = &Booking{Status: StatusPending}
	f.repo.byID[1].ID = 1

	b, err := f.service.UpdateStatus(1, StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, b.Status)

	b, err = f.service.UpdateStatus(1, StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, b.Status)

	_, err = f.service.UpdateStatus(1, StatusPending)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.service.UpdateStatus(1, "archived")
	require.ErrorIs(t, err, ErrUnknownStatus)

	require.Equal(t, []string{"pending>confirmed", "confirmed>completed"}, f.notifier.transitions)
}

func TestCancelRequiresOwnership(t *testing.T) {
	f := newFixture(t)
	f.repo.byID[1] = &Booking{UserID: 7, Status: StatusPending}
	f.repo.byID[1].ID = 1

	_, err := f.service.Cancel(8, 1)
	require.ErrorIs(t, err, ErrNotBookingOwner)

	b, err := f.service.Cancel(7, 1)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, b.Status)

	// Cancelled is terminal.
	_, err = f.service.Cancel(7, 1)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPay(t *testing.T) {
	f := newFixture(t)
	f.repo.byID[1] = &Booking{UserID: 7, Status: StatusPending, PaymentStatus: PaymentPending}
	f.repo.byID[1].ID = 1

	_, err := f.service.Pay(8, 1)
	require.ErrorIs(t, err, ErrNotBookingOwner)

	b, err := f.service.Pay(7, 1)
	require.NoError(t, err)
	require.Equal(t, PaymentPaid, b.PaymentStatus)

	_, err = f.service.Pay(7, 1)
	require.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s to %s", tc.from, tc.to)
	}
}
