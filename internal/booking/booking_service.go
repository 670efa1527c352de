package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/turfbook/turfbook/internal/ground"
	"github.com/turfbook/turfbook/internal/pricing"
)

const availabilityTTL = 30 * time.Second

// Narrow views of the other feature repositories, so the service can be
// exercised with fakes in tests.
type GroundProvider interface {
	GetGroundByID(id uint) (*ground.Ground, error)
}

type PromoResolver interface {
	ResolveActivePercent(code string, on time.Time) (float64, error)
}

type MembershipResolver interface {
	ActiveDiscountPercent(userID uint, on time.Time) (float64, error)
}

type FeedbackChecker interface {
	HasFeedbackFromUser(userID uint) (bool, error)
}

type Notifier interface {
	BookingCreated(reference, groundName, date, timeRange string, total float64)
	BookingStatusChanged(reference, oldStatus, newStatus string)
}

// CreateBookingRequest carries everything needed to reserve a slot block.
type CreateBookingRequest struct {
	AcceptTerms   bool   `json:"accept_terms"`
	GroundID      uint   `json:"ground_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	SlotIDs       []int  `json:"slot_ids" binding:"required,min=1"`
	PromoCode     string `json:"promo_code"`
	PaymentMethod string `json:"payment_method"`
}

// QuoteRequest prices a selection without reserving it.
type QuoteRequest struct {
	GroundID  uint   `json:"ground_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	SlotIDs   []int  `json:"slot_ids" binding:"required,min=1"`
	PromoCode string `json:"promo_code"`
}

// Quote is the priced breakdown of a slot selection. Promo is taken off the
// original subtotal, membership and feedback off the running total, in that
// order.
type Quote struct {
	Subtotal          float64 `json:"subtotal"`
	PromoPercent      float64 `json:"promo_percent"`
	MembershipPercent float64 `json:"membership_percent"`
	FeedbackPercent   float64 `json:"feedback_percent"`
	Total             float64 `json:"total"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	MembershipApplied bool    `json:"membership_applied"`
}

// AvailableSlot is a candidate slot annotated with whether an existing
// booking already holds it.
type AvailableSlot struct {
	pricing.Slot
	Booked bool `json:"booked"`
}

// BookingService owns the booking lifecycle: availability, pricing, creation,
// payment and status changes.
type BookingService struct {
	repo            BookingRepository
	grounds         GroundProvider
	promos          PromoResolver
	memberships     MembershipResolver
	feedback        FeedbackChecker
	notifier        Notifier
	cache           *gocache.Cache
	feedbackPercent float64
}

func NewBookingService(
	repo BookingRepository,
	grounds GroundProvider,
	promos PromoResolver,
	memberships MembershipResolver,
	feedback FeedbackChecker,
	notifier Notifier,
	feedbackPercent float64,
) *BookingService {
	return &BookingService{
		repo:            repo,
		grounds:         grounds,
		promos:          promos,
		memberships:     memberships,
		feedback:        feedback,
		notifier:        notifier,
		cache:           gocache.New(availabilityTTL, 2*availabilityTTL),
		feedbackPercent: feedbackPercent,
	}
}

func availabilityKey(groundID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", groundID, date)
}

// Availability returns the ground's slot grid for a date, marking slots held
// by pending or confirmed bookings. Results are cached briefly, so a slot
// freed by a cancellation may show as booked for up to the cache TTL.
func (s *BookingService) Availability(groundID uint, date string) ([]AvailableSlot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	key := availabilityKey(groundID, date)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]AvailableSlot), nil
	}

	g, err := s.grounds.GetGroundByID(groundID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroundNotFound
	}

	slots, err := pricing.GenerateSlots(g.OpeningTime, g.ClosingTime)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedRanges(groundID, date)
	if err != nil {
		return nil, err
	}

	available := make([]AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		available = append(available, AvailableSlot{
			Slot:   slot,
			Booked: pricing.IsBooked(slot, booked),
		})
	}

	s.cache.Set(key, available, availabilityTTL)
	return available, nil
}

// Quote prices a selection for the user without writing anything.
func (s *BookingService) Quote(userID uint, req QuoteRequest) (*Quote, error) {
	g, rng, err := s.resolveSelection(req.GroundID, req.Date, req.SlotIDs)
	if err != nil {
		return nil, err
	}
	return s.price(userID, g, req.Date, req.SlotIDs, req.PromoCode, rng)
}

// Create reserves the selection. Preconditions are checked in order: terms
// accepted, authenticated user, valid ground/date/slots, resolvable time
// range, availability. The availability read and the insert are two separate
// round-trips, so concurrent requests can still double-book.
func (s *BookingService) Create(userID uint, req CreateBookingRequest) (*Booking, error) {
	if !req.AcceptTerms {
		return nil, ErrTermsNotAccepted
	}
	if userID == 0 {
		return nil, ErrNotBookingOwner
	}

	g, rng, err := s.resolveSelection(req.GroundID, req.Date, req.SlotIDs)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedRanges(req.GroundID, req.Date)
	if err != nil {
		return nil, err
	}
	for _, b := range booked {
		if rng.Overlaps(b) {
			return nil, ErrSlotUnavailable
		}
	}

	quote, err := s.price(userID, g, req.Date, req.SlotIDs, req.PromoCode, rng)
	if err != nil {
		return nil, err
	}

	paymentStatus := PaymentPending
	if req.PaymentMethod == PaymentMethodCard {
		paymentStatus = PaymentPaid
	}

	var promoCode *string
	if req.PromoCode != "" {
		code := req.PromoCode
		promoCode = &code
	}

	b := &Booking{
		Reference:         uuid.NewString(),
		UserID:            userID,
		GroundID:          req.GroundID,
		BookingDate:       req.Date,
		StartTime:         rng.Start,
		EndTime:           rng.End,
		Status:            StatusPending,
		PaymentStatus:     paymentStatus,
		TotalAmount:       quote.Total,
		PromoCode:         promoCode,
		MembershipApplied: quote.MembershipApplied,
	}

	if err := s.repo.Create(b); err != nil {
		return nil, err
	}

	s.cache.Delete(availabilityKey(req.GroundID, req.Date))
	s.notifier.BookingCreated(b.Reference, g.Name, b.BookingDate, rng.Start+" - "+rng.End, b.TotalAmount)
	return b, nil
}

// Cancel moves one of the user's own bookings to cancelled.
func (s *BookingService) Cancel(userID, bookingID uint) (*Booking, error) {
	b, err := s.repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return s.transition(b, StatusCancelled)
}

// Pay marks one of the user's own bookings as paid.
func (s *BookingService) Pay(userID, bookingID uint) (*Booking, error) {
	b, err := s.repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if b.PaymentStatus == PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	b.PaymentStatus = PaymentPaid
	if err := s.repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves a booking along the lifecycle, admin side.
func (s *BookingService) UpdateStatus(bookingID uint, newStatus string) (*Booking, error) {
	if !ValidStatus(newStatus) {
		return nil, ErrUnknownStatus
	}

	b, err := s.repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return s.transition(b, newStatus)
}

// GetForUser loads a booking visible to the caller. Admins see everything,
// users only their own.
func (s *BookingService) GetForUser(userID, bookingID uint, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if !isAdmin && b.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return b, nil
}

func (s *BookingService) transition(b *Booking, to string) (*Booking, error) {
	if !CanTransition(b.Status, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, to)
	}

	from := b.Status
	b.Status = to
	if err := s.repo.Update(b); err != nil {
		return nil, err
	}

	// A cancellation frees the slot block for others.
	if to == StatusCancelled {
		s.cache.Delete(availabilityKey(b.GroundID, b.BookingDate))
	}
	s.notifier.BookingStatusChanged(b.Reference, from, to)
	return b, nil
}

// resolveSelection validates the ground, date and slot ids and maps the
// selection to its overall time range.
func (s *BookingService) resolveSelection(groundID uint, date string, slotIDs []int) (*ground.Ground, pricing.TimeRange, error) {
	g, err := s.grounds.GetGroundByID(groundID)
	if err != nil {
		return nil, pricing.TimeRange{}, err
	}
	if g == nil {
		return nil, pricing.TimeRange{}, ErrGroundNotFound
	}
	if !g.IsActive {
		return nil, pricing.TimeRange{}, ErrGroundInactive
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, pricing.TimeRange{}, ErrInvalidDate
	}

	if len(slotIDs) == 0 {
		return nil, pricing.TimeRange{}, pricing.ErrEmptySelection
	}
	if !pricing.Contiguous(slotIDs) {
		return nil, pricing.TimeRange{}, pricing.ErrNonContiguous
	}

	rng, err := pricing.SelectionRange(g.OpeningTime, g.ClosingTime, slotIDs)
	if err != nil {
		return nil, pricing.TimeRange{}, err
	}
	return g, rng, nil
}

func (s *BookingService) price(userID uint, g *ground.Ground, date string, slotIDs []int, promoCode string, rng pricing.TimeRange) (*Quote, error) {
	day, _ := time.Parse("2006-01-02", date)

	var promoPercent float64
	if promoCode != "" {
		percent, err := s.promos.ResolveActivePercent(promoCode, day)
		if err != nil {
			return nil, err
		}
		promoPercent = percent
	}

	membershipPercent, err := s.memberships.ActiveDiscountPercent(userID, day)
	if err != nil {
		return nil, err
	}

	var feedbackPercent float64
	hasFeedback, err := s.feedback.HasFeedbackFromUser(userID)
	if err != nil {
		return nil, err
	}
	if hasFeedback {
		feedbackPercent = s.feedbackPercent
	}

	subtotal := pricing.Subtotal(g.PricePerHour, len(slotIDs))
	return &Quote{
		Subtotal:          subtotal,
		PromoPercent:      promoPercent,
		MembershipPercent: membershipPercent,
		FeedbackPercent:   feedbackPercent,
		Total:             pricing.ApplyDiscounts(subtotal, promoPercent, membershipPercent, feedbackPercent),
		StartTime:         rng.Start,
		EndTime:           rng.End,
		MembershipApplied: membershipPercent > 0,
	}, nil
}
