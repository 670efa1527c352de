package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/internal/pricing"
	"github.com/turfbook/turfbook/internal/promo"
	"github.com/turfbook/turfbook/internal/user"
	"github.com/turfbook/turfbook/pkg/responses"
	"github.com/turfbook/turfbook/pkg/validator"
)

type BookingController struct {
	service *BookingService
	repo    BookingRepository
}

func NewBookingController(service *BookingService, repo BookingRepository) *BookingController {
	return &BookingController{service: service, repo: repo}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// StatsResponse aggregates the admin dashboard numbers.
type StatsResponse struct {
	BookingsBySport   []SportCount   `json:"bookings_by_sport"`
	BookingsByWeekday []WeekdayCount `json:"bookings_by_weekday"`
	Revenue           float64        `json:"revenue"`
}

// GetAvailability godoc
// @Summary Get slot availability for a ground on a date
// @Description Returns the ground's hourly slot grid with each slot marked booked or free. Pending and confirmed bookings hold their slots.
// @Tags Bookings
// @Produce json
// @Param ground_id path int true "Ground ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} responses.SuccessResponse{data=[]AvailableSlot}
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Router /grounds/{ground_id}/availability [get]
func (bc *BookingController) GetAvailability(c *gin.Context) {
	groundID, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	date := c.Query("date")
	if date == "" {
		responses.BadRequest(c, "date query parameter is required")
		return
	}

	slots, err := bc.service.Availability(uint(groundID), date)
	if err != nil {
		bc.handleServiceError(c, err, "failed to load availability")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", slots)
}

// QuoteBooking godoc
// @Summary Price a slot selection
// @Description Computes the total for a selection with all applicable discounts, without reserving anything. Promo discount is taken off the original subtotal, membership then feedback off the running total.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Selection to price"
// @Success 200 {object} responses.SuccessResponse{data=Quote}
// @Router /bookings/quote [post]
// @Security BearerAuth
func (bc *BookingController) QuoteBooking(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	quote, err := bc.service.Quote(userID, req)
	if err != nil {
		bc.handleServiceError(c, err, "failed to quote booking")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", quote)
}

// CreateBooking godoc
// @Summary Book a slot block
// @Description Reserves a contiguous block of slots on a ground. The booking starts as pending; card payments are recorded as paid immediately, any other method as pending.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking details"
// @Success 201 {object} responses.SuccessResponse{data=Booking}
// @Failure 409 {object} responses.ErrorResponse "Slots no longer available"
// @Router /bookings [post]
// @Security BearerAuth
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	b, err := bc.service.Create(userID, req)
	if err != nil {
		bc.handleServiceError(c, err, "failed to create booking")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Booking created successfully", b)
}

// GetMyBookings godoc
// @Summary List the caller's bookings
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Booking}
// @Router /bookings/my [get]
// @Security BearerAuth
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	page, pageSize := paginationParams(c)
	bookings, total, err := bc.repo.GetUserBookings(userID, page, pageSize)
	if err != nil {
		config.Logger.Error("failed to list user bookings", zap.Uint("user_id", userID), zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve bookings")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", bookings, total, page, pageSize)
}

// GetBooking godoc
// @Summary Get a booking
// @Description Users can fetch their own bookings, admins any booking.
// @Tags Bookings
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} responses.SuccessResponse{data=Booking}
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Router /bookings/{booking_id} [get]
// @Security BearerAuth
func (bc *BookingController) GetBooking(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid booking ID")
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	b, err := bc.service.GetForUser(userID, uint(bookingID), role == user.RoleAdmin)
	if err != nil {
		bc.handleServiceError(c, err, "failed to fetch booking")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", b)
}

// CancelBooking godoc
// @Summary Cancel one of the caller's bookings
// @Tags Bookings
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} responses.SuccessResponse{data=Booking}
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Failure 409 {object} responses.ErrorResponse "Booking cannot be cancelled"
// @Router /bookings/{booking_id}/cancel [put]
// @Security BearerAuth
func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid booking ID")
		return
	}

	b, err := bc.service.Cancel(userID, uint(bookingID))
	if err != nil {
		bc.handleServiceError(c, err, "failed to cancel booking")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Booking cancelled successfully", b)
}

// PayBooking godoc
// @Summary Pay for one of the caller's bookings
// @Tags Bookings
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} responses.SuccessResponse{data=Booking}
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Failure 409 {object} responses.ErrorResponse "Already paid"
// @Router /bookings/{booking_id}/pay [put]
// @Security BearerAuth
func (bc *BookingController) PayBooking(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid booking ID")
		return
	}

	b, err := bc.service.Pay(userID, uint(bookingID))
	if err != nil {
		bc.handleServiceError(c, err, "failed to pay booking")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Payment completed successfully", b)
}

// GetAllBookings godoc
// @Summary List all bookings
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param user_id query int false "Filter by user"
// @Param ground_id query int false "Filter by ground"
// @Param status query string false "Filter by status" Enums(pending, confirmed, cancelled, completed)
// @Param date_from query string false "Earliest booking date (YYYY-MM-DD)"
// @Param date_to query string false "Latest booking date (YYYY-MM-DD)"
// @Success 200 {object} responses.PaginatedResponse{data=[]Booking}
// @Router /admin/bookings [get]
// @Security BearerAuth
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	page, pageSize := paginationParams(c)

	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)
	groundID, _ := strconv.ParseUint(c.Query("ground_id"), 10, 32)
	filters := Filters{
		UserID:   uint(userID),
		GroundID: uint(groundID),
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	bookings, total, err := bc.repo.GetAll(page, pageSize, filters)
	if err != nil {
		config.Logger.Error("failed to list bookings", zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve bookings")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", bookings, total, page, pageSize)
}

// UpdateBookingStatus godoc
// @Summary Change a booking's status
// @Description Moves a booking along its lifecycle. Pending bookings may be confirmed or cancelled, confirmed bookings completed or cancelled; cancelled and completed are terminal.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=Booking}
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Failure 409 {object} responses.ErrorResponse "Transition not allowed"
// @Router /admin/bookings/{booking_id}/status [put]
// @Security BearerAuth
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	b, err := bc.service.UpdateStatus(uint(bookingID), req.Status)
	if err != nil {
		bc.handleServiceError(c, err, "failed to update booking status")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Booking status updated successfully", b)
}

// GetStats godoc
// @Summary Booking statistics
// @Description Bookings per sport and weekday plus paid revenue, optionally restricted to a date range.
// @Tags Bookings
// @Produce json
// @Param date_from query string false "Earliest booking date (YYYY-MM-DD)"
// @Param date_to query string false "Latest booking date (YYYY-MM-DD)"
// @Success 200 {object} responses.SuccessResponse{data=StatsResponse}
// @Router /admin/bookings/stats [get]
// @Security BearerAuth
func (bc *BookingController) GetStats(c *gin.Context) {
	bySport, err := bc.repo.CountBySport()
	if err != nil {
		config.Logger.Error("failed to count bookings by sport", zap.Error(err))
		responses.InternalServerError(c, "Failed to compute statistics")
		return
	}

	byWeekday, err := bc.repo.CountByWeekday()
	if err != nil {
		config.Logger.Error("failed to count bookings by weekday", zap.Error(err))
		responses.InternalServerError(c, "Failed to compute statistics")
		return
	}

	revenue, err := bc.repo.Revenue(c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		config.Logger.Error("failed to compute revenue", zap.Error(err))
		responses.InternalServerError(c, "Failed to compute statistics")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", StatsResponse{
		BookingsBySport:   bySport,
		BookingsByWeekday: byWeekday,
		Revenue:           revenue,
	})
}

func (bc *BookingController) handleServiceError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, ErrTermsNotAccepted),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrGroundInactive),
		errors.Is(err, ErrUnknownStatus),
		errors.Is(err, pricing.ErrEmptySelection),
		errors.Is(err, pricing.ErrNonContiguous),
		errors.Is(err, pricing.ErrUnknownSlot),
		errors.Is(err, pricing.ErrInvalidTime),
		errors.Is(err, pricing.ErrInvalidHours),
		errors.Is(err, promo.ErrInvalidPromoCode):
		responses.BadRequest(c, err.Error())
	case errors.Is(err, ErrBookingNotFound):
		responses.NotFound(c, "Booking")
	case errors.Is(err, ErrGroundNotFound):
		responses.NotFound(c, "Ground")
	case errors.Is(err, ErrNotBookingOwner):
		responses.Forbidden(c, err.Error())
	case errors.Is(err, ErrSlotUnavailable),
		errors.Is(err, ErrAlreadyPaid),
		errors.Is(err, ErrInvalidTransition):
		responses.SendError(c, http.StatusConflict, err.Error(), nil)
	default:
		config.Logger.Error(logMsg, zap.Error(err))
		responses.InternalServerError(c, "Something went wrong, please try again")
	}
}

func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
