package feedback

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/pkg/responses"
	"github.com/turfbook/turfbook/pkg/validator"
)

type FeedbackController struct {
	repo FeedbackRepository
}

func NewFeedbackController(repo FeedbackRepository) *FeedbackController {
	return &FeedbackController{repo: repo}
}

type CreateFeedbackRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
	Rating    int  `json:"rating" binding:"required,min=1,max=5"`
}

// CreateFeedback godoc
// @Summary Rate a completed booking
// @Description Leaves a 1-5 rating on one of the caller's completed bookings. A booking can only be rated once. Having rated at least one booking qualifies the user for the feedback discount on future bookings.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body CreateFeedbackRequest true "Rating details"
// @Success 201 {object} responses.SuccessResponse{data=BookingFeedback}
// @Failure 403 {object} responses.ErrorResponse "Not the booking owner"
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Failure 409 {object} responses.ErrorResponse "Already rated"
// @Router /feedback [post]
// @Security BearerAuth
func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	ownerID, status, err := fc.repo.GetBookingForFeedback(req.BookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			responses.NotFound(c, "Booking")
			return
		}
		config.Logger.Error("failed to load booking for feedback", zap.Uint("booking_id", req.BookingID), zap.Error(err))
		responses.InternalServerError(c, "Failed to submit feedback")
		return
	}

	if ownerID != userID {
		responses.Forbidden(c, ErrNotBookingOwner.Error())
		return
	}
	if status != "completed" {
		responses.BadRequest(c, ErrBookingNotFinished.Error())
		return
	}

	existing, err := fc.repo.GetByBookingID(req.BookingID)
	if err != nil {
		config.Logger.Error("failed to check existing feedback", zap.Uint("booking_id", req.BookingID), zap.Error(err))
		responses.InternalServerError(c, "Failed to submit feedback")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, ErrAlreadyRated.Error(), nil)
		return
	}

	f := BookingFeedback{
		BookingID:    req.BookingID,
		UserID:       userID,
		Rating:       req.Rating,
		FeedbackDate: time.Now(),
	}

	if err := fc.repo.Create(&f); err != nil {
		config.Logger.Error("failed to create feedback", zap.Uint("booking_id", req.BookingID), zap.Error(err))
		responses.InternalServerError(c, "Failed to submit feedback")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Feedback submitted successfully", f)
}

// GetAllFeedback godoc
// @Summary List all feedback
// @Tags Feedback
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]BookingFeedback}
// @Router /admin/feedback [get]
// @Security BearerAuth
func (fc *FeedbackController) GetAllFeedback(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	feedbacks, total, err := fc.repo.GetAll(page, pageSize)
	if err != nil {
		config.Logger.Error("failed to list feedback", zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve feedback")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", feedbacks, total, page, pageSize)
}
