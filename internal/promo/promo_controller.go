package promo

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/pkg/responses"
	"github.com/turfbook/turfbook/pkg/validator"
)

// PromoController handles API requests related to promo codes.
type PromoController struct {
	repo   PromoRepository
	config *config.Config
}

func NewPromoController(repo PromoRepository, cfg *config.Config) *PromoController {
	return &PromoController{repo: repo, config: cfg}
}

type CreatePromoCodeRequest struct {
	Code            string    `json:"code" binding:"required,min=3,max=50"`
	DiscountPercent float64   `json:"discount_percent" binding:"required,gt=0,lte=100"`
	ValidFrom       time.Time `json:"valid_from" binding:"required"`
	ValidUntil      time.Time `json:"valid_until" binding:"required,gtfield=ValidFrom"`
	IsActive        *bool     `json:"is_active" binding:"omitempty"`
}

type UpdatePromoCodeRequest struct {
	DiscountPercent *float64   `json:"discount_percent,omitempty" binding:"omitempty,gt=0,lte=100"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
}

type ValidatePromoCodeRequest struct {
	Code string `json:"code" binding:"required"`
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"` // defaults to today
}

type ValidatePromoCodeResponse struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
}

// CreatePromoCode godoc
// @Summary Create a promo code
// @Tags PromoCodes
// @Accept json
// @Produce json
// @Param promo body CreatePromoCodeRequest true "Promo code details"
// @Success 201 {object} responses.SuccessResponse{data=PromoCode}
// @Failure 409 {object} responses.ErrorResponse "Code already exists"
// @Router /promo-codes [post]
// @Security BearerAuth
func (pc *PromoController) CreatePromoCode(c *gin.Context) {
	var req CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := pc.repo.FindByCode(req.Code)
	if err != nil {
		config.Logger.Error("failed to look up promo code", zap.Error(err))
		responses.InternalServerError(c, "Failed to create promo code")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Promo code already exists", nil)
		return
	}

	p := PromoCode{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	} else {
		p.IsActive = true
	}

	if err := pc.repo.CreatePromoCode(&p); err != nil {
		config.Logger.Error("failed to create promo code", zap.Error(err))
		responses.InternalServerError(c, "Failed to create promo code")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Promo code created successfully", p)
}

// GetAllPromoCodes godoc
// @Summary List promo codes
// @Tags PromoCodes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]PromoCode}
// @Router /promo-codes [get]
// @Security BearerAuth
func (pc *PromoController) GetAllPromoCodes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	codes, total, err := pc.repo.GetAllPromoCodes(page, pageSize)
	if err != nil {
		config.Logger.Error("failed to list promo codes", zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve promo codes")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", codes, total, page, pageSize)
}

// UpdatePromoCode godoc
// @Summary Update a promo code
// @Tags PromoCodes
// @Accept json
// @Produce json
// @Param promo_id path int true "Promo code ID"
// @Param promo body UpdatePromoCodeRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=PromoCode}
// @Failure 404 {object} responses.ErrorResponse "Promo code not found"
// @Router /promo-codes/{promo_id} [put]
// @Security BearerAuth
func (pc *PromoController) UpdatePromoCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("promo_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid promo code ID")
		return
	}

	var req UpdatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	p, err := pc.repo.GetPromoCodeByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch promo code", zap.Uint64("promo_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update promo code")
		return
	}
	if p == nil {
		responses.NotFound(c, "Promo code")
		return
	}

	if req.DiscountPercent != nil {
		p.DiscountPercent = *req.DiscountPercent
	}
	if req.ValidFrom != nil {
		p.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		p.ValidUntil = *req.ValidUntil
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if p.ValidUntil.Before(p.ValidFrom) {
		responses.BadRequest(c, "valid_until must not be before valid_from")
		return
	}

	if err := pc.repo.UpdatePromoCode(p); err != nil {
		config.Logger.Error("failed to update promo code", zap.Uint64("promo_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update promo code")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Promo code updated successfully", p)
}

// DeletePromoCode godoc
// @Summary Delete a promo code
// @Tags PromoCodes
// @Produce json
// @Param promo_id path int true "Promo code ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Promo code not found"
// @Router /promo-codes/{promo_id} [delete]
// @Security BearerAuth
func (pc *PromoController) DeletePromoCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("promo_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid promo code ID")
		return
	}

	p, err := pc.repo.GetPromoCodeByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch promo code", zap.Uint64("promo_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete promo code")
		return
	}
	if p == nil {
		responses.NotFound(c, "Promo code")
		return
	}

	if err := pc.repo.DeletePromoCode(uint(id)); err != nil {
		config.Logger.Error("failed to delete promo code", zap.Uint64("promo_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete promo code")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Promo code deleted successfully", nil)
}

// ValidatePromoCode godoc
// @Summary Validate a promo code
// @Description Returns the discount percentage when the code is active on the given date.
// @Tags PromoCodes
// @Accept json
// @Produce json
// @Param request body ValidatePromoCodeRequest true "Code to validate"
// @Success 200 {object} responses.SuccessResponse{data=ValidatePromoCodeResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid or expired code"
// @Router /promo-codes/validate [post]
// @Security BearerAuth
func (pc *PromoController) ValidatePromoCode(c *gin.Context) {
	var req ValidatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	on := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			responses.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		on = parsed
	}

	percent, err := pc.repo.ResolveActivePercent(req.Code, on)
	if err != nil {
		responses.BadRequest(c, "Promo code is invalid or expired")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Promo code is valid", ValidatePromoCodeResponse{
		Code:            NormalizeCode(req.Code),
		DiscountPercent: percent,
	})
}
