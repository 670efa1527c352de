package ground

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/internal/models"
	"github.com/turfbook/turfbook/internal/pricing"
	"github.com/turfbook/turfbook/pkg/responses"
	"github.com/turfbook/turfbook/pkg/validator"
)

// GroundController handles API requests related to grounds.
type GroundController struct {
	repo   GroundRepository
	config *config.Config
}

// NewGroundController creates a new GroundController.
func NewGroundController(repo GroundRepository, cfg *config.Config) *GroundController {
	return &GroundController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type CreateGroundRequest struct {
	SportID      uint     `json:"sport_id" binding:"required"`
	Name         string   `json:"name" binding:"required,min=2,max=150"`
	Address      string   `json:"address" binding:"omitempty,max=500"`
	Capacity     int      `json:"capacity" binding:"omitempty,min=1"`
	PricePerHour float64  `json:"price_per_hour" binding:"required,gt=0"`
	OpeningTime  string   `json:"opening_time" binding:"required"`
	ClosingTime  string   `json:"closing_time" binding:"required"`
	Amenities    []string `json:"amenities" binding:"omitempty,max=50"`
	Images       []string `json:"images" binding:"omitempty,max=20"`
	IsActive     *bool    `json:"is_active" binding:"omitempty"` // Pointer to distinguish between not provided and false
}

type UpdateGroundRequest struct {
	SportID      *uint     `json:"sport_id,omitempty"`
	Name         *string   `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	Address      *string   `json:"address,omitempty" binding:"omitempty,max=500"`
	Capacity     *int      `json:"capacity,omitempty" binding:"omitempty,min=1"`
	PricePerHour *float64  `json:"price_per_hour,omitempty" binding:"omitempty,gt=0"`
	OpeningTime  *string   `json:"opening_time,omitempty"`
	ClosingTime  *string   `json:"closing_time,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty" binding:"omitempty,max=50"`
	Images       *[]string `json:"images,omitempty" binding:"omitempty,max=20"`
	IsActive     *bool     `json:"is_active,omitempty"`
}

// validOperatingHours rejects hour pairs the slot generator cannot work with.
func validOperatingHours(opening, closing string) bool {
	_, err := pricing.GenerateSlots(opening, closing)
	return err == nil
}

// CreateGround godoc
// @Summary Create a new ground
// @Description Admin can register a new bookable ground for a sport
// @Tags Grounds
// @Accept json
// @Produce json
// @Param ground body CreateGroundRequest true "Ground creation request"
// @Success 201 {object} responses.SuccessResponse{data=Ground}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /grounds [post]
// @Security BearerAuth
func (gc *GroundController) CreateGround(c *gin.Context) {
	var req CreateGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if !validOperatingHours(req.OpeningTime, req.ClosingTime) {
		responses.BadRequest(c, "Invalid operating hours: expected HH:MM with closing after opening")
		return
	}

	g := Ground{
		SportID:      req.SportID,
		Name:         req.Name,
		Address:      req.Address,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
		Amenities:    models.StringSlice(req.Amenities),
		Images:       models.StringSlice(req.Images),
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	} else {
		g.IsActive = true // Default to active
	}

	if err := gc.repo.CreateGround(&g); err != nil {
		config.Logger.Error("failed to create ground", zap.Error(err))
		responses.SendError(c, http.StatusInternalServerError, "Failed to create ground", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Ground created successfully", g)
}

// GetAllGrounds godoc
// @Summary Get all grounds
// @Description List grounds with optional sport filter and search
// @Tags Grounds
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param sport_id query int false "Filter by sport"
// @Param search query string false "Search term for name or address"
// @Param is_active query boolean false "Filter by active status (admin listings)"
// @Success 200 {object} responses.PaginatedResponse{data=[]Ground}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /grounds [get]
func (gc *GroundController) GetAllGrounds(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filters := Filters{Search: c.Query("search")}

	if sportIDQuery := c.Query("sport_id"); sportIDQuery != "" {
		sportID, err := strconv.ParseUint(sportIDQuery, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid sport_id")
			return
		}
		filters.SportID = uint(sportID)
	}

	if isActiveQuery := c.Query("is_active"); isActiveQuery != "" {
		val, err := strconv.ParseBool(isActiveQuery)
		if err == nil {
			filters.IsActive = &val
		}
	}

	grounds, total, err := gc.repo.GetAllGrounds(page, pageSize, filters)
	if err != nil {
		config.Logger.Error("failed to list grounds", zap.Error(err))
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve grounds", nil)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", grounds, total, page, pageSize)
}

// GetGroundByID godoc
// @Summary Get a ground by ID
// @Tags Grounds
// @Produce json
// @Param ground_id path int true "Ground ID"
// @Success 200 {object} responses.SuccessResponse{data=Ground}
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Router /grounds/{ground_id} [get]
func (gc *GroundController) GetGroundByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	g, err := gc.repo.GetGroundByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch ground", zap.Uint64("ground_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve ground")
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", g)
}

// UpdateGround godoc
// @Summary Update a ground
// @Tags Grounds
// @Accept json
// @Produce json
// @Param ground_id path int true "Ground ID"
// @Param ground body UpdateGroundRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Ground}
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Router /grounds/{ground_id} [put]
// @Security BearerAuth
func (gc *GroundController) UpdateGround(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	var req UpdateGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	g, err := gc.repo.GetGroundByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch ground", zap.Uint64("ground_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update ground")
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}

	if req.SportID != nil {
		g.SportID = *req.SportID
	}
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.Capacity != nil {
		g.Capacity = *req.Capacity
	}
	if req.PricePerHour != nil {
		g.PricePerHour = *req.PricePerHour
	}
	if req.OpeningTime != nil {
		g.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		g.ClosingTime = *req.ClosingTime
	}
	if req.Amenities != nil {
		g.Amenities = models.StringSlice(*req.Amenities)
	}
	if req.Images != nil {
		g.Images = models.StringSlice(*req.Images)
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}

	if !validOperatingHours(g.OpeningTime, g.ClosingTime) {
		responses.BadRequest(c, "Invalid operating hours: expected HH:MM with closing after opening")
		return
	}

	if err := gc.repo.UpdateGround(g); err != nil {
		config.Logger.Error("failed to update ground", zap.Uint64("ground_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update ground")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Ground updated successfully", g)
}

// DeleteGround godoc
// @Summary Delete a ground
// @Tags Grounds
// @Produce json
// @Param ground_id path int true "Ground ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Router /grounds/{ground_id} [delete]
// @Security BearerAuth
func (gc *GroundController) DeleteGround(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	g, err := gc.repo.GetGroundByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch ground", zap.Uint64("ground_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete ground")
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}

	if err := gc.repo.DeleteGround(uint(id)); err != nil {
		config.Logger.Error("failed to delete ground", zap.Uint64("ground_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete ground")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Ground deleted successfully", nil)
}
