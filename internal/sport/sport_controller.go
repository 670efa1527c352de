package sport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/pkg/responses"
	"github.com/turfbook/turfbook/pkg/validator"
)

// SportController handles API requests related to sports.
type SportController struct {
	repo   SportRepository
	config *config.Config
}

// NewSportController creates a new SportController.
func NewSportController(repo SportRepository, cfg *config.Config) *SportController {
	return &SportController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type CreateSportRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Image       string `json:"image" binding:"omitempty,url|uri,max=500"`
}

type UpdateSportRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Image       string `json:"image" binding:"omitempty,url|uri,max=500"`
}

// CreateSport godoc
// @Summary Create a new sport
// @Description Admin can create a new sport
// @Tags Sports
// @Accept json
// @Produce json
// @Param sport body CreateSportRequest true "Sport creation request"
// @Success 201 {object} responses.SuccessResponse{data=Sport}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 409 {object} responses.ErrorResponse "Sport with this name already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sports [post]
// @Security BearerAuth
func (sc *SportController) CreateSport(c *gin.Context) {
	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existingSport, _ := sc.repo.FindSportByName(req.Name)
	if existingSport != nil {
		responses.SendError(c, http.StatusConflict, "Sport with this name already exists", nil)
		return
	}

	sport := Sport{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := sc.repo.CreateSport(&sport); err != nil {
		config.Logger.Error("failed to create sport", zap.Error(err))
		responses.SendError(c, http.StatusInternalServerError, "Failed to create sport", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Sport created successfully", sport)
}

// GetAllSports godoc
// @Summary Get all sports
// @Description Get a list of all available sports with optional search
// @Tags Sports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param search query string false "Search term for name or description"
// @Success 200 {object} responses.PaginatedResponse{data=[]Sport}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sports [get]
func (sc *SportController) GetAllSports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	searchTerm := c.Query("search")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	sports, total, err := sc.repo.GetAllSports(page, pageSize, searchTerm)
	if err != nil {
		config.Logger.Error("failed to list sports", zap.Error(err))
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sports", nil)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", sports, total, page, pageSize)
}

// GetSportByID godoc
// @Summary Get a sport by ID
// @Tags Sports
// @Produce json
// @Param sport_id path int true "Sport ID"
// @Success 200 {object} responses.SuccessResponse{data=Sport}
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /sports/{sport_id} [get]
func (sc *SportController) GetSportByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("sport_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}

	sport, err := sc.repo.GetSportByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch sport", zap.Uint64("sport_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve sport")
		return
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", sport)
}

// UpdateSport godoc
// @Summary Update a sport
// @Tags Sports
// @Accept json
// @Produce json
// @Param sport_id path int true "Sport ID"
// @Param sport body UpdateSportRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Sport}
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /sports/{sport_id} [put]
// @Security BearerAuth
func (sc *SportController) UpdateSport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("sport_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}

	var req UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	sport, err := sc.repo.GetSportByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch sport", zap.Uint64("sport_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update sport")
		return
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return
	}

	if req.Name != "" {
		sport.Name = req.Name
	}
	if req.Description != "" {
		sport.Description = req.Description
	}
	if req.Image != "" {
		sport.Image = req.Image
	}

	if err := sc.repo.UpdateSport(sport); err != nil {
		config.Logger.Error("failed to update sport", zap.Uint64("sport_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update sport")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sport updated successfully", sport)
}

// DeleteSport godoc
// @Summary Delete a sport
// @Tags Sports
// @Produce json
// @Param sport_id path int true "Sport ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /sports/{sport_id} [delete]
// @Security BearerAuth
func (sc *SportController) DeleteSport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("sport_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}

	sport, err := sc.repo.GetSportByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch sport", zap.Uint64("sport_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete sport")
		return
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return
	}

	if err := sc.repo.DeleteSport(uint(id)); err != nil {
		config.Logger.Error("failed to delete sport", zap.Uint64("sport_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete sport")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sport deleted successfully", nil)
}
