package membership

import (
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

// MembershipController handles API requests for plans and user memberships.
type MembershipController struct {
	repo   MembershipRepository
	config *config.Config
}

func NewMembershipController(repo MembershipRepository, cfg *config.Config) *MembershipController {
	return &MembershipController{repo: repo, config: cfg}
}

type CreatePlanRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=100"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMonths  int     `json:"duration_months" binding:"required,min=1,max=60"`
	DiscountPercent float64 `json:"discount_percent" binding:"required,gt=0,lte=100"`
}

type UpdatePlanRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Price           *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	DurationMonths  *int     `json:"duration_months,omitempty" binding:"omitempty,min=1,max=60"`
	DiscountPercent *float64 `json:"discount_percent,omitempty" binding:"omitempty,gt=0,lte=100"`
}

type PurchaseRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

// GetAllPlans godoc
// @Summary List membership plans
// @Tags Memberships
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]MembershipPlan}
// @Router /membership-plans [get]
func (mc *MembershipController) GetAllPlans(c *gin.Context) {
	plans, err := mc.repo.GetAllPlans()
	if err != nil {
		config.Logger.Error("failed to list membership plans", zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve membership plans")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", plans)
}

// CreatePlan godoc
// @Summary Create a membership plan
// @Tags Memberships
// @Accept json
// @Produce json
// @Param plan body CreatePlanRequest true "Plan details"
// @Success 201 {object} responses.SuccessResponse{data=MembershipPlan}
// @Router /membership-plans [post]
// @Security BearerAuth
func (mc *MembershipController) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	plan := MembershipPlan{
		Name:            req.Name,
		Price:           req.Price,
		DurationMonths:  req.DurationMonths,
		DiscountPercent: req.DiscountPercent,
	}

	if err := mc.repo.CreatePlan(&plan); err != nil {
		config.Logger.Error("failed to create membership plan", zap.Error(err))
		responses.InternalServerError(c, "Failed to create membership plan")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Membership plan created successfully", plan)
}

// UpdatePlan godoc
// @Summary Update a membership plan
// @Tags Memberships
// @Accept json
// @Produce json
// @Param plan_id path int true "Plan ID"
// @Param plan body UpdatePlanRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=MembershipPlan}
// @Failure 404 {object} responses.ErrorResponse "Plan not found"
// @Router /membership-plans/{plan_id} [put]
// @Security BearerAuth
func (mc *MembershipController) UpdatePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("plan_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid plan ID")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	plan, err := mc.repo.GetPlanByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch membership plan", zap.Uint64("plan_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update membership plan")
		return
	}
	if plan == nil {
		responses.NotFound(c, "Membership plan")
		return
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DurationMonths != nil {
		plan.DurationMonths = *req.DurationMonths
	}
	if req.DiscountPercent != nil {
		plan.DiscountPercent = *req.DiscountPercent
	}

	if err := mc.repo.UpdatePlan(plan); err != nil {
		config.Logger.Error("failed to update membership plan", zap.Uint64("plan_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to update membership plan")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Membership plan updated successfully", plan)
}

// DeletePlan godoc
// @Summary Delete a membership plan
// @Tags Memberships
// @Produce json
// @Param plan_id path int true "Plan ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Plan not found"
// @Router /membership-plans/{plan_id} [delete]
// @Security BearerAuth
func (mc *MembershipController) DeletePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("plan_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid plan ID")
		return
	}

	plan, err := mc.repo.GetPlanByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch membership plan", zap.Uint64("plan_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete membership plan")
		return
	}
	if plan == nil {
		responses.NotFound(c, "Membership plan")
		return
	}

	if err := mc.repo.DeletePlan(uint(id)); err != nil {
		config.Logger.Error("failed to delete membership plan", zap.Uint64("plan_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete membership plan")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Membership plan deleted successfully", nil)
}

// Purchase godoc
// @Summary Purchase a membership
// @Description Starts a membership today for the plan's duration. One active membership per user.
// @Tags Memberships
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Plan to purchase"
// @Success 201 {object} responses.SuccessResponse{data=UserMembership}
// @Failure 404 {object} responses.ErrorResponse "Plan not found"
// @Failure 409 {object} responses.ErrorResponse "Already an active membership"
// @Router /memberships/purchase [post]
// @Security BearerAuth
func (mc *MembershipController) Purchase(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	plan, err := mc.repo.GetPlanByID(req.PlanID)
	if err != nil {
		config.Logger.Error("failed to fetch membership plan", zap.Uint("plan_id", req.PlanID), zap.Error(err))
		responses.InternalServerError(c, "Failed to purchase membership")
		return
	}
	if plan == nil {
		responses.NotFound(c, "Membership plan")
		return
	}

	existing, err := mc.repo.GetActiveMembership(userID, time.Now())
	if err != nil {
		config.Logger.Error("failed to check active membership", zap.Uint("user_id", userID), zap.Error(err))
		responses.InternalServerError(c, "Failed to purchase membership")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "You already have an active membership", nil)
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	m := UserMembership{
		UserID:    userID,
		PlanID:    plan.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, plan.DurationMonths, 0),
	}

	if err := mc.repo.CreateUserMembership(&m); err != nil {
		config.Logger.Error("failed to create membership", zap.Uint("user_id", userID), zap.Error(err))
		responses.InternalServerError(c, "Failed to purchase membership")
		return
	}

	m.Plan = *plan
	responses.SendSuccess(c, http.StatusCreated, "Membership purchased successfully", m)
}

// GetMyMembership godoc
// @Summary Get the caller's active membership
// @Tags Memberships
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserMembership}
// @Failure 404 {object} responses.ErrorResponse "No active membership"
// @Router /memberships/my [get]
// @Security BearerAuth
func (mc *MembershipController) GetMyMembership(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	m, err := mc.repo.GetActiveMembership(userID, time.Now())
	if err != nil {
		config.Logger.Error("failed to fetch membership", zap.Uint("user_id", userID), zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve membership")
		return
	}
	if m == nil {
		responses.NotFound(c, "Active membership")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", m)
}

// GetAllUserMemberships godoc
// @Summary List all user memberships
// @Tags Memberships
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]UserMembership}
// @Router /admin/user-memberships [get]
// @Security BearerAuth
func (mc *MembershipController) GetAllUserMemberships(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	memberships, total, err := mc.repo.GetAllUserMemberships(page, pageSize)
	if err != nil {
		config.Logger.Error("failed to list user memberships", zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve user memberships")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", memberships, total, page, pageSize)
}
