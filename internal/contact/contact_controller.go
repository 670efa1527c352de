package contact

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/pkg/responses"
	"github.com/turfbook/turfbook/pkg/validator"
)

type ContactController struct {
	repo ContactRepository
}

func NewContactController(repo ContactRepository) *ContactController {
	return &ContactController{repo: repo}
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=2,max=200"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

// CreateSubmission godoc
// @Summary Submit a contact form message
// @Tags Contact
// @Accept json
// @Produce json
// @Param submission body CreateContactRequest true "Message details"
// @Success 201 {object} responses.SuccessResponse
// @Router /contact [post]
func (cc *ContactController) CreateSubmission(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	submission := ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := cc.repo.Create(&submission); err != nil {
		config.Logger.Error("failed to save contact submission", zap.Error(err))
		responses.InternalServerError(c, "Failed to submit message")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Thank you for reaching out, we will get back to you soon", nil)
}

// GetAllSubmissions godoc
// @Summary List contact form submissions
// @Tags Contact
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]ContactSubmission}
// @Router /admin/contact [get]
// @Security BearerAuth
func (cc *ContactController) GetAllSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	submissions, total, err := cc.repo.GetAll(page, pageSize)
	if err != nil {
		config.Logger.Error("failed to list contact submissions", zap.Error(err))
		responses.InternalServerError(c, "Failed to retrieve submissions")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", submissions, total, page, pageSize)
}

// DeleteSubmission godoc
// @Summary Delete a contact form submission
// @Tags Contact
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Submission not found"
// @Router /admin/contact/{submission_id} [delete]
// @Security BearerAuth
func (cc *ContactController) DeleteSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("submission_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid submission ID")
		return
	}

	submission, err := cc.repo.GetByID(uint(id))
	if err != nil {
		config.Logger.Error("failed to fetch contact submission", zap.Uint64("submission_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete submission")
		return
	}
	if submission == nil {
		responses.NotFound(c, "Contact submission")
		return
	}

	if err := cc.repo.Delete(uint(id)); err != nil {
		config.Logger.Error("failed to delete contact submission", zap.Uint64("submission_id", id), zap.Error(err))
		responses.InternalServerError(c, "Failed to delete submission")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact submission deleted successfully", nil)
}
