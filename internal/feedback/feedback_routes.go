package feedback

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	mw "github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/pkg/rmiddleware"
)

func RegisterFeedbackRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	feedbackRepo := NewFeedbackRepository(db)
	feedbackController := NewFeedbackController(feedbackRepo)

	authFeedback := router.Group("/feedback")
	authFeedback.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authFeedback.POST("", feedbackController.CreateFeedback)
	}

	adminFeedback := router.Group("/admin/feedback")
	adminFeedback.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminFeedback.GET("", feedbackController.GetAllFeedback)
	}
}
