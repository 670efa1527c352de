package contact

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	mw "github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/pkg/rmiddleware"
)

func RegisterContactRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	contactRepo := NewContactRepository(db)
	contactController := NewContactController(contactRepo)

	router.POST("/contact", contactController.CreateSubmission)

	adminContact := router.Group("/admin/contact")
	adminContact.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminContact.GET("", contactController.GetAllSubmissions)
		adminContact.DELETE("/:submission_id", contactController.DeleteSubmission)
	}
}
