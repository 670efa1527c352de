package ground

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	mw "github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/pkg/rmiddleware"
)

func RegisterGroundRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	groundRepo := NewGroundRepository(db)
	groundController := NewGroundController(groundRepo, appConfig)

	publicGrounds := router.Group("/grounds")
	{
		publicGrounds.GET("", groundController.GetAllGrounds)
		publicGrounds.GET("/:ground_id", groundController.GetGroundByID)
	}

	// Ground management - Admin only
	adminGrounds := router.Group("/grounds")
	adminGrounds.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminGrounds.POST("", groundController.CreateGround)
		adminGrounds.PUT("/:ground_id", groundController.UpdateGround)
		adminGrounds.DELETE("/:ground_id", groundController.DeleteGround)
	}
}
