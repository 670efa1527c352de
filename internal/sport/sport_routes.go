package sport

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	mw "github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/pkg/rmiddleware"
)

func RegisterSportRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	sportRepo := NewSportRepository(db)
	sportController := NewSportController(sportRepo, appConfig)

	publicSports := router.Group("/sports")
	{
		publicSports.GET("", sportController.GetAllSports)
		publicSports.GET("/:sport_id", sportController.GetSportByID)
	}

	// Sport management - Admin only
	adminSports := router.Group("/sports")
	adminSports.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminSports.POST("", sportController.CreateSport)
		adminSports.PUT("/:sport_id", sportController.UpdateSport)
		adminSports.DELETE("/:sport_id", sportController.DeleteSport)
	}
}
