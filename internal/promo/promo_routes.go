package promo

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	mw "github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/pkg/rmiddleware"
)

func RegisterPromoRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	promoRepo := NewPromoRepository(db)
	promoController := NewPromoController(promoRepo, appConfig)

	// Validation is available to any signed-in user building a booking.
	authPromo := router.Group("/promo-codes")
	authPromo.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authPromo.POST("/validate", promoController.ValidatePromoCode)
	}

	// Promo code management - Admin only
	adminPromo := router.Group("/promo-codes")
	adminPromo.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminPromo.POST("", promoController.CreatePromoCode)
		adminPromo.GET("", promoController.GetAllPromoCodes)
		adminPromo.PUT("/:promo_id", promoController.UpdatePromoCode)
		adminPromo.DELETE("/:promo_id", promoController.DeletePromoCode)
	}
}
