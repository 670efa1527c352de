package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/internal/auth"
	"github.com/turfbook/turfbook/internal/booking"
	"github.com/turfbook/turfbook/internal/contact"
	"github.com/turfbook/turfbook/internal/feedback"
	"github.com/turfbook/turfbook/internal/ground"
	"github.com/turfbook/turfbook/internal/membership"
	"github.com/turfbook/turfbook/internal/notify"
	"github.com/turfbook/turfbook/internal/promo"
	"github.com/turfbook/turfbook/internal/sport"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.Static("/public", "./public")

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "TurfBook API",
			"docs":   "/swagger/index.html",
			"status": "ok",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := config.DB
	notifier := notify.NewNotifier(appConfig)

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	sport.RegisterSportRoutes(api, db, appConfig)
	ground.RegisterGroundRoutes(api, db, appConfig)
	booking.RegisterBookingRoutes(api, db, appConfig, notifier)
	promo.RegisterPromoRoutes(api, db, appConfig)
	membership.RegisterMembershipRoutes(api, db, appConfig)
	feedback.RegisterFeedbackRoutes(api, db, appConfig)
	contact.RegisterContactRoutes(api, db, appConfig)

	return r
}
