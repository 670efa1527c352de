package booking

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	"github.com/turfbook/turfbook/internal/feedback"
	"github.com/turfbook/turfbook/internal/ground"
	"github.com/turfbook/turfbook/internal/membership"
	mw "github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/internal/promo"
	"github.com/turfbook/turfbook/pkg/rmiddleware"
)

func RegisterBookingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, notifier Notifier) {
	bookingRepo := NewBookingRepository(db)
	service := NewBookingService(
		bookingRepo,
		ground.NewGroundRepository(db),
		promo.NewPromoRepository(db),
		membership.NewMembershipRepository(db),
		feedback.NewFeedbackRepository(db),
		notifier,
		appConfig.Booking.FeedbackDiscountPercent,
	)
	bookingController := NewBookingController(service, bookingRepo)

	// Availability is public so visitors can browse free slots before signing in.
	router.GET("/grounds/:ground_id/availability", bookingController.GetAvailability)

	authBookings := router.Group("/bookings")
	authBookings.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authBookings.POST("/quote", bookingController.QuoteBooking)
		authBookings.POST("", bookingController.CreateBooking)
		authBookings.GET("/my", bookingController.GetMyBookings)
		authBookings.GET("/:booking_id", bookingController.GetBooking)
		authBookings.PUT("/:booking_id/cancel", bookingController.CancelBooking)
		authBookings.PUT("/:booking_id/pay", bookingController.PayBooking)
	}

	adminBookings := router.Group("/admin/bookings")
	adminBookings.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminBookings.GET("", bookingController.GetAllBookings)
		adminBookings.GET("/stats", bookingController.GetStats)
		adminBookings.PUT("/:booking_id/status", bookingController.UpdateBookingStatus)
	}
}
