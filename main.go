package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/turfbook/turfbook/config"
	_ "github.com/turfbook/turfbook/docs"
	"github.com/turfbook/turfbook/internal/booking"
	"github.com/turfbook/turfbook/internal/contact"
	"github.com/turfbook/turfbook/internal/feedback"
	"github.com/turfbook/turfbook/internal/ground"
	"github.com/turfbook/turfbook/internal/membership"
	"github.com/turfbook/turfbook/internal/promo"
	"github.com/turfbook/turfbook/internal/sport"
	"github.com/turfbook/turfbook/internal/user"
	"github.com/turfbook/turfbook/routes"
)

// @title TurfBook REST API
// @version 1.0
// @description Sports facility booking server: grounds, hourly slots, discounts and memberships.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&sport.Sport{}, &ground.Ground{},
		&booking.Booking{}, &feedback.BookingFeedback{},
		&promo.PromoCode{},
		&membership.MembershipPlan{}, &membership.UserMembership{},
		&contact.ContactSubmission{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	config.Logger.Info("database migrated")

	r := routes.SetupRoutes(cfg)

	config.Logger.Info("starting server",
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
