package membership

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/config"
	mw "github.com/turfbook/turfbook/internal/middleware"
	"github.com/turfbook/turfbook/pkg/rmiddleware"
)

func RegisterMembershipRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	membershipRepo := NewMembershipRepository(db)
	membershipController := NewMembershipController(membershipRepo, appConfig)

	router.GET("/membership-plans", membershipController.GetAllPlans)

	authMemberships := router.Group("/memberships")
	authMemberships.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authMemberships.POST("/purchase", membershipController.Purchase)
		authMemberships.GET("/my", membershipController.GetMyMembership)
	}

	// Plan management and the full membership listing - Admin only
	adminPlans := router.Group("/membership-plans")
	adminPlans.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminPlans.POST("", membershipController.CreatePlan)
		adminPlans.PUT("/:plan_id", membershipController.UpdatePlan)
		adminPlans.DELETE("/:plan_id", membershipController.DeletePlan)
	}

	adminMemberships := router.Group("/admin/user-memberships")
	adminMemberships.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware())
	{
		adminMemberships.GET("", membershipController.GetAllUserMemberships)
	}
}
