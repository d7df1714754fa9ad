package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/controllers"
	"github.com/burakuz/campushare/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	organizationController *controllers.OrganizationController,
	serviceController *controllers.ServiceController,
	serviceRequestController *controllers.ServiceRequestController,
	equipmentController *controllers.EquipmentController,
	borrowingController *controllers.BorrowingController,
	connectionController *controllers.ConnectionController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	organizations := v1.Group("/organizations")
	{
		organizations.GET("", organizationController.GetAll)
		organizations.GET("/:id", organizationController.GetByID)
		organizations.GET("/:id/services", organizationController.GetServices)
		organizations.GET("/:id/equipment", organizationController.GetEquipment)
	}

	servicesGroup := v1.Group("/services")
	{
		servicesGroup.GET("", serviceController.GetAll)
		servicesGroup.GET("/:id", serviceController.GetByID)
	}

	equipmentGroup := v1.Group("/equipment")
	{
		equipmentGroup.GET("", equipmentController.GetAll)
		equipmentGroup.GET("/:id", equipmentController.GetByID)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.POST("/auth/logout-all", authController.LogoutAll)

		authenticated.POST("/services", serviceController.Create)
		authenticated.PUT("/services/:id", serviceController.Update)
		authenticated.DELETE("/services/:id", serviceController.Delete)
		authenticated.GET("/services/:id/requests", serviceRequestController.ListForService)
		authenticated.POST("/services/:id/requests", serviceRequestController.Create)

		authenticated.GET("/service-requests", serviceRequestController.List)
		authenticated.PUT("/service-requests/:id/status", serviceRequestController.UpdateStatus)

		authenticated.POST("/equipment", equipmentController.Create)
		authenticated.PUT("/equipment/:id", equipmentController.Update)
		authenticated.DELETE("/equipment/:id", equipmentController.Delete)
		authenticated.GET("/equipment/:id/borrowings", borrowingController.ListForEquipment)
		authenticated.POST("/equipment/:id/borrowings", borrowingController.Create)

		authenticated.GET("/equipment-borrowings", borrowingController.List)
		authenticated.PUT("/equipment-borrowings/:id/status", borrowingController.UpdateStatus)

		authenticated.GET("/connections", connectionController.List)
		authenticated.POST("/connections", connectionController.Create)
		authenticated.PUT("/connections/:id/status", connectionController.UpdateStatus)

		authenticated.POST("/messages", messageController.Send)
		authenticated.GET("/messages/unread-count", messageController.UnreadCount)
		authenticated.GET("/messages/conversations/:organizationId", messageController.GetConversation)
		authenticated.PUT("/messages/:id/read", messageController.MarkRead)

		authenticated.GET("/dashboard/stats", organizationController.GetDashboardStats)
	}
}
