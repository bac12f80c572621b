package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campuscare/internal/app/controllers"
	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	chatbotController *controllers.ChatbotController,
	trendController *controllers.TrendController,
	reviewController *controllers.ReviewController,
	ticketController *controllers.TicketController,
	sessionController *controllers.SessionController,
	resourceController *controllers.ResourceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Identity is resolved once for every request. The gates below decide
	// per group whether a missing identity redirects or forbids.
	router.Use(authMiddleware.Authenticate())

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.GET("/login", authController.LoginEntry)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Login-gated routes, any role ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.LoginRequired())
	{
		resources := authenticated.Group("/resources")
		{
			resources.GET("", resourceController.List)
			resources.GET("/:id", resourceController.Get)
		}

		account := authenticated.Group("/account")
		{
			account.GET("", userController.GetProfile)
			account.PUT("/email", userController.ChangeEmail)
			account.PUT("/password", userController.ResetPassword)
			account.POST("/delete-history", userController.DeleteHistory)
		}

		chatbot := authenticated.Group("/chatbot")
		{
			chatbot.POST("/conversations", chatbotController.StartConversation)
			chatbot.GET("/conversations/:id/messages", chatbotController.ListMessages)
			chatbot.POST("/message", chatbotController.SendMessage)
		}

		authenticated.GET("/trend-report", trendController.GetReport)
		authenticated.POST("/reviews", reviewController.Create)
		authenticated.GET("/reviews", reviewController.List)
	}

	// --- Role-gated routes, 403 on mismatch ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/reviews", reviewController.List)
		admin.DELETE("/reviews/:id", reviewController.Delete)
		admin.PUT("/resources/:id", resourceController.Update)
		admin.DELETE("/users/:id", userController.DeleteUser)
	}

	student := v1.Group("/student")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.POST("/tickets", ticketController.Open)
		student.GET("/tickets", ticketController.ListMine)
		student.GET("/tickets/:id", ticketController.Get)
		student.POST("/tickets/:id/messages", ticketController.AddMessage)
		student.POST("/sessions", sessionController.Schedule)
		student.GET("/sessions", sessionController.ListMine)
	}

	counsellor := v1.Group("/counsellor")
	counsellor.Use(authMiddleware.RoleRequired(models.RoleCounsellor))
	{
		counsellor.GET("/tickets", ticketController.ListAssigned)
		counsellor.GET("/tickets/:id", ticketController.Get)
		counsellor.POST("/tickets/:id/messages", ticketController.AddMessage)
		counsellor.PUT("/tickets/:id/assign", ticketController.Assign)
		counsellor.POST("/tickets/:id/close", ticketController.Close)
		counsellor.GET("/sessions", sessionController.ListAssigned)
		counsellor.POST("/sessions/:id/toggle", sessionController.ToggleStatus)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Unknown paths get the same envelope as entity lookups that miss
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Not found"),
		})
	})
}
