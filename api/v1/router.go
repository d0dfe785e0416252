package v1

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/config"
	"github.com/landpro-backend/lib/llm"
	"github.com/landpro-backend/middleware"
	"github.com/landpro-backend/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Services that read API keys are built here, after LoadEnv has run
	quoteService = services.NewQuoteService(
		llm.NewClient(config.OpenAIBaseURL(), os.Getenv("OPENAI_API_KEY"), config.QuoteModel))
	analysisService = services.NewAnalysisService(
		llm.NewClient(config.AIGatewayBaseURL(), os.Getenv("AI_GATEWAY_API_KEY"), config.AnalysisModel))
	paymentService = services.NewPaymentService()

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Stripe calls this; signature verification replaces auth
	router.POST("/stripe-webhook", StripeWebhook)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	// Business profile
	authRouter.GET("/profile", GetProfile)
	authRouter.PUT("/profile", UpdateProfile)

	// AI endpoints
	authRouter.POST("/generate-quote", GenerateQuote)
	authRouter.POST("/analyze-land", AnalyzeLand)

	// Measurement tool
	authRouter.POST("/geo/measure", Measure)

	// Client portal snapshot for portal accounts
	authRouter.GET("/portal", PortalView)

	// Project endpoints
	projectGroup := authRouter.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.GET("/:id/analyses", ListAnalyses)
	}

	// Client endpoints
	clientGroup := authRouter.Group("/clients")
	{
		clientGroup.GET("", ListClients)
		clientGroup.POST("", CreateClient)
		clientGroup.GET("/:id", GetClient)
		clientGroup.PUT("/:id", UpdateClient)
		clientGroup.DELETE("/:id", DeleteClient)
	}

	// Quote endpoints
	quoteGroup := authRouter.Group("/quotes")
	{
		quoteGroup.GET("", ListQuotes)
		quoteGroup.POST("", CreateQuote)
		quoteGroup.GET("/:id", GetQuote)
		quoteGroup.PUT("/:id", UpdateQuote)
		quoteGroup.DELETE("/:id", DeleteQuote)
	}

	// Invoice endpoints
	invoiceGroup := authRouter.Group("/invoices")
	{
		invoiceGroup.GET("", ListInvoices)
		invoiceGroup.POST("", CreateInvoice)
		invoiceGroup.GET("/:id", GetInvoice)
		invoiceGroup.PUT("/:id", UpdateInvoice)
		invoiceGroup.DELETE("/:id", DeleteInvoice)
		invoiceGroup.POST("/:id/payment-link", CreatePaymentLink)
	}

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/stats", GetBusinessStats)
		adminGroup.GET("/users", ListUsers)
	}
}
