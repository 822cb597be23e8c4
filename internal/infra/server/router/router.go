// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/integration/entrypoint/controller"
	"github.com/homeledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	borrowingController   *controller.BorrowingController
	budgetController      *controller.BudgetController
	templateController    *controller.TemplateController
	settingsController    *controller.SettingsController
	reportController      *controller.ReportController
	aiController          *controller.AIController
	activityController    *controller.ActivityController
	loginRateLimiter      *middleware.RateLimiter
	aiRateLimiter         *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	borrowingController *controller.BorrowingController,
	budgetController *controller.BudgetController,
	templateController *controller.TemplateController,
	settingsController *controller.SettingsController,
	reportController *controller.ReportController,
	aiController *controller.AIController,
	activityController *controller.ActivityController,
	loginRateLimiter *middleware.RateLimiter,
	aiRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		borrowingController:   borrowingController,
		budgetController:      budgetController,
		templateController:    templateController,
		settingsController:    settingsController,
		reportController:      reportController,
		aiController:          aiController,
		activityController:    activityController,
		loginRateLimiter:      loginRateLimiter,
		aiRateLimiter:         aiRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.GET("/users", r.authController.Users)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.Authenticate())
		{
			transactions := protected.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/bulk-import", r.transactionController.BulkImport)
			}

			borrowings := protected.Group("/borrowings")
			{
				borrowings.GET("", r.borrowingController.List)
				borrowings.POST("", r.borrowingController.Create)
				borrowings.PUT("/:id", r.borrowingController.Update)
				borrowings.DELETE("/:id", r.borrowingController.Delete)
				borrowings.POST("/:id/repayments", r.borrowingController.AddRepayment)
			}

			budgets := protected.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.DELETE("/:id", r.budgetController.Delete)
				budgets.GET("/evaluate", r.budgetController.Evaluate)
			}

			templates := protected.Group("/templates")
			{
				templates.GET("", r.templateController.List)
				templates.POST("", r.templateController.Create)
				templates.DELETE("/:name", r.templateController.Delete)
			}

			protected.GET("/settings", r.settingsController.Get)
			protected.PATCH("/settings", r.settingsController.Update)

			reports := protected.Group("/reports")
			{
				reports.GET("/breakdown", r.reportController.Breakdown)
				reports.GET("/summary", r.reportController.Summary)
				reports.GET("/categories/:category", r.reportController.CategoryFinance)
				reports.GET("/export", r.reportController.ExportCSV)
			}

			// The extractor costs real money per call, so AI routes carry
			// their own limiter.
			ai := protected.Group("/ai")
			ai.Use(r.aiRateLimiter.Middleware())
			{
				ai.POST("/chat", r.aiController.Chat)
				ai.POST("/process-files", r.aiController.ProcessFiles)
			}

			protected.GET("/activity", r.activityController.Last)
		}
	}
}
