package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gigcampus/cmd/fx/account_fx"
	"gigcampus/cmd/fx/db_fx"
	"gigcampus/cmd/fx/earnings_fx"
	"gigcampus/cmd/fx/escrow_fx"
	"gigcampus/cmd/fx/logger_fx"
	"gigcampus/cmd/fx/payment_fx"
	"gigcampus/cmd/fx/project_fx"
	"gigcampus/cmd/fx/withdrawal_fx"
	"gigcampus/internal/api/controllers"
	"gigcampus/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		payment_fx.Module,
		escrow_fx.Module,
		withdrawal_fx.Module,
		earnings_fx.Module,
		project_fx.Module,
		account_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	paymentController *controllers.PaymentController,
	escrowController *controllers.EscrowController,
	withdrawalController *controllers.WithdrawalController,
	earningsController *controllers.EarningsController,
	projectController *controllers.ProjectController,
	applicationController *controllers.ApplicationController,
	accountController *controllers.AccountController,
	adminController *controllers.AdminController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		paymentController, escrowController, withdrawalController,
		earningsController, projectController, applicationController,
		accountController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	paymentController *controllers.PaymentController,
	escrowController *controllers.EscrowController,
	withdrawalController *controllers.WithdrawalController,
	earningsController *controllers.EarningsController,
	projectController *controllers.ProjectController,
	applicationController *controllers.ApplicationController,
	accountController *controllers.AccountController,
	adminController *controllers.AdminController,
) {
	auth := middleware.JWTAuthMiddleware()

	r.POST("/auth/admin/login", accountController.AdminLogin)

	projects := r.Group("/projects")
	projects.GET("/:id", projectController.GetProject)
	projects.POST("", auth, projectController.CreateProject)

	applications := r.Group("/applications", auth)
	applications.POST("", applicationController.Apply)
	applications.POST("/:id/accept", applicationController.Accept)

	payments := r.Group("/payments")
	payments.POST("/create-order", auth, paymentController.CreateOrder)
	// The verify callback carries its own proof of authenticity (the
	// gateway signature); rate limiting keeps forged-callback floods at bay.
	payments.POST("/verify", middleware.RateLimitPerIP(30), paymentController.VerifyPayment)
	payments.POST("/release-escrow", auth, escrowController.ReleaseEscrow)
	payments.POST("/dispute-escrow", auth, escrowController.DisputeEscrow)
	payments.POST("/refund-escrow", auth, escrowController.RefundEscrow)
	payments.POST("/withdraw", auth, withdrawalController.Withdraw)

	users := r.Group("/users", auth)
	users.GET("/:id/earnings", earningsController.GetEarnings)

	admin := r.Group("/admin", auth, middleware.RoleMiddleware("admin"))
	admin.GET("/payments/recent", adminController.RecentPayments)
}
