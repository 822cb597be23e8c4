// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/homeledger/backend/config"
	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/aichat"
	"github.com/homeledger/backend/internal/application/usecase/auth"
	"github.com/homeledger/backend/internal/application/usecase/borrowing"
	"github.com/homeledger/backend/internal/application/usecase/budget"
	"github.com/homeledger/backend/internal/application/usecase/reconciliation"
	"github.com/homeledger/backend/internal/application/usecase/report"
	"github.com/homeledger/backend/internal/application/usecase/settings"
	"github.com/homeledger/backend/internal/application/usecase/template"
	"github.com/homeledger/backend/internal/application/usecase/transaction"
	"github.com/homeledger/backend/internal/infra/db"
	"github.com/homeledger/backend/internal/infra/server/router"
	"github.com/homeledger/backend/internal/integration/adapters"
	"github.com/homeledger/backend/internal/integration/entrypoint/controller"
	"github.com/homeledger/backend/internal/integration/entrypoint/middleware"
	"github.com/homeledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  *persistence.SyncedLedgerStore
	Router *router.Router

	closers []func() error
}

// NewInjector creates a new dependency injector with all dependencies
// wired. A configured Firestore project selects the shared remote store;
// otherwise the embedded SQLite store serves single-host deployments.
func NewInjector(ctx context.Context, cfg *config.Config) (*Injector, error) {
	injector := &Injector{Config: cfg}

	documents, err := injector.newDocumentStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := persistence.NewSyncedLedgerStore(documents)
	if err := store.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start ledger store: %w", err)
	}
	injector.Store = store
	injector.closers = append(injector.closers, func() error {
		store.Stop()
		return nil
	})

	// Adapters/services
	activityLog := adapters.NewActivityLog()
	tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	pinService := adapters.NewPinService()
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Use cases
	reconcileUseCase := reconciliation.NewReconcileBatchUseCase()

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(store, activityLog)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(store, activityLog)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(store, activityLog)
	bulkImportUseCase := transaction.NewBulkImportUseCase(store, activityLog)

	listBorrowingsUseCase := borrowing.NewListBorrowingsUseCase(store)
	createBorrowingUseCase := borrowing.NewCreateBorrowingUseCase(store, activityLog)
	updateBorrowingUseCase := borrowing.NewUpdateBorrowingUseCase(store, activityLog)
	deleteBorrowingUseCase := borrowing.NewDeleteBorrowingUseCase(store, activityLog)
	addRepaymentUseCase := borrowing.NewAddRepaymentUseCase(store, activityLog)

	createBudgetUseCase := budget.NewCreateBudgetUseCase(store, activityLog)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(store, activityLog)
	evaluateBudgetUseCase := budget.NewEvaluateBudgetUseCase(store)

	createTemplateUseCase := template.NewCreateTemplateUseCase(store, activityLog)
	deleteTemplateUseCase := template.NewDeleteTemplateUseCase(store, activityLog)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(store, pinService, activityLog)

	breakdownUseCase := report.NewGetCategoryBreakdownUseCase(store)
	summaryUseCase := report.NewGetSummaryUseCase(store)
	categoryFinanceUseCase := report.NewGetCategoryFinanceUseCase(store)
	exportUseCase := report.NewExportCSVUseCase(store)

	chatUseCase := aichat.NewChatUseCase(store, geminiService, reconcileUseCase)
	processFilesUseCase := aichat.NewProcessFilesUseCase(store, geminiService, reconcileUseCase)

	loginUseCase := auth.NewLoginUserUseCase(store, tokenService, pinService, cfg.Auth.Users, cfg.Auth.UniversalPIN)

	// Controllers
	healthController := controller.NewHealthController(store)
	authController := controller.NewAuthController(loginUseCase, cfg.Auth.Users)
	transactionController := controller.NewTransactionController(
		store,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkImportUseCase,
	)
	borrowingController := controller.NewBorrowingController(
		listBorrowingsUseCase,
		createBorrowingUseCase,
		updateBorrowingUseCase,
		deleteBorrowingUseCase,
		addRepaymentUseCase,
	)
	budgetController := controller.NewBudgetController(store, createBudgetUseCase, deleteBudgetUseCase, evaluateBudgetUseCase)
	templateController := controller.NewTemplateController(store, createTemplateUseCase, deleteTemplateUseCase)
	settingsController := controller.NewSettingsController(store, updateSettingsUseCase)
	reportController := controller.NewReportController(breakdownUseCase, summaryUseCase, categoryFinanceUseCase, exportUseCase)
	aiController := controller.NewAIController(chatUseCase, processFilesUseCase)
	activityController := controller.NewActivityController(activityLog)

	// Middleware
	redisClient := newRedisClient(ctx, cfg)
	loginRateLimiter := middleware.NewRateLimiter(redisClient, "ratelimit:login")
	aiRateLimiter := middleware.NewRateLimiterWithConfig(redisClient, "ratelimit:ai", 20, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	injector.Router = router.NewRouter(
		healthController,
		authController,
		transactionController,
		borrowingController,
		budgetController,
		templateController,
		settingsController,
		reportController,
		aiController,
		activityController,
		loginRateLimiter,
		aiRateLimiter,
		authMiddleware,
	)

	return injector, nil
}

// Close releases every held resource in reverse acquisition order.
func (i *Injector) Close() {
	for idx := len(i.closers) - 1; idx >= 0; idx-- {
		if err := i.closers[idx](); err != nil {
			slog.Error("Failed to close dependency", "error", err)
		}
	}
}

func (i *Injector) newDocumentStore(ctx context.Context, cfg *config.Config) (adapter.DocumentStore, error) {
	if cfg.Firestore.ProjectID != "" {
		store, err := persistence.NewFirestoreDocumentStore(ctx, persistence.FirestoreConfig{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsFile: cfg.Firestore.CredentialsFile,
			Collection:      cfg.Firestore.Collection,
			DocumentID:      cfg.Firestore.DocumentID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create firestore store: %w", err)
		}
		i.closers = append(i.closers, store.Close)
		slog.Info("Using Firestore document store", "project", cfg.Firestore.ProjectID)
		return store, nil
	}

	database, err := db.NewSQLiteConnection(cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	i.closers = append(i.closers, database.Close)

	store, err := persistence.NewLocalDocumentStore(database.DB())
	if err != nil {
		return nil, err
	}
	slog.Info("Using local SQLite document store", "path", cfg.SQLite.Path)
	return store, nil
}

// newRedisClient connects for rate limiting; an unreachable Redis logs a
// warning and the limiters fail open.
func newRedisClient(ctx context.Context, cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, rate limiting fails open", "error", err)
	}
	return client
}
