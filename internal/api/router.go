package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avdberg/Budget-Planner-Backend/internal/api/handlers"
	custommiddleware "github.com/avdberg/Budget-Planner-Backend/internal/api/middleware"
	"github.com/avdberg/Budget-Planner-Backend/internal/config"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, budgetService *service.BudgetService, settingsService *service.SettingsService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService, budgetService.Source())
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Get("/source", systemHandler.Source)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(budgetService)
			r.Get("/", transactionHandler.List)
			r.Get("/largest", transactionHandler.Largest)
		})

		r.Route("/budget", func(r chi.Router) {
			budgetHandler := handlers.NewBudgetHandler(budgetService)
			r.Get("/metrics", budgetHandler.Metrics)
			r.Get("/trend", budgetHandler.Trend)
			r.Get("/mean-spending", budgetHandler.MeanSpending)
		})

		r.Route("/meta", func(r chi.Router) {
			metaHandler := handlers.NewMetaHandler(budgetService)
			r.Get("/categories", metaHandler.Categories)
			r.Get("/subcategories", metaHandler.Subcategories)
			r.Get("/accounts", metaHandler.Accounts)
		})

		r.Route("/account", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(budgetService)
			r.Get("/balances", accountHandler.Balances)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(budgetService, settingsService)
			r.Post("/refresh", settingsHandler.RefreshAll)
			r.Post("/refresh/transactions", settingsHandler.RefreshTransactions)
			r.Post("/refresh/accounts", settingsHandler.RefreshAccounts)
			r.Put("/token", settingsHandler.UpdateToken)
		})
	})

	return r
}
