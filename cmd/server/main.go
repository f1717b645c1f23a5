package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ventureplan/backend/internal/config"
	"github.com/ventureplan/backend/internal/handler"
	"github.com/ventureplan/backend/internal/idgen"
	"github.com/ventureplan/backend/internal/logging"
	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/repository"
	"github.com/ventureplan/backend/internal/service"
)

// stores はストレージバックエンドごとのリポジトリ一式
type stores struct {
	db       repository.DB
	projects repository.ProjectRepository
	entries  repository.TimeEntryRepository
	catalog  repository.CatalogRepository
	close    func()
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.StorageBackend == config.BackendMemory {
		return &stores{
			db:       repository.NopDB{},
			projects: repository.NewMemoryProjectRepository(),
			entries:  repository.NewMemoryTimeEntryRepository(),
			catalog:  repository.NewMemoryCatalogRepository(model.DefaultMarketTrends(), model.DefaultBusinessIdeas()),
			close:    func() {},
		}, nil
	}

	// 起動時に未適用のマイグレーションを流す
	migrator, err := repository.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return nil, err
	}
	if err := migrator.Close(); err != nil {
		slog.Warn("failed to close migrator", "error", err)
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return &stores{
		db:       pool,
		projects: repository.NewPgProjectRepository(pool),
		entries:  repository.NewPgTimeEntryRepository(pool),
		catalog:  repository.NewPgCatalogRepository(pool),
		close:    pool.Close,
	}, nil
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		logging.Fatal("failed to open storage", "backend", cfg.StorageBackend, "error", err)
	}
	defer st.close()

	ids := idgen.UUID{}
	projectService := service.NewProjectService(st.projects, ids, time.Now)
	timeEntryService := service.NewTimeEntryService(st.entries, st.projects, ids, time.Now)
	catalogService := service.NewCatalogService(st.catalog)
	dashboardService := service.NewDashboardService(st.projects, st.entries, st.catalog)

	h := handler.New(st.db, cfg.FrontendURL)
	projectHandler := handler.NewProjectHandler(projectService)
	timeEntryHandler := handler.NewTimeEntryHandler(timeEntryService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// プロジェクト API
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.HandleFunc("POST /api/projects", projectHandler.Create)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.Delete)
	mux.HandleFunc("POST /api/projects/{id}/tasks", projectHandler.AddTask)

	// 作業時間 API
	mux.HandleFunc("GET /api/time-entries", timeEntryHandler.List)
	mux.HandleFunc("POST /api/time-entries/start", timeEntryHandler.Start)
	mux.HandleFunc("POST /api/time-entries/{id}/stop", timeEntryHandler.Stop)
	mux.HandleFunc("DELETE /api/time-entries/{id}", timeEntryHandler.Delete)
	mux.HandleFunc("GET /api/time-entries/summary/{projectId}", timeEntryHandler.Summary)

	// 市場トレンド・アイデア
	mux.HandleFunc("GET /api/market-trends", catalogHandler.ListTrends)
	mux.HandleFunc("GET /api/market-trends/search", catalogHandler.SearchTrends)
	mux.HandleFunc("GET /api/business-ideas", catalogHandler.ListIdeas)
	mux.HandleFunc("POST /api/business-ideas/generate", catalogHandler.GenerateIdeas)

	// 分析
	mux.HandleFunc("POST /api/profit-estimation", handler.ProfitEstimation)
	mux.HandleFunc("GET /api/dashboard/stats", dashboardHandler.Stats)

	limiter := handler.NewRateLimiter(ctx, cfg.RateLimitPerMinute)
	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.Chain(mux,
			handler.RequestLogger,
			handler.SecurityHeaders,
			h.CORS,
			limiter.Middleware,
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "backend", cfg.StorageBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
