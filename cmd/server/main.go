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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/sheetquote/internal/config"
	"github.com/Simplici0/sheetquote/internal/db"
	"github.com/Simplici0/sheetquote/internal/migrations"
	"github.com/Simplici0/sheetquote/internal/pricing"
	"github.com/Simplici0/sheetquote/internal/quotepdf"
	"github.com/Simplici0/sheetquote/internal/seed"
	"github.com/Simplici0/sheetquote/internal/store"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	store     quoteStore
	engine    *pricing.Engine
	pdf       pdfRenderer
	materials *pricing.MaterialTable
}

func newServer(st quoteStore, engine *pricing.Engine, pdf pdfRenderer) *server {
	return &server{store: st, engine: engine, pdf: pdf, materials: pricing.DefaultMaterials()}
}

func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		slog.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}

	if cfg.SeedReferenceData {
		stats, err := seed.Run(ctx, database)
		if err != nil {
			slog.Error("failed to seed reference data", "error", err)
			os.Exit(1)
		}
		slog.Info("reference data seeded", "inserts", stats.Inserts)
	}

	engine := pricing.NewEngine(pricing.WithRunMinimum(cfg.RunMinimum))
	srv := newServer(store.New(database), engine, quotepdf.New(""))

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("listening",
		"addr", httpServer.Addr,
		"env", cfg.AppEnv,
		"run_minimum_policy", engine.RunMinimum().Policy,
	)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server closed")
}

func (s *server) routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors(allowedOrigins))

	r.Get("/", s.handleHealth)
	r.Get("/health", s.handleHealth)

	r.Get("/customers", s.handleCustomersList)
	r.Patch("/customers/{id}", s.handleCustomerUpdate)
	r.Delete("/customers/{id}", s.handleCustomerDelete)

	r.Get("/items", s.handleItemsList)
	r.Patch("/items/{sku}", s.handleItemUpdate)
	r.Delete("/items/{sku}", s.handleItemDelete)

	r.Get("/materials", s.handleMaterialsList)
	r.Get("/materials/{name}", s.handleMaterialDetail)

	r.Post("/quote", s.handleQuote)
	r.Get("/quotes", s.handleQuotesList)
	r.Get("/quotes/{id}", s.handleQuoteDetail)
	r.Get("/quotes/{id}/pdf", s.handleQuotePDF)

	return r
}
