package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"colcal/quotation/internal/app/config"
	apphttp "colcal/quotation/internal/app/http"
	"colcal/quotation/internal/app/http/handlers"
	"colcal/quotation/internal/app/logger"
	"colcal/quotation/internal/app/metrics"
	"colcal/quotation/internal/app/session"
	"colcal/quotation/internal/domain/catalog"
	"colcal/quotation/internal/domain/quote/export"
	pdfgen "colcal/quotation/internal/domain/quote/pdf/gofpdf"
	"colcal/quotation/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	m := metrics.New()

	var products catalog.Repository
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.EnsureCatalogSchema(ctx); err != nil {
			return err
		}
		products = db
		log.Info("product catalog enabled")
	} else {
		log.Info("DATABASE_URL not set, product catalog disabled")
	}

	gen := pdfgen.New(pdfgen.WithFontDir(cfg.FontDir), pdfgen.WithLogger(log.Named("pdf")))
	exporter := export.New(gen,
		export.WithLogger(log.Named("export")),
		export.WithRecorder(m.ExportRecorder()),
	)
	sessions := session.NewStore(cfg.SessionTTL,
		session.WithInboxSize(cfg.NotifyKeep),
		session.WithCountHook(func(n int) { m.FormSessions.Set(float64(n)) }),
		session.WithEvictionHook(func(id string, expired bool) {
			if expired {
				log.Debug("quotation session expired", zap.String("session_id", id))
			}
		}),
	)
	defer sessions.Close()

	h := handlers.New(cfg, log, sessions, exporter, products)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(cfg, log, m, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
