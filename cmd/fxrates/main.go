package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"service-fxrates/internal/api/http/middleware"
	rateshttp "service-fxrates/internal/api/http/rates"
	"service-fxrates/internal/clients/currencylayer"
	"service-fxrates/internal/config"
	"service-fxrates/internal/logger"
	"service-fxrates/internal/rates"
	"service-fxrates/internal/repository/migrations"
	"service-fxrates/internal/repository/postgresql"
	"service-fxrates/internal/repository/snapshots"
	"service-fxrates/internal/service/audit"
	"service-fxrates/internal/service/refresh"
	ratessvc "service-fxrates/internal/service/rates"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Fatal("fxrates exited", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// DB
	dbCtx, cancelDB := context.WithTimeout(ctx, 5*time.Second)
	defer cancelDB()

	pool, err := pgxpool.New(dbCtx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := migrations.New(pool).Setup(dbCtx); err != nil {
		return fmt.Errorf("ensure tables: %w", err)
	}

	// client
	client := currencylayer.New(cfg.APIKey())
	if u := cfg.CurrencyLayer().BaseURL(); u != "" {
		client.BaseURL = u
	}
	base := cfg.App().BaseCurrency()
	if base != rates.DefaultBase {
		client.Source = base
	}

	parser, err := rates.NewParser(base)
	if err != nil {
		return fmt.Errorf("build parser: %w", err)
	}
	cache := rates.NewCache(parser.Base())

	rateStorage := postgresql.NewRateStorage(pool)

	var snaps refresh.SnapshotStore
	if cfg.App().SaveSnapshots() {
		snaps = snapshots.New(cfg.App().SnapshotDir())
	}

	refresher := refresh.New(client, parser, cache, rateStorage, snaps, cfg.App().Currencies())

	// instant fetch; a failure here is not fatal, the next cron run retries
	if err := refresher.RefreshOnce(ctx); err != nil {
		logger.Error("initial refresh failed", zap.Error(err))
	}

	// cron
	loc, err := time.LoadLocation(cfg.App().Location())
	if err != nil {
		return fmt.Errorf("load location %s: %w", cfg.App().Location(), err)
	}
	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
	)

	// rates HTTP handlers
	auditLogger := audit.New(postgresql.NewRequestLogStorage(pool))
	converter := ratessvc.New(rateStorage, parser.Base())
	ratesHandler := rateshttp.New(cache, converter, auditLogger)

	apiMux := http.NewServeMux()
	ratesHandler.Register(apiMux)

	keyStorage := postgresql.NewAPIKeyStorage(pool, cfg.EncodingKey())

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", middleware.APIKeyAuth(keyStorage)(apiMux))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	g, gctx := errgroup.WithContext(ctx)

	_, err = scheduler.AddFunc(cfg.App().CronSpec(), func() {
		if err := refresher.RefreshOnce(gctx); err != nil {
			logger.Error("scheduled refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron func: %w", err)
	}

	g.Go(func() error {
		return runCron(gctx, scheduler)
	})

	g.Go(func() error {
		return serveHTTP(gctx, ":"+cfg.App().HTTPPort(), mux)
	})

	logger.Info("running, stop with SIGINT or SIGTERM",
		zap.String("base", parser.Base()),
		zap.String("cron", cfg.App().CronSpec()))
	return g.Wait()
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

func serveHTTP(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("HTTP listening", zap.String("addr", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
