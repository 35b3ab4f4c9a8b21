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

	"salestracker/config"
	"salestracker/events"
	"salestracker/jobs"
	"salestracker/metrics"
	"salestracker/routes"
	"salestracker/services"
	"salestracker/services/logger"
	"salestracker/validator"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(logger.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log.Info("configuration loaded", "config", cfg.String())

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := validator.RegisterBindings(); err != nil {
		return err
	}

	if cfg.RunMigrations {
		if err := config.RunMigrations(cfg); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		return err
	}

	var (
		rdb   *redis.Client
		cache services.RevenueCache = services.NoopCache{}
	)
	if cfg.CacheEnabled() {
		rdb, err = config.ConnectRedis(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache = services.NewRedisRevenueCache(rdb, cfg.RevenueCacheTTL)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
		if err != nil {
			return err
		}
		publisher = p
	}
	defer publisher.Close()

	m := metrics.New()

	revenueService := services.NewRevenueService(services.RevenueServiceOptions{
		DB:      db,
		Cache:   cache,
		Metrics: m,
		Logger:  log,
	})
	svc := routes.Services{
		Revenue: revenueService,
		Users: services.NewUserService(services.UserServiceOptions{
			DB: db, Logger: log, Events: publisher, Invalidator: revenueService,
		}),
		Groups: services.NewGroupService(services.GroupServiceOptions{
			DB: db, Logger: log, Invalidator: revenueService,
		}),
		Sales: services.NewSaleService(services.SaleServiceOptions{
			DB: db, Logger: log, Events: publisher, Invalidator: revenueService,
		}),
	}

	c := cron.New()
	if err := jobs.InitCronJobs(c, &jobs.MonthlyClose{
		Reporter:  revenueService,
		Publisher: publisher,
		Logger:    log,
	}); err != nil {
		return err
	}
	defer c.Stop()

	router := config.InitApp(cfg, log, m)
	routes.SetupRoutes(router, db, rdb, svc, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
