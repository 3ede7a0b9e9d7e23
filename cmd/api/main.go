package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outreach_backend/internal/adapters"
	"outreach_backend/internal/email"
	"outreach_backend/internal/events"
	apphttp "outreach_backend/internal/http"
	"outreach_backend/internal/http/router"
	"outreach_backend/internal/leads"
	"outreach_backend/internal/outreach"
	"outreach_backend/internal/proposals"
	"outreach_backend/internal/scheduler"
	"outreach_backend/platform/ai/azureai"
	"outreach_backend/platform/config"
	"outreach_backend/platform/db"
	"outreach_backend/platform/logger"
	"outreach_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	batchEnqueuer, closeScheduler := initBatchEnqueuer(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	var sender email.Sender
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
		log.Info("smtp sender initialized", "host", cfg.SMTPHost)
	} else {
		sender = email.NoopSender{}
		log.Warn("email disabled; outbound mail is dropped")
	}

	generator := newContentGenerator(cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	leadsModule := leads.NewModule(pool, eventBus, val, cfg)
	outreachModule := outreach.NewModule(leadsModule.Store(), generator, sender, eventBus, cfg, batchEnqueuer, val, log)
	proposalsModule := proposals.NewModule(leadsModule.Store(), generator, sender, eventBus, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			leadsModule,
			outreachModule,
			proposalsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

type contentGenerator interface {
	outreach.ContentGenerator
	proposals.DraftGenerator
}

func newContentGenerator(cfg *config.Config, log *logger.Logger) contentGenerator {
	if !cfg.IsContentGeneratorEnabled() {
		log.Warn("content generator not configured; outreach produces no content")
		return adapters.DisabledGenerator{}
	}

	log.Info("content generator initialized", "deployment", cfg.AzureDeployment)
	return adapters.NewContentGeneratorAdapter(azureai.New(cfg))
}

func initBatchEnqueuer(cfg config.SchedulerConfig, log *logger.Logger) (outreach.BatchEnqueuer, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; async outreach batches disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt < attempts {
			delay := baseDelay * time.Duration(1<<(attempt-1))
			log.Warn(name+" failed, retrying", "attempt", attempt, "delay", delay.String(), "error", lastErr)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, lastErr)
}
