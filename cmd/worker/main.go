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
	"outreach_backend/internal/leads/repository"
	"outreach_backend/internal/outreach"
	"outreach_backend/internal/scheduler"
	"outreach_backend/platform/ai/azureai"
	"outreach_backend/platform/config"
	"outreach_backend/platform/db"
	"outreach_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting outreach worker", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	eventBus := events.NewInMemoryBus(log)

	var sender email.Sender
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
	} else {
		sender = email.NoopSender{}
		log.Warn("email disabled; outbound mail is dropped")
	}

	var generator outreach.ContentGenerator
	if cfg.IsContentGeneratorEnabled() {
		generator = adapters.NewContentGeneratorAdapter(azureai.New(cfg))
	} else {
		generator = adapters.DisabledGenerator{}
		log.Warn("content generator not configured; outreach produces no content")
	}

	orchestrator := outreach.NewOrchestrator(
		repository.New(pool),
		generator,
		sender,
		outreach.CooldownPolicy{Duration: cfg.GetOutreachCooldown()},
		eventBus,
		log,
		cfg.GetOutreachConcurrency(),
	)

	worker, err := scheduler.NewWorker(cfg, orchestrator, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	log.Info("worker listening", "queue", cfg.AsynqQueueName)
	worker.Run(ctx)
	log.Info("worker stopped")
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
