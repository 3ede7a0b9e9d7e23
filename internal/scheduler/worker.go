package scheduler

import (
	"context"
	"fmt"

	"outreach_backend/internal/outreach"
	"outreach_backend/platform/config"
	"outreach_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Worker consumes queued outreach batches and replays them through the
// orchestrator.
type Worker struct {
	server       *asynq.Server
	mux          *asynq.ServeMux
	orchestrator *outreach.Orchestrator
	log          *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, orchestrator *outreach.Orchestrator, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:       server,
		mux:          mux,
		orchestrator: orchestrator,
		log:          log,
	}

	mux.HandleFunc(TaskOutreachBatchSend, w.handleOutreachBatch)

	return w, nil
}

func (w *Worker) handleOutreachBatch(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseOutreachBatchPayload(task)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(payload.LeadIDs))
	for _, raw := range payload.LeadIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			w.log.Warn("skipping malformed lead id in queued batch", "leadId", raw)
			continue
		}
		ids = append(ids, id)
	}

	results := w.orchestrator.SendBatch(ctx, ids)
	for _, r := range results {
		if r.Outcome == outreach.OutcomeError {
			w.log.Warn("queued batch item failed", "leadId", r.LeadID, "detail", r.Detail)
		}
	}
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
