package outreach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outreach_backend/internal/events"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/platform/keylock"
	"outreach_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ContentGenerator produces the personalized outreach email body for a lead.
// An error or empty body means the lead gets no email this batch.
type ContentGenerator interface {
	GenerateReply(ctx context.Context, lead repository.Lead) (string, error)
}

// Mailer delivers outreach emails.
type Mailer interface {
	SendOutreachEmail(ctx context.Context, to, name, body string) error
}

// Outcome classifies the result of one batch item.
type Outcome string

const (
	OutcomeSent      Outcome = "sent"
	OutcomeError     Outcome = "error"
	OutcomeCooldown  Outcome = "cooldown"
	OutcomeNoContent Outcome = "no_content"
)

// SendResult is the per-lead record of a batch run. A batch always returns
// one result per distinct requested id, whatever happened to the item.
type SendResult struct {
	LeadID  uuid.UUID `json:"leadId"`
	Outcome Outcome   `json:"outcome"`
	Detail  string    `json:"detail,omitempty"`
}

// Orchestrator runs outreach batches with bounded concurrency. A failure on
// one lead never aborts the others; every item reports its own outcome.
type Orchestrator struct {
	store       repository.Store
	generator   ContentGenerator
	mailer      Mailer
	policy      CooldownPolicy
	locks       *keylock.KeyLock
	bus         events.Bus
	log         *logger.Logger
	concurrency int
	now         func() time.Time
}

// NewOrchestrator creates the batch orchestrator. Concurrency below 1 is
// clamped to serial execution.
func NewOrchestrator(
	store repository.Store,
	generator ContentGenerator,
	mailer Mailer,
	policy CooldownPolicy,
	bus events.Bus,
	log *logger.Logger,
	concurrency int,
) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{
		store:       store,
		generator:   generator,
		mailer:      mailer,
		policy:      policy,
		locks:       keylock.New(),
		bus:         bus,
		log:         log,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// SendBatch processes the requested leads. Duplicate ids are collapsed to a
// single attempt. Items not yet started when ctx is cancelled are recorded
// as errors so the result list stays complete.
func (o *Orchestrator) SendBatch(ctx context.Context, leadIDs []uuid.UUID) []SendResult {
	ids := dedupe(leadIDs)
	results := make([]SendResult, len(ids))

	var g errgroup.Group
	g.SetLimit(o.concurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = o.sendOne(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	o.publishBatchCompleted(ctx, results)
	return results
}

func (o *Orchestrator) sendOne(ctx context.Context, id uuid.UUID) SendResult {
	if ctx.Err() != nil {
		return SendResult{LeadID: id, Outcome: OutcomeError, Detail: "batch cancelled"}
	}

	// Serialize per lead so concurrent batches cannot double-send inside
	// the cooldown window.
	o.locks.Lock(id.String())
	defer o.locks.Unlock(id.String())

	lead, err := o.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return SendResult{LeadID: id, Outcome: OutcomeError, Detail: "lead not found"}
	}
	if err != nil {
		return SendResult{LeadID: id, Outcome: OutcomeError, Detail: err.Error()}
	}

	if verdict := o.policy.Check(lead, o.now()); !verdict.Eligible {
		return SendResult{
			LeadID:  id,
			Outcome: OutcomeCooldown,
			Detail:  fmt.Sprintf("eligible again in %s", verdict.Remaining.Round(time.Second)),
		}
	}

	body, err := o.generator.GenerateReply(ctx, lead)
	if err != nil {
		o.log.MailEvent("outreach", id.String(), false, "content generation failed")
		return SendResult{LeadID: id, Outcome: OutcomeNoContent, Detail: err.Error()}
	}
	if body == "" {
		return SendResult{LeadID: id, Outcome: OutcomeNoContent, Detail: "empty content"}
	}

	if err := o.mailer.SendOutreachEmail(ctx, lead.Email, lead.Name, body); err != nil {
		o.log.MailEvent("outreach", id.String(), false, err.Error())
		return SendResult{LeadID: id, Outcome: OutcomeError, Detail: err.Error()}
	}

	sentAt := o.now()
	if _, err := o.store.RecordSend(ctx, id, sentAt); err != nil {
		// The email left the building but the ledger missed it. Surface as
		// an error so the caller does not trust the cooldown for this lead.
		o.log.DatabaseError("record_send", err)
		return SendResult{LeadID: id, Outcome: OutcomeError, Detail: "sent but not recorded: " + err.Error()}
	}

	o.log.MailEvent("outreach", id.String(), true, "")
	o.bus.Publish(ctx, events.OutreachEmailSent{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    id,
		SentAt:    sentAt,
	})

	return SendResult{LeadID: id, Outcome: OutcomeSent}
}

func (o *Orchestrator) publishBatchCompleted(ctx context.Context, results []SendResult) {
	completed := events.OutreachBatchCompleted{
		BaseEvent: events.NewBaseEvent(),
		Requested: len(results),
	}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeSent:
			completed.Sent++
		case OutcomeCooldown:
			completed.Cooldown++
		case OutcomeNoContent:
			completed.NoContent++
		case OutcomeError:
			completed.Errors++
		}
	}
	o.bus.Publish(ctx, completed)
	o.log.Info("outreach batch completed",
		"requested", completed.Requested,
		"sent", completed.Sent,
		"cooldown", completed.Cooldown,
		"noContent", completed.NoContent,
		"errors", completed.Errors,
	)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
