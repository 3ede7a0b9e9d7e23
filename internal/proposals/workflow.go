// Package proposals implements the meeting proposal workflow: drafting a
// meeting email for an engaged lead, holding it for human review, and
// sending the reviewed draft.
package proposals

import (
	"context"
	"errors"
	"time"

	"outreach_backend/internal/events"
	"outreach_backend/internal/leads/domain"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/platform/apperr"
	"outreach_backend/platform/keylock"
	"outreach_backend/platform/logger"

	"github.com/google/uuid"
)

// DraftGenerator produces a meeting proposal email body from the lead's
// chat summary.
type DraftGenerator interface {
	GenerateMeetingDraft(ctx context.Context, lead repository.Lead) (string, error)
}

// ProposalMailer delivers reviewed meeting proposals.
type ProposalMailer interface {
	SendMeetingProposalEmail(ctx context.Context, to, name, body string) error
}

// Workflow drives a lead's proposal sub-record through
// none -> generating -> pending_review -> sent. Transitions for one lead
// are serialized; drafts are overwritten only through a fresh generation.
type Workflow struct {
	store     repository.Store
	generator DraftGenerator
	mailer    ProposalMailer
	bus       events.Bus
	locks     *keylock.KeyLock
	log       *logger.Logger
	now       func() time.Time
}

// NewWorkflow creates the proposal workflow.
func NewWorkflow(store repository.Store, generator DraftGenerator, mailer ProposalMailer, bus events.Bus, log *logger.Logger) *Workflow {
	return &Workflow{
		store:     store,
		generator: generator,
		mailer:    mailer,
		bus:       bus,
		locks:     keylock.New(),
		log:       log,
		now:       time.Now,
	}
}

// Generate drafts a meeting proposal for the lead. The lead must have
// responded, carry a chat summary, and have no proposal in flight. On
// generation failure the state falls back to none so the operation can be
// retried.
func (w *Workflow) Generate(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	w.locks.Lock(id.String())
	defer w.locks.Unlock(id.String())

	lead, err := w.get(ctx, id)
	if err != nil {
		return repository.Lead{}, err
	}

	if !lead.EngagementStatus.Engaged() {
		return repository.Lead{}, apperr.Validation("lead has not responded yet")
	}
	if lead.ChatSummary == "" {
		return repository.Lead{}, apperr.Validation("lead has no chat summary to draft from")
	}
	if !lead.ProposalState.CanTransition(domain.ProposalGenerating) {
		return repository.Lead{}, apperr.Conflict("proposal already " + string(lead.ProposalState))
	}

	if _, err := w.store.SetProposalState(ctx, id, domain.ProposalGenerating, repository.ProposalPatch{}); err != nil {
		return repository.Lead{}, err
	}

	body, err := w.generator.GenerateMeetingDraft(ctx, lead)
	if err != nil || body == "" {
		if _, revertErr := w.store.SetProposalState(ctx, id, domain.ProposalNone, repository.ProposalPatch{}); revertErr != nil {
			w.log.DatabaseError("proposal_revert", revertErr)
		}
		if err == nil {
			err = errors.New("empty draft")
		}
		return repository.Lead{}, apperr.Wrap(apperr.KindUnavailable, "meeting draft generation failed", err)
	}

	generatedAt := w.now()
	return w.store.SetProposalState(ctx, id, domain.ProposalPendingReview, repository.ProposalPatch{
		DraftContent: &body,
		GeneratedAt:  &generatedAt,
	})
}

// Draft returns the lead when a draft exists for review.
func (w *Workflow) Draft(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, err := w.get(ctx, id)
	if err != nil {
		return repository.Lead{}, err
	}
	if !lead.ProposalState.HasDraft() {
		return repository.Lead{}, apperr.NotFound("no meeting draft available")
	}
	return lead, nil
}

// Send delivers the reviewed draft. A delivery failure leaves the proposal
// in pending_review so the operator can retry.
func (w *Workflow) Send(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	w.locks.Lock(id.String())
	defer w.locks.Unlock(id.String())

	lead, err := w.get(ctx, id)
	if err != nil {
		return repository.Lead{}, err
	}

	if !lead.ProposalState.CanTransition(domain.ProposalSent) {
		return repository.Lead{}, apperr.Conflict("proposal is not awaiting review")
	}
	if lead.ProposalDraft == nil {
		return repository.Lead{}, apperr.Internal("proposal in review without a draft")
	}

	if err := w.mailer.SendMeetingProposalEmail(ctx, lead.Email, lead.Name, *lead.ProposalDraft); err != nil {
		w.log.MailEvent("proposal", id.String(), false, err.Error())
		return repository.Lead{}, apperr.Wrap(apperr.KindTransport, "meeting proposal delivery failed", err)
	}

	updated, err := w.store.SetProposalState(ctx, id, domain.ProposalSent, repository.ProposalPatch{
		DraftContent: lead.ProposalDraft,
		GeneratedAt:  lead.ProposalGeneratedAt,
	})
	if err != nil {
		return repository.Lead{}, err
	}

	w.log.MailEvent("proposal", id.String(), true, "")
	w.bus.Publish(ctx, events.MeetingProposalSent{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    id,
	})

	return updated, nil
}

// AutoGenerate is the hot-lead trigger. It drafts only when the lead just
// turned hot, has a summary, and has no proposal yet; every other case is a
// quiet no-op so the classifier callback never fails.
func (w *Workflow) AutoGenerate(ctx context.Context, id uuid.UUID) error {
	lead, err := w.get(ctx, id)
	if err != nil {
		return err
	}

	if lead.EngagementStatus != domain.StatusHot || lead.ChatSummary == "" || lead.ProposalState != domain.ProposalNone {
		return nil
	}

	_, err = w.Generate(ctx, id)
	return err
}

func (w *Workflow) get(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, err := w.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	return lead, err
}
