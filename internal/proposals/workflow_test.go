package proposals

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"outreach_backend/internal/events"
	"outreach_backend/internal/leads/domain"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/platform/apperr"
	"outreach_backend/platform/logger"

	"github.com/google/uuid"
)

type stubStore struct {
	mu    sync.Mutex
	leads map[uuid.UUID]repository.Lead
}

func newStubStore(leads ...repository.Lead) *stubStore {
	s := &stubStore{leads: make(map[uuid.UUID]repository.Lead)}
	for _, l := range leads {
		s.leads[l.ID] = l
	}
	return s
}

func (s *stubStore) Get(_ context.Context, id uuid.UUID) (repository.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead, ok := s.leads[id]
	if !ok {
		return repository.Lead{}, repository.ErrNotFound
	}
	return lead, nil
}

func (s *stubStore) List(_ context.Context) ([]repository.Lead, error) { return nil, nil }

func (s *stubStore) Upsert(_ context.Context, _ repository.UpsertLeadParams) (repository.Lead, error) {
	return repository.Lead{}, nil
}

func (s *stubStore) RecordSend(_ context.Context, _ uuid.UUID, _ time.Time) (repository.Lead, error) {
	return repository.Lead{}, nil
}

func (s *stubStore) UpdateEngagement(_ context.Context, id uuid.UUID, status domain.EngagementStatus, chatSummary string) (repository.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead := s.leads[id]
	lead.EngagementStatus = status
	lead.ChatSummary = chatSummary
	s.leads[id] = lead
	return lead, nil
}

func (s *stubStore) SetProposalState(_ context.Context, id uuid.UUID, state domain.ProposalState, patch repository.ProposalPatch) (repository.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead, ok := s.leads[id]
	if !ok {
		return repository.Lead{}, repository.ErrNotFound
	}
	lead.ProposalState = state
	if state.HasDraft() {
		lead.ProposalDraft = patch.DraftContent
		if patch.GeneratedAt != nil {
			lead.ProposalGeneratedAt = patch.GeneratedAt
		}
	} else {
		lead.ProposalDraft = nil
		lead.ProposalGeneratedAt = nil
	}
	s.leads[id] = lead
	return lead, nil
}

type stubGenerator struct {
	body string
	err  error
}

func (g *stubGenerator) GenerateMeetingDraft(_ context.Context, _ repository.Lead) (string, error) {
	return g.body, g.err
}

type stubMailer struct {
	err  error
	sent int
}

func (m *stubMailer) SendMeetingProposalEmail(_ context.Context, _, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent++
	return nil
}

func warmLead(summary string) repository.Lead {
	return repository.Lead{
		ID:               uuid.New(),
		Email:            "lead@example.com",
		Name:             "Lead",
		EngagementStatus: domain.StatusWarm,
		ChatSummary:      summary,
		ProposalState:    domain.ProposalNone,
	}
}

func newTestWorkflow(store repository.Store, gen DraftGenerator, mailer ProposalMailer) *Workflow {
	log := logger.New("development")
	return NewWorkflow(store, gen, mailer, events.NewInMemoryBus(log), log)
}

func TestGenerateProducesPendingDraft(t *testing.T) {
	lead := warmLead("asked about pricing")
	store := newStubStore(lead)
	wf := newTestWorkflow(store, &stubGenerator{body: "How about Tuesday?"}, &stubMailer{})

	got, err := wf.Generate(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.ProposalState != domain.ProposalPendingReview {
		t.Fatalf("state = %s, want pending_review", got.ProposalState)
	}
	if got.ProposalDraft == nil || *got.ProposalDraft != "How about Tuesday?" {
		t.Fatalf("unexpected draft: %v", got.ProposalDraft)
	}
	if got.ProposalGeneratedAt == nil {
		t.Fatal("generatedAt must be set")
	}
}

func TestGenerateGuards(t *testing.T) {
	unresponded := warmLead("summary")
	unresponded.EngagementStatus = domain.StatusNotResponded
	noSummary := warmLead("")
	inReview := warmLead("summary")
	inReview.ProposalState = domain.ProposalPendingReview

	cases := []struct {
		name string
		lead repository.Lead
		kind apperr.Kind
	}{
		{"not responded", unresponded, apperr.KindValidation},
		{"no chat summary", noSummary, apperr.KindValidation},
		{"already in review", inReview, apperr.KindConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStubStore(tc.lead)
			wf := newTestWorkflow(store, &stubGenerator{body: "x"}, &stubMailer{})

			_, err := wf.Generate(context.Background(), tc.lead.ID)
			if !apperr.Is(err, tc.kind) {
				t.Fatalf("err = %v, want kind %v", err, tc.kind)
			}

			got, _ := store.Get(context.Background(), tc.lead.ID)
			if got.ProposalState != tc.lead.ProposalState {
				t.Fatalf("state changed to %s", got.ProposalState)
			}
		})
	}
}

func TestGenerateFailureRevertsToNone(t *testing.T) {
	lead := warmLead("summary")
	store := newStubStore(lead)
	wf := newTestWorkflow(store, &stubGenerator{err: errors.New("model timeout")}, &stubMailer{})

	_, err := wf.Generate(context.Background(), lead.ID)
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}

	got, _ := store.Get(context.Background(), lead.ID)
	if got.ProposalState != domain.ProposalNone {
		t.Fatalf("state = %s, want none after failed generation", got.ProposalState)
	}
	if got.ProposalDraft != nil {
		t.Fatal("no draft may survive a failed generation")
	}
}

func TestDraftRequiresExistingDraft(t *testing.T) {
	lead := warmLead("summary")
	store := newStubStore(lead)
	wf := newTestWorkflow(store, &stubGenerator{body: "x"}, &stubMailer{})

	if _, err := wf.Draft(context.Background(), lead.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not found before generation", err)
	}

	if _, err := wf.Generate(context.Background(), lead.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got, err := wf.Draft(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if got.ProposalDraft == nil {
		t.Fatal("expected draft content")
	}
}

func TestSendDeliversReviewedDraft(t *testing.T) {
	draft := "See you Tuesday"
	lead := warmLead("summary")
	lead.ProposalState = domain.ProposalPendingReview
	lead.ProposalDraft = &draft
	store := newStubStore(lead)
	mailer := &stubMailer{}
	wf := newTestWorkflow(store, &stubGenerator{}, mailer)

	got, err := wf.Send(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got.ProposalState != domain.ProposalSent {
		t.Fatalf("state = %s, want sent", got.ProposalState)
	}
	if got.ProposalDraft == nil || *got.ProposalDraft != draft {
		t.Fatal("sent proposal must keep its draft content")
	}
	if mailer.sent != 1 {
		t.Fatalf("mailer.sent = %d, want 1", mailer.sent)
	}
}

func TestSendFailureStaysPendingReview(t *testing.T) {
	draft := "See you Tuesday"
	lead := warmLead("summary")
	lead.ProposalState = domain.ProposalPendingReview
	lead.ProposalDraft = &draft
	store := newStubStore(lead)
	wf := newTestWorkflow(store, &stubGenerator{}, &stubMailer{err: errors.New("smtp refused")})

	_, err := wf.Send(context.Background(), lead.ID)
	if !apperr.Is(err, apperr.KindTransport) {
		t.Fatalf("err = %v, want transport", err)
	}

	got, _ := store.Get(context.Background(), lead.ID)
	if got.ProposalState != domain.ProposalPendingReview {
		t.Fatalf("state = %s, want pending_review after failed delivery", got.ProposalState)
	}
}

func TestSendWithoutReviewIsConflict(t *testing.T) {
	lead := warmLead("summary")
	store := newStubStore(lead)
	wf := newTestWorkflow(store, &stubGenerator{}, &stubMailer{})

	if _, err := wf.Send(context.Background(), lead.ID); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestAutoGenerate(t *testing.T) {
	hot := warmLead("asked for a call")
	hot.EngagementStatus = domain.StatusHot
	warm := warmLead("lukewarm")
	hotNoSummary := warmLead("")
	hotNoSummary.EngagementStatus = domain.StatusHot
	hotSent := warmLead("done deal")
	hotSent.EngagementStatus = domain.StatusHot
	hotSent.ProposalState = domain.ProposalSent

	store := newStubStore(hot, warm, hotNoSummary, hotSent)
	wf := newTestWorkflow(store, &stubGenerator{body: "draft"}, &stubMailer{})

	for _, id := range []uuid.UUID{hot.ID, warm.ID, hotNoSummary.ID, hotSent.ID} {
		if err := wf.AutoGenerate(context.Background(), id); err != nil {
			t.Fatalf("AutoGenerate(%s): %v", id, err)
		}
	}

	if got, _ := store.Get(context.Background(), hot.ID); got.ProposalState != domain.ProposalPendingReview {
		t.Fatalf("hot lead state = %s, want pending_review", got.ProposalState)
	}
	if got, _ := store.Get(context.Background(), warm.ID); got.ProposalState != domain.ProposalNone {
		t.Fatalf("warm lead state = %s, want none", got.ProposalState)
	}
	if got, _ := store.Get(context.Background(), hotNoSummary.ID); got.ProposalState != domain.ProposalNone {
		t.Fatalf("hot lead without summary state = %s, want none", got.ProposalState)
	}
	if got, _ := store.Get(context.Background(), hotSent.ID); got.ProposalState != domain.ProposalSent {
		t.Fatalf("sent proposal state = %s, want sent", got.ProposalState)
	}
}
