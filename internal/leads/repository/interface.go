package repository

import (
	"context"
	"errors"
	"time"

	"outreach_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lead id does not exist in the store.
var ErrNotFound = errors.New("lead not found")

// Lead is the canonical lead record. The store exclusively owns these
// records; callers operate on the copy returned per call and re-fetch
// before subsequent operations.
type Lead struct {
	ID                  uuid.UUID
	Source              string
	Name                string
	Email               string
	Company             string
	Phone               string
	Position            string
	EngagementStatus    domain.EngagementStatus
	EmailSendCount      int
	LastSentAt          *time.Time
	ChatSummary         string
	PrivateLink         string
	ProposalState       domain.ProposalState
	ProposalDraft       *string
	ProposalGeneratedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// UpsertLeadParams carries the writable contact attributes. Leads are keyed
// by (source, email); an upsert on an existing pair updates contact fields
// and leaves engagement and send-tracking state untouched.
type UpsertLeadParams struct {
	ID          uuid.UUID
	Source      string
	Name        string
	Email       string
	Company     string
	Phone       string
	Position    string
	PrivateLink string
}

// ProposalPatch carries the proposal sub-record fields written together with
// a state transition. Draft fields are cleared whenever the target state
// does not carry a draft.
type ProposalPatch struct {
	DraftContent *string
	GeneratedAt  *time.Time
}

// Store is the lead store contract. All mutations are atomic per lead:
// each is a single statement, so no partial write is ever visible.
type Store interface {
	// Get returns the lead or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (Lead, error)

	// List returns all leads ordered by source, then creation time.
	List(ctx context.Context) ([]Lead, error)

	// Upsert inserts or updates a lead keyed by (source, email).
	Upsert(ctx context.Context, params UpsertLeadParams) (Lead, error)

	// RecordSend registers a successful delivery: increments the send count
	// and stamps last_sent_at in one statement. Failed attempts never reach
	// this method, which keeps count and timestamp in lockstep.
	RecordSend(ctx context.Context, id uuid.UUID, sentAt time.Time) (Lead, error)

	// UpdateEngagement applies the external classifier's verdict.
	UpdateEngagement(ctx context.Context, id uuid.UUID, status domain.EngagementStatus, chatSummary string) (Lead, error)

	// SetProposalState moves the meeting proposal sub-record to the given
	// state, applying the patch. Draft content is stored only for states
	// that carry one.
	SetProposalState(ctx context.Context, id uuid.UUID, state domain.ProposalState, patch ProposalPatch) (Lead, error)
}
