// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"outreach_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadUpserted is published when a lead is created or updated through the store.
type LeadUpserted struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Source string    `json:"source"`
	Email  string    `json:"email"`
}

func (e LeadUpserted) EventName() string { return "leads.lead.upserted" }

// LeadEngagementChanged is published when the external classifier updates a
// lead's engagement status and chat summary. The proposals module listens to
// this to arm the automatic meeting draft for hot leads.
type LeadEngagementChanged struct {
	BaseEvent
	LeadID      uuid.UUID `json:"leadId"`
	OldStatus   string    `json:"oldStatus"`
	NewStatus   string    `json:"newStatus"`
	ChatSummary string    `json:"chatSummary"`
}

func (e LeadEngagementChanged) EventName() string { return "leads.engagement.changed" }

// =============================================================================
// Outreach Domain Events
// =============================================================================

// OutreachEmailSent is published after a successful outreach delivery.
type OutreachEmailSent struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	SentAt time.Time `json:"sentAt"`
}

func (e OutreachEmailSent) EventName() string { return "outreach.email.sent" }

// OutreachBatchCompleted is published when a batch finishes, with per-outcome counts.
type OutreachBatchCompleted struct {
	BaseEvent
	Requested int `json:"requested"`
	Sent      int `json:"sent"`
	Cooldown  int `json:"cooldown"`
	NoContent int `json:"noContent"`
	Errors    int `json:"errors"`
}

func (e OutreachBatchCompleted) EventName() string { return "outreach.batch.completed" }

// =============================================================================
// Proposals Domain Events
// =============================================================================

// MeetingProposalSent is published when a reviewed meeting draft is delivered.
type MeetingProposalSent struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
}

func (e MeetingProposalSent) EventName() string { return "proposals.proposal.sent" }
