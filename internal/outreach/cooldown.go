// Package outreach implements the batch outreach bounded context: the
// cooldown policy and the orchestrator that fans a batch of lead IDs out to
// the content generator and mailer.
package outreach

import (
	"time"

	"outreach_backend/internal/leads/repository"
)

// Eligibility is the cooldown verdict for a single lead.
type Eligibility struct {
	Eligible  bool
	Remaining time.Duration
}

// CooldownPolicy suppresses repeat outreach to the same lead inside a
// configured window. The window counts from the last successful send only;
// failed attempts do not delay the next try.
type CooldownPolicy struct {
	Duration time.Duration
}

// Check evaluates the policy against an explicit clock reading so callers
// and tests control time.
func (p CooldownPolicy) Check(lead repository.Lead, now time.Time) Eligibility {
	if lead.LastSentAt == nil {
		return Eligibility{Eligible: true}
	}

	elapsed := now.Sub(*lead.LastSentAt)
	if elapsed >= p.Duration {
		return Eligibility{Eligible: true}
	}
	return Eligibility{Remaining: p.Duration - elapsed}
}
