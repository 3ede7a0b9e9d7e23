package outreach

import (
	"testing"
	"time"

	"outreach_backend/internal/leads/repository"
)

func TestCooldownNeverSentIsEligible(t *testing.T) {
	policy := CooldownPolicy{Duration: 5 * time.Hour}

	verdict := policy.Check(repository.Lead{}, time.Now())
	if !verdict.Eligible {
		t.Fatal("lead with no prior send must be eligible")
	}
	if verdict.Remaining != 0 {
		t.Fatalf("remaining = %s, want 0", verdict.Remaining)
	}
}

func TestCooldownWindow(t *testing.T) {
	policy := CooldownPolicy{Duration: 5 * time.Hour}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		sentAgo   time.Duration
		eligible  bool
		remaining time.Duration
	}{
		{"just sent", 0, false, 5 * time.Hour},
		{"mid window", 2 * time.Hour, false, 3 * time.Hour},
		{"exact boundary", 5 * time.Hour, true, 0},
		{"past window", 6 * time.Hour, true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sentAt := now.Add(-tc.sentAgo)
			lead := repository.Lead{LastSentAt: &sentAt}

			verdict := policy.Check(lead, now)
			if verdict.Eligible != tc.eligible {
				t.Fatalf("eligible = %v, want %v", verdict.Eligible, tc.eligible)
			}
			if verdict.Remaining != tc.remaining {
				t.Fatalf("remaining = %s, want %s", verdict.Remaining, tc.remaining)
			}
		})
	}
}
