package service

import (
	"testing"

	"outreach_backend/internal/leads/domain"
	"outreach_backend/internal/leads/repository"
)

func TestCountsByStatusSumToTotal(t *testing.T) {
	leads := []repository.Lead{
		{EngagementStatus: domain.StatusHot},
		{EngagementStatus: domain.StatusHot},
		{EngagementStatus: domain.StatusWarm},
		{EngagementStatus: domain.StatusCold},
		{EngagementStatus: domain.StatusNotResponded},
		{EngagementStatus: ""}, // legacy rows without a status count as not responded
	}

	counts := CountsByStatus(leads)

	if counts.Total != 6 {
		t.Fatalf("total = %d, want 6", counts.Total)
	}
	if counts.Hot != 2 || counts.Warm != 1 || counts.Cold != 1 || counts.NotResponded != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if sum := counts.Hot + counts.Warm + counts.Cold + counts.NotResponded; sum != counts.Total {
		t.Fatalf("counts sum to %d, total is %d", sum, counts.Total)
	}
}

func TestCountsByStatusEmpty(t *testing.T) {
	counts := CountsByStatus(nil)
	if counts.Total != 0 || counts.Hot != 0 || counts.Warm != 0 || counts.Cold != 0 || counts.NotResponded != 0 {
		t.Fatalf("expected zero counts, got %+v", counts)
	}
}

func TestAllUnengaged(t *testing.T) {
	if AllUnengaged(nil) {
		t.Fatal("empty set must not report all-unengaged")
	}

	unengaged := []repository.Lead{
		{EngagementStatus: domain.StatusNotResponded},
		{EngagementStatus: domain.StatusNotResponded},
	}
	if !AllUnengaged(unengaged) {
		t.Fatal("expected all-unengaged")
	}

	mixed := append(unengaged, repository.Lead{EngagementStatus: domain.StatusWarm})
	if AllUnengaged(mixed) {
		t.Fatal("one engaged lead must break all-unengaged")
	}
}
