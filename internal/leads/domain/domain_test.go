package domain

import "testing"

func TestParseEngagementStatus(t *testing.T) {
	cases := []struct {
		input string
		want  EngagementStatus
		ok    bool
	}{
		{"hot", StatusHot, true},
		{"Hot", StatusHot, true},
		{"WARM", StatusWarm, true},
		{"cold", StatusCold, true},
		{"Not Responded", StatusNotResponded, true},
		{"not_responded", StatusNotResponded, true},
		{"  Hot  ", StatusHot, true},
		{"lukewarm", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseEngagementStatus(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseEngagementStatus(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestProposalTransitions(t *testing.T) {
	legal := []struct{ from, to ProposalState }{
		{ProposalNone, ProposalGenerating},
		{ProposalGenerating, ProposalPendingReview},
		{ProposalGenerating, ProposalNone},
		{ProposalPendingReview, ProposalSent},
	}
	for _, tr := range legal {
		if !tr.from.CanTransition(tr.to) {
			t.Fatalf("expected %s -> %s to be legal", tr.from, tr.to)
		}
	}

	illegal := []struct{ from, to ProposalState }{
		{ProposalNone, ProposalPendingReview},
		{ProposalNone, ProposalSent},
		{ProposalGenerating, ProposalSent},
		{ProposalPendingReview, ProposalNone},
		{ProposalPendingReview, ProposalGenerating},
		{ProposalSent, ProposalNone},
		{ProposalSent, ProposalGenerating},
		{ProposalSent, ProposalPendingReview},
	}
	for _, tr := range illegal {
		if tr.from.CanTransition(tr.to) {
			t.Fatalf("expected %s -> %s to be illegal", tr.from, tr.to)
		}
	}
}

func TestProposalHasDraft(t *testing.T) {
	if ProposalNone.HasDraft() || ProposalGenerating.HasDraft() {
		t.Fatal("draft must be absent before review")
	}
	if !ProposalPendingReview.HasDraft() || !ProposalSent.HasDraft() {
		t.Fatal("draft must be present in pending_review and sent")
	}
}
