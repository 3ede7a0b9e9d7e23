package domain

// ProposalState is the meeting proposal workflow state.
//
//	none -> generating -> pending_review -> sent
//
// generating may fall back to none when draft generation fails; sent is
// terminal.
type ProposalState string

const (
	ProposalNone          ProposalState = "none"
	ProposalGenerating    ProposalState = "generating"
	ProposalPendingReview ProposalState = "pending_review"
	ProposalSent          ProposalState = "sent"
)

var proposalTransitions = map[ProposalState][]ProposalState{
	ProposalNone:          {ProposalGenerating},
	ProposalGenerating:    {ProposalPendingReview, ProposalNone},
	ProposalPendingReview: {ProposalSent},
	ProposalSent:          {},
}

// CanTransition reports whether moving from s to next is a legal edge.
func (s ProposalState) CanTransition(next ProposalState) bool {
	for _, allowed := range proposalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HasDraft reports whether draft content must be present in this state.
func (s ProposalState) HasDraft() bool {
	return s == ProposalPendingReview || s == ProposalSent
}

// ParseProposalState validates a stored proposal state value.
func ParseProposalState(value string) (ProposalState, bool) {
	switch ProposalState(value) {
	case ProposalNone, ProposalGenerating, ProposalPendingReview, ProposalSent:
		return ProposalState(value), true
	}
	return "", false
}
