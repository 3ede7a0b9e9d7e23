// Package adapters contains thin anti-corruption adapters that connect
// bounded contexts without letting them depend on each other's types.
package adapters

import (
	"context"
	"errors"

	"outreach_backend/internal/leads/repository"
	"outreach_backend/internal/outreach"
	"outreach_backend/internal/proposals"
	"outreach_backend/platform/ai/azureai"
)

// ContentGeneratorAdapter exposes the Azure OpenAI client to the outreach
// and proposals modules through their own generator interfaces.
type ContentGeneratorAdapter struct {
	client *azureai.Client
}

func NewContentGeneratorAdapter(client *azureai.Client) *ContentGeneratorAdapter {
	return &ContentGeneratorAdapter{client: client}
}

func (a *ContentGeneratorAdapter) GenerateReply(ctx context.Context, lead repository.Lead) (string, error) {
	return a.client.GenerateReply(ctx, profileFor(lead))
}

func (a *ContentGeneratorAdapter) GenerateMeetingDraft(ctx context.Context, lead repository.Lead) (string, error) {
	return a.client.GenerateMeetingDraft(ctx, profileFor(lead))
}

func profileFor(lead repository.Lead) azureai.LeadProfile {
	return azureai.LeadProfile{
		Name:        lead.Name,
		Company:     lead.Company,
		Email:       lead.Email,
		Position:    lead.Position,
		ChatSummary: lead.ChatSummary,
		PrivateLink: lead.PrivateLink,
	}
}

// DisabledGenerator stands in when no model is configured. Every request
// reports that content is unavailable, which the callers map to no_content.
type DisabledGenerator struct{}

var errGeneratorDisabled = errors.New("content generator is not configured")

func (DisabledGenerator) GenerateReply(ctx context.Context, lead repository.Lead) (string, error) {
	return "", errGeneratorDisabled
}

func (DisabledGenerator) GenerateMeetingDraft(ctx context.Context, lead repository.Lead) (string, error) {
	return "", errGeneratorDisabled
}

var (
	_ outreach.ContentGenerator = (*ContentGeneratorAdapter)(nil)
	_ proposals.DraftGenerator  = (*ContentGeneratorAdapter)(nil)
	_ outreach.ContentGenerator = DisabledGenerator{}
	_ proposals.DraftGenerator  = DisabledGenerator{}
)
