// Package service orchestrates lead store access for the HTTP layer and
// publishes domain events for cross-module reactions.
package service

import (
	"context"
	"errors"

	"outreach_backend/internal/events"
	"outreach_backend/internal/leads/domain"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/platform/apperr"
	"outreach_backend/platform/config"
	"outreach_backend/platform/phone"

	"github.com/google/uuid"
)

// SourceGroup is one source bucket in the grouped lead listing.
type SourceGroup struct {
	Source string
	Leads  []repository.Lead
}

// Service wraps the lead store with upsert enrichment, grouping, search and
// engagement updates.
type Service struct {
	store repository.Store
	bus   events.Bus
	links config.PrivateLinkConfig
}

// New creates the leads service.
func New(store repository.Store, bus events.Bus, links config.PrivateLinkConfig) *Service {
	return &Service{store: store, bus: bus, links: links}
}

// Get returns a single lead.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	return lead, err
}

// List returns all leads.
func (s *Service) List(ctx context.Context) ([]repository.Lead, error) {
	return s.store.List(ctx)
}

// ListBySource groups all leads by source, preserving the store's ordering
// (sources ascending, leads by creation time within a source).
func (s *Service) ListBySource(ctx context.Context) ([]SourceGroup, error) {
	leads, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]SourceGroup, 0)
	for _, lead := range leads {
		if len(groups) == 0 || groups[len(groups)-1].Source != lead.Source {
			groups = append(groups, SourceGroup{Source: lead.Source})
		}
		groups[len(groups)-1].Leads = append(groups[len(groups)-1].Leads, lead)
	}
	return groups, nil
}

// Search runs the token search over the current lead set.
func (s *Service) Search(ctx context.Context, query string) ([]repository.Lead, error) {
	leads, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Search(query, leads), nil
}

// Upsert inserts or updates a lead. Phone numbers are normalized to E.164
// and a private conversation link is minted for new leads.
func (s *Service) Upsert(ctx context.Context, params repository.UpsertLeadParams) (repository.Lead, error) {
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}
	params.Phone = phone.NormalizeE164(params.Phone)
	if params.PrivateLink == "" {
		params.PrivateLink = s.links.GetPrivateLinkBase() + s.links.GetPrivateLinkPath() + params.ID.String()
	}

	lead, err := s.store.Upsert(ctx, params)
	if err != nil {
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadUpserted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Source:    lead.Source,
		Email:     lead.Email,
	})

	return lead, nil
}

// UpdateEngagement applies the external classifier's verdict and publishes
// the change so the proposals module can arm the hot-lead auto draft.
func (s *Service) UpdateEngagement(ctx context.Context, id uuid.UUID, status domain.EngagementStatus, chatSummary string) (repository.Lead, error) {
	previous, err := s.Get(ctx, id)
	if err != nil {
		return repository.Lead{}, err
	}

	lead, err := s.store.UpdateEngagement(ctx, id, status, chatSummary)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	if err != nil {
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadEngagementChanged{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      lead.ID,
		OldStatus:   string(previous.EngagementStatus),
		NewStatus:   string(lead.EngagementStatus),
		ChatSummary: lead.ChatSummary,
	})

	return lead, nil
}
