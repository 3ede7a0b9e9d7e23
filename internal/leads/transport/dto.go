package transport

import (
	"time"

	"outreach_backend/internal/leads/repository"
	"outreach_backend/internal/leads/service"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertLeadRequest struct {
	Source   string `json:"source" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Company  string `json:"company" validate:"omitempty,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Position string `json:"position" validate:"omitempty,max=200"`
}

type UpdateEngagementRequest struct {
	Status      string `json:"status" validate:"required"`
	ChatSummary string `json:"chatSummary" validate:"omitempty,max=10000"`
}

// Response DTOs

type ProposalResponse struct {
	State        string     `json:"state"`
	DraftContent *string    `json:"draftContent,omitempty"`
	GeneratedAt  *time.Time `json:"generatedAt,omitempty"`
}

type LeadResponse struct {
	ID               uuid.UUID        `json:"id"`
	Source           string           `json:"source"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Company          string           `json:"company"`
	Phone            string           `json:"phone"`
	Position         string           `json:"position"`
	EngagementStatus string           `json:"engagementStatus"`
	EmailSendCount   int              `json:"emailSendCount"`
	LastSentAt       *time.Time       `json:"lastSentAt,omitempty"`
	ChatSummary      string           `json:"chatSummary,omitempty"`
	PrivateLink      string           `json:"privateLink"`
	Proposal         ProposalResponse `json:"proposal"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

type SourceGroupResponse struct {
	Source string         `json:"source"`
	Leads  []LeadResponse `json:"leads"`
}

type ReportRowResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Source           string     `json:"source"`
	EngagementStatus string     `json:"engagementStatus"`
	ChatSummary      string     `json:"chatSummary,omitempty"`
	ProposalState    string     `json:"proposalState"`
	PrivateLink      string     `json:"privateLink"`
	LastSentAt       *time.Time `json:"lastSentAt,omitempty"`
}

type ReportResponse struct {
	Counts service.StatusCounts `json:"counts"`
	Rows   []ReportRowResponse  `json:"rows"`
}

// Mapping helpers

func ToLeadResponse(lead repository.Lead) LeadResponse {
	return LeadResponse{
		ID:               lead.ID,
		Source:           lead.Source,
		Name:             lead.Name,
		Email:            lead.Email,
		Company:          lead.Company,
		Phone:            lead.Phone,
		Position:         lead.Position,
		EngagementStatus: lead.EngagementStatus.Label(),
		EmailSendCount:   lead.EmailSendCount,
		LastSentAt:       lead.LastSentAt,
		ChatSummary:      lead.ChatSummary,
		PrivateLink:      lead.PrivateLink,
		Proposal: ProposalResponse{
			State:        string(lead.ProposalState),
			DraftContent: lead.ProposalDraft,
			GeneratedAt:  lead.ProposalGeneratedAt,
		},
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}

func ToLeadResponses(leads []repository.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, ToLeadResponse(lead))
	}
	return out
}

func ToSourceGroupResponses(groups []service.SourceGroup) []SourceGroupResponse {
	out := make([]SourceGroupResponse, 0, len(groups))
	for _, group := range groups {
		out = append(out, SourceGroupResponse{
			Source: group.Source,
			Leads:  ToLeadResponses(group.Leads),
		})
	}
	return out
}

func ToReportResponse(leads []repository.Lead) ReportResponse {
	rows := make([]ReportRowResponse, 0, len(leads))
	for _, lead := range leads {
		rows = append(rows, ReportRowResponse{
			ID:               lead.ID,
			Name:             lead.Name,
			Email:            lead.Email,
			Source:           lead.Source,
			EngagementStatus: lead.EngagementStatus.Label(),
			ChatSummary:      lead.ChatSummary,
			ProposalState:    string(lead.ProposalState),
			PrivateLink:      lead.PrivateLink,
			LastSentAt:       lead.LastSentAt,
		})
	}
	return ReportResponse{Counts: service.CountsByStatus(leads), Rows: rows}
}
