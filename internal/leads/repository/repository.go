package repository

import (
	"context"
	"errors"
	"time"

	"outreach_backend/internal/leads/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leadColumns = `id, source, name, email, company, phone, position,
	engagement_status, email_send_count, last_sent_at, chat_summary, private_link,
	proposal_state, proposal_draft, proposal_generated_at, created_at, updated_at`

// Repository is the Postgres-backed lead store.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a Repository on the given pool.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ Store = (*Repository)(nil)

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	var status, proposalState string
	err := row.Scan(
		&lead.ID, &lead.Source, &lead.Name, &lead.Email, &lead.Company, &lead.Phone, &lead.Position,
		&status, &lead.EmailSendCount, &lead.LastSentAt, &lead.ChatSummary, &lead.PrivateLink,
		&proposalState, &lead.ProposalDraft, &lead.ProposalGeneratedAt,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, err
	}
	lead.EngagementStatus = domain.EngagementStatus(status)
	lead.ProposalState = domain.ProposalState(proposalState)
	return lead, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	return scanLead(row)
}

func (r *Repository) List(ctx context.Context) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY source ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return leads, nil
}

func (r *Repository) Upsert(ctx context.Context, params UpsertLeadParams) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (id, source, name, email, company, phone, position, private_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (source, email) DO UPDATE SET
			name = EXCLUDED.name,
			company = EXCLUDED.company,
			phone = EXCLUDED.phone,
			position = EXCLUDED.position,
			updated_at = now()
		RETURNING `+leadColumns,
		params.ID, params.Source, params.Name, params.Email, params.Company, params.Phone, params.Position, params.PrivateLink,
	)
	return scanLead(row)
}

func (r *Repository) RecordSend(ctx context.Context, id uuid.UUID, sentAt time.Time) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leads
		SET email_send_count = email_send_count + 1,
			last_sent_at = $2,
			updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns, id, sentAt)
	return scanLead(row)
}

func (r *Repository) UpdateEngagement(ctx context.Context, id uuid.UUID, status domain.EngagementStatus, chatSummary string) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leads
		SET engagement_status = $2,
			chat_summary = $3,
			updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns, id, string(status), chatSummary)
	return scanLead(row)
}

func (r *Repository) SetProposalState(ctx context.Context, id uuid.UUID, state domain.ProposalState, patch ProposalPatch) (Lead, error) {
	var draft *string
	var generatedAt *time.Time
	if state.HasDraft() {
		draft = patch.DraftContent
		generatedAt = patch.GeneratedAt
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE leads
		SET proposal_state = $2,
			proposal_draft = $3,
			proposal_generated_at = CASE
				WHEN $2 IN ('pending_review', 'sent') THEN COALESCE($4, proposal_generated_at)
				ELSE NULL
			END,
			updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns, id, string(state), draft, generatedAt)
	return scanLead(row)
}
