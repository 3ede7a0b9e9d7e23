package outreach

import (
	apphttp "outreach_backend/internal/http"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/platform/config"
	"outreach_backend/platform/events"
	"outreach_backend/platform/logger"
	"outreach_backend/platform/validator"
)

// Module is the outreach bounded context module implementing http.Module.
type Module struct {
	handler      *Handler
	orchestrator *Orchestrator
}

// NewModule wires the orchestrator and its HTTP surface. The enqueuer may be
// nil when no Redis is configured; async batches are then rejected.
func NewModule(
	store repository.Store,
	generator ContentGenerator,
	mailer Mailer,
	bus events.Bus,
	cfg config.OutreachConfig,
	enqueuer BatchEnqueuer,
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	orchestrator := NewOrchestrator(
		store,
		generator,
		mailer,
		CooldownPolicy{Duration: cfg.GetOutreachCooldown()},
		bus,
		log,
		cfg.GetOutreachConcurrency(),
	)

	return &Module{
		handler:      NewHandler(orchestrator, enqueuer, val),
		orchestrator: orchestrator,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "outreach"
}

// Orchestrator returns the batch orchestrator for the background worker.
func (m *Module) Orchestrator() *Orchestrator {
	return m.orchestrator
}

// RegisterRoutes mounts outreach routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/outreach"))
}

var _ apphttp.Module = (*Module)(nil)
