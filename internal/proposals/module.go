package proposals

import (
	"context"

	"outreach_backend/internal/events"
	apphttp "outreach_backend/internal/http"
	"outreach_backend/internal/leads/domain"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/platform/logger"
)

// Module is the proposals bounded context module implementing http.Module.
type Module struct {
	handler  *Handler
	workflow *Workflow
}

// NewModule wires the proposal workflow and subscribes the hot-lead
// auto-draft trigger to engagement changes.
func NewModule(store repository.Store, generator DraftGenerator, mailer ProposalMailer, bus events.Bus, log *logger.Logger) *Module {
	workflow := NewWorkflow(store, generator, mailer, bus, log)

	bus.Subscribe(events.LeadEngagementChanged{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.LeadEngagementChanged)
		if !ok {
			return nil
		}
		if e.NewStatus != string(domain.StatusHot) {
			return nil
		}

		go func() {
			if err := workflow.AutoGenerate(context.Background(), e.LeadID); err != nil {
				log.Error("hot lead auto draft failed", "error", err, "leadId", e.LeadID)
			}
		}()

		return nil
	}))

	return &Module{
		handler:  NewHandler(workflow),
		workflow: workflow,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "proposals"
}

// Workflow returns the proposal workflow for other modules.
func (m *Module) Workflow() *Workflow {
	return m.workflow
}

// RegisterRoutes mounts proposal routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/proposals"))
}

var _ apphttp.Module = (*Module)(nil)
