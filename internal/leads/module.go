// Package leads provides the lead management bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	apphttp "outreach_backend/internal/http"
	"outreach_backend/internal/leads/handler"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/internal/leads/service"
	"outreach_backend/platform/config"
	"outreach_backend/platform/events"
	"outreach_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, links config.PrivateLinkConfig) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, links)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the leads service for other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// Store returns the lead store for other modules.
func (m *Module) Store() repository.Store {
	return m.repo
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/leads"))
	m.handler.RegisterReportRoute(ctx.Protected)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
