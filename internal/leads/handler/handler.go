package handler

import (
	"net/http"

	"outreach_backend/internal/leads/domain"
	"outreach_backend/internal/leads/repository"
	"outreach_backend/internal/leads/service"
	"outreach_backend/internal/leads/transport"
	"outreach_backend/platform/httpkit"
	"outreach_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Upsert)
	rg.GET("/:id", h.GetByID)
	rg.POST("/:id/engagement", h.UpdateEngagement)
}

func (h *Handler) RegisterReportRoute(rg *gin.RouterGroup) {
	rg.GET("/report", h.Report)
}

// List returns leads grouped by source, or search matches when ?q= is set.
func (h *Handler) List(c *gin.Context) {
	if query, ok := c.GetQuery("q"); ok {
		leads, err := h.svc.Search(c.Request.Context(), query)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, transport.ToLeadResponses(leads))
		return
	}

	groups, err := h.svc.ListBySource(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToSourceGroupResponses(groups))
}

func (h *Handler) Upsert(c *gin.Context) {
	var req transport.UpsertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Upsert(c.Request.Context(), repository.UpsertLeadParams{
		Source:   req.Source,
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Phone:    req.Phone,
		Position: req.Position,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.ToLeadResponse(lead))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	lead, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToLeadResponse(lead))
}

func (h *Handler) UpdateEngagement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.UpdateEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	status, ok := domain.ParseEngagementStatus(req.Status)
	if !ok {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, "unknown engagement status")
		return
	}

	lead, err := h.svc.UpdateEngagement(c.Request.Context(), id, status, req.ChatSummary)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToLeadResponse(lead))
}

// Report aggregates engagement counts and per-lead report rows.
func (h *Handler) Report(c *gin.Context) {
	leads, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToReportResponse(leads))
}
