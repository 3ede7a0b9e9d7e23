package proposals

import (
	"net/http"

	"outreach_backend/internal/leads/transport"
	"outreach_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	workflow *Workflow
}

func NewHandler(workflow *Workflow) *Handler {
	return &Handler{workflow: workflow}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:id/generate", h.Generate)
	rg.GET("/:id/draft", h.Draft)
	rg.POST("/:id/send", h.Send)
}

func (h *Handler) Generate(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	lead, err := h.workflow.Generate(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToLeadResponse(lead))
}

func (h *Handler) Draft(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	lead, err := h.workflow.Draft(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{
		"leadId":      lead.ID,
		"state":       string(lead.ProposalState),
		"draft":       lead.ProposalDraft,
		"generatedAt": lead.ProposalGeneratedAt,
	})
}

func (h *Handler) Send(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	lead, err := h.workflow.Send(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToLeadResponse(lead))
}

func (h *Handler) leadID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return uuid.Nil, false
	}
	return id, true
}
