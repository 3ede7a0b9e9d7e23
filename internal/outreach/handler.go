package outreach

import (
	"context"
	"net/http"

	"outreach_backend/platform/httpkit"
	"outreach_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BatchEnqueuer hands a batch off to the background worker.
type BatchEnqueuer interface {
	EnqueueOutreachBatch(ctx context.Context, leadIDs []uuid.UUID) (string, error)
}

type BatchRequest struct {
	LeadIDs []string `json:"leadIds" validate:"required,min=1,dive,uuid"`
	Async   bool     `json:"async"`
}

type BatchResponse struct {
	Results []SendResult `json:"results"`
}

type BatchQueuedResponse struct {
	TaskID string `json:"taskId"`
}

type Handler struct {
	orchestrator *Orchestrator
	enqueuer     BatchEnqueuer
	val          *validator.Validator
}

func NewHandler(orchestrator *Orchestrator, enqueuer BatchEnqueuer, val *validator.Validator) *Handler {
	return &Handler{orchestrator: orchestrator, enqueuer: enqueuer, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/batch", h.SendBatch)
}

func (h *Handler) SendBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.LeadIDs))
	for _, raw := range req.LeadIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "validation failed", "invalid lead id: "+raw)
			return
		}
		ids = append(ids, id)
	}

	if req.Async {
		if h.enqueuer == nil {
			httpkit.Error(c, http.StatusBadRequest, "async batches are not configured", nil)
			return
		}
		taskID, err := h.enqueuer.EnqueueOutreachBatch(c.Request.Context(), ids)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.JSON(c, http.StatusAccepted, BatchQueuedResponse{TaskID: taskID})
		return
	}

	results := h.orchestrator.SendBatch(c.Request.Context(), ids)
	httpkit.OK(c, BatchResponse{Results: results})
}
