package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charterdesk/internal/contract/models"
	"charterdesk/pkg/platform/httputil"
	"charterdesk/pkg/requestcontext"
)

// Service defines the contract view operations.
type Service interface {
	View(ctx context.Context, id int64) (*models.View, error)
	Voyage(ctx context.Context, contractCode string, tcWithTCT bool) *models.Voyage
}

// VoyageResponse wraps the voyage so "no voyage" is an explicit null.
type VoyageResponse struct {
	Voyage *models.Voyage `json:"voyage"`
}

type Handler struct {
	logger    *slog.Logger
	contracts Service
}

func New(contracts Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		contracts: contracts,
	}
}

// Register registers the contract routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/contracts/voyage", h.HandleVoyage)
	r.Get("/contracts/{id}/view", h.HandleView)
}

func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req := &ViewRequest{ID: chi.URLParam(r, "id")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.logger.WarnContext(ctx, "invalid contract view request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	view, err := h.contracts.View(ctx, req.ContractID())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build contract view",
			"request_id", requestID,
			"contract_id", req.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) HandleVoyage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := &VoyageRequest{ContractCode: q.Get("contractCode"), TCWithTCT: q.Get("tcWithTct")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.logger.WarnContext(ctx, "invalid voyage request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, VoyageResponse{
		Voyage: h.contracts.Voyage(ctx, req.ContractCode, req.TimeCharter()),
	})
}
