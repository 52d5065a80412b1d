package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charterdesk/internal/payment/models"
	"charterdesk/pkg/platform/httputil"
	"charterdesk/pkg/requestcontext"
)

// Service defines the payment order and verification view operations.
type Service interface {
	PaymentView(ctx context.Context, id string) (*models.PaymentOrderView, error)
	VerificationView(ctx context.Context, id string) (*models.VerificationView, error)
}

type Handler struct {
	logger   *slog.Logger
	payments Service
}

func New(payments Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		payments: payments,
	}
}

// Register registers the payment and verification routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/payments/{id}/view", h.HandlePaymentView)
	r.Get("/verifications/{id}/view", h.HandleVerificationView)
}

func (h *Handler) HandlePaymentView(w http.ResponseWriter, r *http.Request) {
	serveDocument(h, w, r, "payment", h.payments.PaymentView)
}

func (h *Handler) HandleVerificationView(w http.ResponseWriter, r *http.Request) {
	serveDocument(h, w, r, "verification", h.payments.VerificationView)
}

func serveDocument[T any](h *Handler, w http.ResponseWriter, r *http.Request, kind string, load func(context.Context, string) (*T, error)) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req := &DocumentRequest{ID: chi.URLParam(r, "id")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.logger.WarnContext(ctx, "invalid "+kind+" view request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	doc, err := load(ctx, req.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build "+kind+" view",
			"request_id", requestID,
			"document_id", req.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, doc)
}
