package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charterdesk/internal/dictionary"
	"charterdesk/pkg/platform/httputil"
)

func (h *Handler) HandleGuestBusinessSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := &GuestBusinessSearch{CustomerFullName: r.URL.Query().Get("customerFullName")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.invalid(ctx, w, err)
		return
	}

	items, err := h.lookups.GuestBusinesses(ctx, req.CustomerFullName)
	if err != nil {
		h.fail(ctx, w, "guest business search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OptionsResponse{Options: dictionary.BusinessOptions(items)})
}

func (h *Handler) HandleGuestBusinessDetail(w http.ResponseWriter, r *http.Request) {
	h.serveRawByID(w, r, "guest business detail failed", h.lookups.GuestBusinessDetail)
}

func (h *Handler) HandleAreaTree(w http.ResponseWriter, r *http.Request) {
	h.serveRaw(w, r, "area tree failed", h.lookups.AreaTree)
}

func (h *Handler) HandleAreaChain(w http.ResponseWriter, r *http.Request) {
	h.serveRawByID(w, r, "area chain failed", h.lookups.AreaParentChain)
}

func (h *Handler) HandleIndexTypes(w http.ResponseWriter, r *http.Request) {
	h.serveRaw(w, r, "index type groups failed", h.lookups.IndexTypeGroups)
}

func (h *Handler) HandleSubjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.lookups.ExpenseSubjects(ctx)
	if err != nil {
		h.fail(ctx, w, "expense subjects failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OptionsResponse{Options: dictionary.SubjectOptions(items)})
}

// serveRaw passes the backend's data payload through unchanged.
func (h *Handler) serveRaw(w http.ResponseWriter, r *http.Request, msg string, fetch func(context.Context) (json.RawMessage, error)) {
	ctx := r.Context()
	data, err := fetch(ctx)
	if err != nil {
		h.fail(ctx, w, msg, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, data)
}

func (h *Handler) serveRawByID(w http.ResponseWriter, r *http.Request, msg string, fetch func(context.Context, string) (json.RawMessage, error)) {
	req := &IDRequest{ID: chi.URLParam(r, "id")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.invalid(r.Context(), w, err)
		return
	}
	h.serveRaw(w, r, msg, func(ctx context.Context) (json.RawMessage, error) {
		return fetch(ctx, req.ID)
	})
}
