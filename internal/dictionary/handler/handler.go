package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charterdesk/internal/backend/models"
	"charterdesk/internal/dictionary"
	dErrors "charterdesk/pkg/domain-errors"
	"charterdesk/pkg/platform/httputil"
	"charterdesk/pkg/requestcontext"
)

// Dictionaries supplies the cached option bundle.
type Dictionaries interface {
	Ensure(ctx context.Context) (*dictionary.Bundle, error)
}

// Lookups are the backend queries served without caching.
type Lookups interface {
	GuestBusinesses(ctx context.Context, customerFullName string) ([]models.GuestBusiness, error)
	GuestBusinessDetail(ctx context.Context, id string) (json.RawMessage, error)
	AreaTree(ctx context.Context) (json.RawMessage, error)
	AreaParentChain(ctx context.Context, areaID string) (json.RawMessage, error)
	IndexTypeGroups(ctx context.Context) (json.RawMessage, error)
	ExpenseSubjects(ctx context.Context) ([]models.Subject, error)
}

// NamedResponse is one dictionary by name.
type NamedResponse struct {
	Name    string `json:"name"`
	Options any    `json:"options"`
}

type NamesResponse struct {
	Names []string `json:"names"`
}

type OptionsResponse struct {
	Options dictionary.StringOptions `json:"options"`
}

type Handler struct {
	logger       *slog.Logger
	dictionaries Dictionaries
	lookups      Lookups
}

func New(dictionaries Dictionaries, lookups Lookups, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		dictionaries: dictionaries,
		lookups:      lookups,
	}
}

// Register registers the dictionary, status and lookup routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dictionaries", h.HandleBundle)
	r.Get("/dictionaries/static", h.HandleStaticNames)
	r.Get("/dictionaries/static/{name}", h.HandleStatic)
	r.Get("/dictionaries/{name}", h.HandleDictionary)
	r.Get("/statuses/{taxonomy}/{code}", h.HandleStatus)

	r.Get("/lookups/guest-business", h.HandleGuestBusinessSearch)
	r.Get("/lookups/guest-business/{id}", h.HandleGuestBusinessDetail)
	r.Get("/lookups/areas", h.HandleAreaTree)
	r.Get("/lookups/areas/{id}/chain", h.HandleAreaChain)
	r.Get("/lookups/index-types", h.HandleIndexTypes)
	r.Get("/lookups/subjects", h.HandleSubjects)
}

func (h *Handler) HandleBundle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bundle, err := h.dictionaries.Ensure(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to load dictionaries", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, bundle)
}

func (h *Handler) HandleDictionary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := &NameRequest{Name: chi.URLParam(r, "name")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.invalid(ctx, w, err)
		return
	}

	bundle, err := h.dictionaries.Ensure(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to load dictionaries", err)
		return
	}
	options, ok := bundle.Lookup(req.Name)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown dictionary"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, NamedResponse{Name: req.Name, Options: options})
}

func (h *Handler) HandleStaticNames(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, NamesResponse{Names: dictionary.StaticNames()})
}

func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	req := &NameRequest{Name: chi.URLParam(r, "name")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.invalid(r.Context(), w, err)
		return
	}
	options, ok := dictionary.Static(req.Name)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown dictionary"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, NamedResponse{Name: req.Name, Options: options})
}

// HandleStatus resolves a numeric code with ByCode and anything else with ByLabel.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	req := &StatusRequest{Taxonomy: chi.URLParam(r, "taxonomy"), Code: chi.URLParam(r, "code")}
	if err := httputil.PrepareRequest(req); err != nil {
		h.invalid(r.Context(), w, err)
		return
	}
	taxonomy, _ := dictionary.TaxonomyByName(req.Taxonomy)

	if code, ok := req.Numeric(); ok {
		httputil.WriteJSON(w, http.StatusOK, taxonomy.ByCode(code))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, taxonomy.ByLabel(req.Code))
}

func (h *Handler) invalid(ctx context.Context, w http.ResponseWriter, err error) {
	h.logger.WarnContext(ctx, "invalid request",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
