package navigation

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "charterdesk/pkg/domain-errors"
	"charterdesk/pkg/platform/httputil"
	"charterdesk/pkg/requestcontext"
)

type Handler struct {
	logger  *slog.Logger
	catalog *Catalog
}

func NewHandler(catalog *Catalog, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, catalog: catalog}
}

// Register registers the route metadata endpoint with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/routes/{name}", h.HandleRoute)
}

func (h *Handler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	meta, ok := h.catalog.Lookup(name)
	if !ok {
		h.logger.DebugContext(r.Context(), "unknown route",
			"route", name,
			"request_id", requestcontext.RequestID(r.Context()),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown route"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, meta)
}
