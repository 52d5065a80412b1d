package navigation

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charterdesk/internal/platform/config"
)

func testCatalog() *Catalog {
	return NewCatalog("船舶租赁审批", []config.Route{
		{Name: "Home", Title: "首页", Root: true},
		{Name: "ContractDetail", Title: "合同审批"},
		{Name: "Blank", Title: "  "},
	})
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "合同审批 - 船舶租赁审批", PageTitle("合同审批", "船舶租赁审批"))
	assert.Equal(t, "船舶租赁审批", PageTitle("", "船舶租赁审批"))
}

func TestLookup(t *testing.T) {
	c := testCatalog()

	t.Run("root route", func(t *testing.T) {
		meta, ok := c.Lookup("Home")
		require.True(t, ok)
		assert.True(t, meta.IsRoot)
		assert.Equal(t, "首页 - 船舶租赁审批", meta.PageTitle)
	})

	t.Run("detail route", func(t *testing.T) {
		meta, ok := c.Lookup("ContractDetail")
		require.True(t, ok)
		assert.False(t, meta.IsRoot)
		assert.Equal(t, "合同审批", meta.Title)
	})

	t.Run("untitled route shows the app name", func(t *testing.T) {
		meta, ok := c.Lookup("Blank")
		require.True(t, ok)
		assert.Equal(t, "", meta.Title)
		assert.Equal(t, "船舶租赁审批", meta.PageTitle)
	})

	t.Run("unknown route", func(t *testing.T) {
		_, ok := c.Lookup("Nope")
		assert.False(t, ok)
	})
}

func TestDefaultRoutes(t *testing.T) {
	cfg := config.Default()
	c := NewCatalog(cfg.AppName, cfg.Routes)

	for _, name := range []string{"Home", "Profile"} {
		meta, ok := c.Lookup(name)
		require.True(t, ok, name)
		assert.True(t, meta.IsRoot, name)
	}
	meta, ok := c.Lookup("PaymentDetail")
	require.True(t, ok)
	assert.False(t, meta.IsRoot)
}

func TestHandleRoute(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(testCatalog(), slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)

	t.Run("known route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/routes/Home", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name":"Home","title":"首页","page_title":"首页 - 船舶租赁审批","is_root":true}`, w.Body.String())
	})

	t.Run("unknown route returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/routes/Nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "not_found", body["error"])
	})
}
