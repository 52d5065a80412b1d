package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"charterdesk/internal/contract/handler/mocks"
	"charterdesk/internal/contract/models"
	dErrors "charterdesk/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type ContractHandlerSuite struct {
	suite.Suite
}

func TestContractHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContractHandlerSuite))
}

func (s *ContractHandlerSuite) TestHandleView() {
	s.Run("non numeric id returns 400", func() {
		router, _ := newTestRouter(s.T())
		w := serve(router, "/contracts/abc/view")
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("id beyond int64 returns 400", func() {
		router, _ := newTestRouter(s.T())
		w := serve(router, "/contracts/99999999999999999999/view")
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("missing contract returns 404", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().View(gomock.Any(), int64(404)).Return(nil, dErrors.New(dErrors.CodeNotFound, "empty data"))

		w := serve(router, "/contracts/404/view")
		s.assertStatusAndError(w, http.StatusNotFound, "not_found")
	})

	s.Run("backend timeout returns 504", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().View(gomock.Any(), int64(9)).Return(nil, dErrors.New(dErrors.CodeTimeout, "request timeout"))

		w := serve(router, "/contracts/9/view")
		s.assertStatusAndError(w, http.StatusGatewayTimeout, "upstream_timeout")
	})

	s.Run("view is served", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().View(gomock.Any(), int64(1001)).Return(&models.View{
			ID:     1001,
			Layout: models.LayoutVCFreight,
			UI:     models.UIState{ActiveCollapse: []string{"1", "2", "3", "4"}},
		}, nil)

		w := serve(router, "/contracts/1001/view")
		s.Equal(http.StatusOK, w.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal("vc_freight", body["layout"])
		s.Equal(float64(1001), body["id"])
		s.NotContains(body, "rental_scheme")
	})
}

func (s *ContractHandlerSuite) TestHandleVoyage() {
	s.Run("invalid flag returns 400", func() {
		router, _ := newTestRouter(s.T())
		w := serve(router, "/contracts/voyage?contractCode=CT-1&tcWithTct=maybe")
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("no voyage is null", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().Voyage(gomock.Any(), "", false).Return(nil)

		w := serve(router, "/contracts/voyage")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"voyage":null}`, w.Body.String())
	})

	s.Run("time charter flag is passed through", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().Voyage(gomock.Any(), "CT-1", true).Return(&models.Voyage{ID: 5, Content: "远洋一号 - E-1"})

		w := serve(router, "/contracts/voyage?contractCode=%20CT-1%20&tcWithTct=true")
		s.Equal(http.StatusOK, w.Code)
		var body VoyageResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Require().NotNil(body.Voyage)
		s.Equal("远洋一号 - E-1", body.Voyage.Content)
	})
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	svc := mocks.NewMockService(ctrl)

	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func (s *ContractHandlerSuite) assertStatusAndError(w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	s.Equal(expectedStatus, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(expectedCode, resp["error"])
}
