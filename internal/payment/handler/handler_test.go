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

	"charterdesk/internal/payment/handler/mocks"
	"charterdesk/internal/payment/models"
	dErrors "charterdesk/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type PaymentHandlerSuite struct {
	suite.Suite
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerSuite))
}

func (s *PaymentHandlerSuite) TestHandlePaymentView() {
	s.Run("id with punctuation returns 400", func() {
		router, _ := newTestRouter(s.T())
		w := serve(router, "/payments/1;drop/view")
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("unavailable backend returns 503", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().PaymentView(gomock.Any(), "77").Return(nil, dErrors.New(dErrors.CodeUnavailable, "service unavailable"))

		w := serve(router, "/payments/77/view")
		s.assertStatusAndError(w, http.StatusServiceUnavailable, "upstream_unavailable")
	})

	s.Run("view is served", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().PaymentView(gomock.Any(), "77").Return(&models.PaymentOrderView{ID: 77, PaymentNo: "FK1"}, nil)

		w := serve(router, "/payments/77/view")
		s.Equal(http.StatusOK, w.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal("FK1", body["payment_no"])
	})
}

func (s *PaymentHandlerSuite) TestHandleVerificationView() {
	s.Run("missing record returns 404", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().VerificationView(gomock.Any(), "12").Return(nil, dErrors.New(dErrors.CodeNotFound, "empty data"))

		w := serve(router, "/verifications/12/view")
		s.assertStatusAndError(w, http.StatusNotFound, "not_found")
	})

	s.Run("view is served", func() {
		router, svc := newTestRouter(s.T())
		svc.EXPECT().VerificationView(gomock.Any(), "HX001").Return(&models.VerificationView{OffsetNo: "HX001"}, nil)

		w := serve(router, "/verifications/HX001/view")
		s.Equal(http.StatusOK, w.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal("HX001", body["offset_no"])
		s.Nil(body["verification_type"])
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

func (s *PaymentHandlerSuite) assertStatusAndError(w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	s.Equal(expectedStatus, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(expectedCode, resp["error"])
}
