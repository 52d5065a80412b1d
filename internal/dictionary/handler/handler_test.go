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

	"charterdesk/internal/backend/models"
	"charterdesk/internal/dictionary"
	"charterdesk/internal/dictionary/handler/mocks"
	dErrors "charterdesk/pkg/domain-errors"
	"charterdesk/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Dictionaries,Lookups

type DictionaryHandlerSuite struct {
	suite.Suite
	router       http.Handler
	dictionaries *mocks.MockDictionaries
	lookups      *mocks.MockLookups
}

func TestDictionaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DictionaryHandlerSuite))
}

func (s *DictionaryHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.dictionaries = mocks.NewMockDictionaries(ctrl)
	s.lookups = mocks.NewMockLookups(ctrl)

	r := chi.NewRouter()
	New(s.dictionaries, s.lookups, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *DictionaryHandlerSuite) serve(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func (s *DictionaryHandlerSuite) assertStatusAndError(w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	s.Equal(expectedStatus, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(expectedCode, resp["error"])
}

func testBundle() *dictionary.Bundle {
	return &dictionary.Bundle{
		Ports: dictionary.StringOptions{{Label: "上海", Value: "CNSHA"}},
	}
}

func (s *DictionaryHandlerSuite) TestBundle() {
	s.dictionaries.EXPECT().Ensure(gomock.Any()).Return(testBundle(), nil)

	w := s.serve("/dictionaries")
	s.Equal(http.StatusOK, w.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Contains(body, "ports")
	s.Contains(body, "category_with_subject_tree")
}

func (s *DictionaryHandlerSuite) TestBundleUnavailable() {
	s.dictionaries.EXPECT().Ensure(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeUnavailable, "dictionary load failed"))

	w := s.serve("/dictionaries")
	s.assertStatusAndError(w, http.StatusServiceUnavailable, "upstream_unavailable")
}

func (s *DictionaryHandlerSuite) TestDictionaryByName() {
	s.dictionaries.EXPECT().Ensure(gomock.Any()).Return(testBundle(), nil)

	w := s.serve("/dictionaries/ports")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"name":"ports","options":[{"label":"上海","value":"CNSHA"}]}`, w.Body.String())
}

func (s *DictionaryHandlerSuite) TestUnknownDictionary() {
	s.dictionaries.EXPECT().Ensure(gomock.Any()).Return(testBundle(), nil)

	w := s.serve("/dictionaries/harbours")
	s.assertStatusAndError(w, http.StatusNotFound, "not_found")
}

func (s *DictionaryHandlerSuite) TestStatic() {
	s.Run("names", func() {
		w := s.serve("/dictionaries/static")
		s.Equal(http.StatusOK, w.Code)
		var body NamesResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Contains(body.Names, "pay_types")
		s.IsNonDecreasing(body.Names)
	})

	s.Run("by name", func() {
		w := s.serve("/dictionaries/static/bank_pay_statuses")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"name":"bank_pay_statuses","options":[
			{"label":"未支付","value":0},
			{"label":"支付成功","value":1},
			{"label":"支付失败","value":2},
			{"label":"支付中","value":3}
		]}`, w.Body.String())
	})

	s.Run("unknown", func() {
		w := s.serve("/dictionaries/static/nope")
		s.assertStatusAndError(w, http.StatusNotFound, "not_found")
	})
}

func (s *DictionaryHandlerSuite) TestStatus() {
	s.Run("by code", func() {
		w := s.serve("/statuses/contract/2")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"label":"审批通过","color":"#07c160","status_class":"status-approved","value":2}`, w.Body.String())
	})

	s.Run("by label", func() {
		w := s.serve("/statuses/verification/%E5%B7%B2%E6%92%A4%E5%9B%9E")
		s.Equal(http.StatusOK, w.Code)
		var info dictionary.StatusInfo
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &info))
		s.Equal(4, info.Value)
		s.Equal("#ff976a", info.Color)
	})

	s.Run("unknown label resolves to approving", func() {
		w := s.serve("/statuses/contract/whatever")
		s.Equal(http.StatusOK, w.Code)
		var info dictionary.StatusInfo
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &info))
		s.Equal(1, info.Value)
		s.Equal("审批中", info.Label)
	})

	s.Run("unknown code keeps its value", func() {
		w := s.serve("/statuses/verification/99")
		s.Equal(http.StatusOK, w.Code)
		var info dictionary.StatusInfo
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &info))
		s.Equal(99, info.Value)
		s.Equal("审批中", info.Label)
		s.Equal("status-approving", info.StatusClass)
	})

	s.Run("unknown taxonomy returns 400", func() {
		w := s.serve("/statuses/invoice/1")
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})
}

func (s *DictionaryHandlerSuite) TestGuestBusinessSearch() {
	s.lookups.EXPECT().GuestBusinesses(gomock.Any(), "中远").Return([]models.GuestBusiness{
		{ID: 9, Code: "GB1", CustomerFullName: "中远海运", GuestRating: testutil.Ptr(1)},
		{ID: 10, Code: "GB2", CustomerFullName: "中远物流", IsEnable: testutil.Ptr(0)},
	}, nil)

	w := s.serve("/lookups/guest-business?customerFullName=%20%E4%B8%AD%E8%BF%9C%20")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"options":[
		{"label":"中远海运(A1)","value":"GB1","meta":{"id":9}},
		{"label":"中远物流(未知等级)","value":"GB2","disabled":true,"meta":{"id":10}}
	]}`, w.Body.String())
}

func (s *DictionaryHandlerSuite) TestGuestBusinessDetail() {
	s.Run("passes the record through", func() {
		s.lookups.EXPECT().GuestBusinessDetail(gomock.Any(), "9").Return(json.RawMessage(`{"id":9,"code":"GB1"}`), nil)

		w := s.serve("/lookups/guest-business/9")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"id":9,"code":"GB1"}`, w.Body.String())
	})

	s.Run("invalid id returns 400", func() {
		w := s.serve("/lookups/guest-business/9;1")
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("missing record returns 404", func() {
		s.lookups.EXPECT().GuestBusinessDetail(gomock.Any(), "404").Return(nil, dErrors.New(dErrors.CodeNotFound, "guest business not found"))

		w := s.serve("/lookups/guest-business/404")
		s.assertStatusAndError(w, http.StatusNotFound, "not_found")
	})
}

func (s *DictionaryHandlerSuite) TestAreas() {
	s.Run("tree", func() {
		s.lookups.EXPECT().AreaTree(gomock.Any()).Return(json.RawMessage(`[{"id":"11","name":"北京"}]`), nil)

		w := s.serve("/lookups/areas")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[{"id":"11","name":"北京"}]`, w.Body.String())
	})

	s.Run("chain", func() {
		s.lookups.EXPECT().AreaParentChain(gomock.Any(), "110101").Return(json.RawMessage(`["11","1101","110101"]`), nil)

		w := s.serve("/lookups/areas/110101/chain")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`["11","1101","110101"]`, w.Body.String())
	})

	s.Run("timeout returns 504", func() {
		s.lookups.EXPECT().AreaTree(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeTimeout, "request timeout"))

		w := s.serve("/lookups/areas")
		s.assertStatusAndError(w, http.StatusGatewayTimeout, "upstream_timeout")
	})
}

func (s *DictionaryHandlerSuite) TestIndexTypesAndSubjects() {
	s.lookups.EXPECT().IndexTypeGroups(gomock.Any()).Return(json.RawMessage(`[]`), nil)
	w := s.serve("/lookups/index-types")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())

	s.lookups.EXPECT().ExpenseSubjects(gomock.Any()).Return([]models.Subject{{Code: "S01", CnName: "海运费"}}, nil)
	w = s.serve("/lookups/subjects")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"options":[{"label":"海运费","value":"S01"}]}`, w.Body.String())
}
