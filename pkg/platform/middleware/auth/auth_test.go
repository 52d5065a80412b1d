package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"charterdesk/pkg/requestcontext"
)

var signingKey = []byte("test-signing-key")

func signed(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

type TokenSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(TokenSuite))
}

func (s *TokenSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

type captured struct {
	token, uid string
	called     bool
}

func (s *TokenSuite) serve(cfg Config, req *http.Request) (*httptest.ResponseRecorder, *captured) {
	c := &captured{}
	h := Token(cfg, s.logger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		c.called = true
		c.token = requestcontext.Token(r.Context())
		c.uid = requestcontext.UserID(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, c
}

func (s *TokenSuite) TestQueryTokenOverridesStoredToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/1/view?token=%20fresh%20", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "stale"})
	req.Header.Set("Authorization", "Bearer header-token")

	rec, c := s.serve(Config{}, req)

	s.Equal("fresh", c.token)
	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal("fresh", cookies[0].Value)
	s.True(cookies[0].HttpOnly)
}

func (s *TokenSuite) TestQueryTokenEqualToStoredDoesNotRewriteCookie() {
	req := httptest.NewRequest(http.MethodGet, "/?token=same", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "same"})

	rec, c := s.serve(Config{}, req)

	s.Equal("same", c.token)
	s.Empty(rec.Result().Cookies())
}

func (s *TokenSuite) TestBlankQueryTokenIsIgnored() {
	req := httptest.NewRequest(http.MethodGet, "/?token=%20%20", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	rec, c := s.serve(Config{}, req)

	s.Equal("header-token", c.token)
	s.Empty(rec.Result().Cookies())
}

func (s *TokenSuite) TestFallsBackToCookie() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "from-cookie"})

	_, c := s.serve(Config{}, req)
	s.Equal("from-cookie", c.token)
}

func (s *TokenSuite) TestMissingToken() {
	s.Run("optional passes through", func() {
		_, c := s.serve(Config{}, httptest.NewRequest(http.MethodGet, "/", nil))
		s.True(c.called)
		s.Empty(c.token)
	})
	s.Run("required rejects", func() {
		rec, c := s.serve(Config{Required: true}, httptest.NewRequest(http.MethodGet, "/", nil))
		s.False(c.called)
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.JSONEq(`{"error":"unauthorized","error_description":"Missing access token"}`, rec.Body.String())
	})
}

func (s *TokenSuite) TestUnverifiedParserExtractsUID() {
	tok := signed(s.T(), []byte("someone-elses-key"), jwt.MapClaims{"uid": float64(1001)})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	_, c := s.serve(Config{Parser: JWTParser{}}, req)
	s.Equal("1001", c.uid)
}

func (s *TokenSuite) TestUnverifiedParserToleratesOpaqueTokens() {
	req := httptest.NewRequest(http.MethodGet, "/?token=opaque-session-token", nil)
	rec, c := s.serve(Config{Parser: JWTParser{}}, req)

	s.True(c.called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("opaque-session-token", c.token)
	s.Empty(c.uid)
}

func (s *TokenSuite) TestVerifyingParser() {
	cfg := Config{Parser: JWTParser{SigningKey: signingKey}}

	s.Run("accepts a valid signature", func() {
		tok := signed(s.T(), signingKey, jwt.MapClaims{"sub": "u-7", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)

		_, c := s.serve(cfg, req)
		s.Equal("u-7", c.uid)
	})

	s.Run("rejects a foreign signature", func() {
		tok := signed(s.T(), []byte("other"), jwt.MapClaims{"sub": "u-7"})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)

		rec, c := s.serve(cfg, req)
		s.False(c.called)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("rejects an expired token", func() {
		tok := signed(s.T(), signingKey, jwt.MapClaims{"sub": "u-7", "exp": time.Now().Add(-time.Minute).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)

		rec, _ := s.serve(cfg, req)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func TestJWTParserErrors(t *testing.T) {
	_, err := JWTParser{}.ParseUID("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
