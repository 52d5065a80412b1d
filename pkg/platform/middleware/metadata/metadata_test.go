package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charterdesk/pkg/requestcontext"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		trusted    []string
		headers    map[string]string
		wantIP     string
	}{
		{"ignores XFF from untrusted peer", "192.168.1.1:1234", nil, map[string]string{"X-Forwarded-For": "203.0.113.1"}, "192.168.1.1"},
		{"honours XFF from trusted proxy", "10.0.0.1:1234", []string{"10.0.0.0/8"}, map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.2"}, "203.0.113.1"},
		{"honours X-Real-IP from trusted proxy", "10.0.0.1:1234", []string{"10.0.0.0/8"}, map[string]string{"X-Real-IP": "198.51.100.9"}, "198.51.100.9"},
		{"rejects malformed XFF", "10.0.0.1:1234", []string{"10.0.0.0/8"}, map[string]string{"X-Forwarded-For": "not-an-ip"}, "10.0.0.1"},
		{"handles IPv6 peer", "[2001:db8::1]:443", nil, nil, "2001:db8::1"},
		{"unknown when RemoteAddr empty", "", nil, nil, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefixes, err := ParseTrustedProxies(tt.trusted)
			require.NoError(t, err)

			var gotIP, gotUA string
			h := NewMiddleware(prefixes).Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotIP = requestcontext.ClientIP(r.Context())
				gotUA = requestcontext.UserAgent(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("User-Agent", "charter-mobile/1.0")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantIP, gotIP)
			assert.Equal(t, "charter-mobile/1.0", gotUA)
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	p, err := ParseTrustedProxies([]string{" 10.0.0.0/8 ", ""})
	require.NoError(t, err)
	assert.Len(t, p, 1)

	_, err = ParseTrustedProxies([]string{"10.0.0.0"})
	assert.Error(t, err)
}
