package device

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"charterdesk/pkg/requestcontext"
)

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func TestParse(t *testing.T) {
	t.Run("mobile safari", func(t *testing.T) {
		d := Parse(iphoneUA)
		assert.Equal(t, "mobile", d.Platform)
		assert.Equal(t, "safari", d.Browser)
	})

	t.Run("desktop chrome", func(t *testing.T) {
		d := Parse("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		assert.Equal(t, "desktop", d.Platform)
		assert.Equal(t, "chrome", d.Browser)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, requestcontext.Device{Platform: "unknown", Browser: "unknown", OS: "unknown"}, Parse(""))
	})
}

func TestDeviceMiddleware(t *testing.T) {
	var got requestcontext.Device
	var ok bool
	h := Device(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = requestcontext.DeviceInfo(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(requestcontext.WithClientMetadata(req.Context(), "10.0.0.1", iphoneUA))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, ok)
	assert.Equal(t, "mobile", got.Platform)
}
