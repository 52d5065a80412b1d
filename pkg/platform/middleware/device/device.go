package device

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"charterdesk/pkg/requestcontext"
)

// Parse derives platform, browser and OS from a User-Agent string.
// Empty parts are reported as "unknown".
func Parse(userAgent string) requestcontext.Device {
	if userAgent == "" {
		return requestcontext.Device{Platform: "unknown", Browser: "unknown", OS: "unknown"}
	}
	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()

	platform := "desktop"
	switch {
	case ua.Bot():
		platform = "bot"
	case ua.Mobile():
		platform = "mobile"
	}

	return requestcontext.Device{
		Platform: platform,
		Browser:  orUnknown(browser),
		OS:       orUnknown(ua.OS()),
	}
}

func orUnknown(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return s
}

// Device stores the parsed device in the context. It must run after the metadata
// middleware, which captures the User-Agent.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = requestcontext.WithDevice(ctx, Parse(requestcontext.UserAgent(ctx)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
