// Package auth resolves the caller's access token, which the BFF forwards to backend services.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"charterdesk/pkg/requestcontext"
)

// DefaultCookieName is where the resolved token is persisted between requests.
const DefaultCookieName = "charterdesk_token"

// ErrInvalidToken is returned by a ClaimsParser for tokens that fail verification.
var ErrInvalidToken = errors.New("invalid token")

// ClaimsParser extracts the caller uid from a token.
type ClaimsParser interface {
	ParseUID(token string) (string, error)
}

// Config drives the Token middleware.
type Config struct {
	CookieName string
	// Secure marks the token cookie Secure.
	Secure bool
	// Required rejects requests that carry no token at all.
	Required bool
	Parser   ClaimsParser
}

// JWTParser reads the uid claim. With a signing key the HMAC signature and expiry are
// verified; without one the token is decoded unverified because the backend services
// remain the authority on its validity.
type JWTParser struct {
	SigningKey []byte
}

func (p JWTParser) ParseUID(token string) (string, error) {
	claims := jwt.MapClaims{}
	if len(p.SigningKey) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		return uidFromClaims(claims), nil
	}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return p.SigningKey, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return uidFromClaims(claims), nil
}

func uidFromClaims(claims jwt.MapClaims) string {
	for _, key := range []string{"uid", "sub"} {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

// Token resolves the access token with precedence query > Authorization header > cookie.
// A non-blank ?token= that differs from the stored cookie replaces it.
func Token(cfg Config, logger *slog.Logger) func(http.Handler) http.Handler {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	verifying := false
	if jp, ok := cfg.Parser.(JWTParser); ok && len(jp.SigningKey) > 0 {
		verifying = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			stored := ""
			if c, err := r.Cookie(cookieName); err == nil {
				stored = c.Value
			}

			token := strings.TrimSpace(r.URL.Query().Get("token"))
			switch {
			case token != "":
				if token != stored {
					http.SetCookie(w, &http.Cookie{
						Name:     cookieName,
						Value:    token,
						Path:     "/",
						HttpOnly: true,
						Secure:   cfg.Secure,
						SameSite: http.SameSiteLaxMode,
					})
				}
			default:
				if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
					token = strings.TrimSpace(bearer)
				}
				if token == "" {
					token = stored
				}
			}

			if token == "" {
				if cfg.Required {
					logger.WarnContext(ctx, "unauthorized access - missing token",
						"request_id", requestcontext.RequestID(ctx),
					)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing access token")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx = requestcontext.WithToken(ctx, token)
			if cfg.Parser != nil {
				uid, err := cfg.Parser.ParseUID(token)
				switch {
				case err == nil:
					ctx = requestcontext.WithUserID(ctx, uid)
				case verifying:
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
					return
				default:
					logger.DebugContext(ctx, "token is not a decodable jwt",
						"request_id", requestcontext.RequestID(ctx),
					)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":%q,"error_description":%q}`, errCode, errDesc))
}
