package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	SessionTokenHeader = "X-Session-Token"

	agentKey contextKey = "agent"
	// apiTokenAgent is the agent recorded for requests made with a static API token.
	apiTokenAgent = "api"
)

// SessionLookup resolves dashboard session tokens, satisfied by *kv.Store.
type SessionLookup interface {
	AdminSession(ctx context.Context, token string) (string, bool, error)
}

// Auth admits requests carrying a configured bearer token or a live dashboard
// session. The authenticated agent is stored in the request context.
func Auth(tokens []string, sessions SessionLookup, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bearer := bearerToken(r); bearer != "" && matchesAny(bearer, tokens) {
				next.ServeHTTP(w, r.WithContext(WithAgent(r.Context(), apiTokenAgent)))
				return
			}

			token := r.Header.Get(SessionTokenHeader)
			if token == "" {
				token = bearerToken(r)
			}
			if token != "" && sessions != nil {
				agent, ok, err := sessions.AdminSession(r.Context(), token)
				if err != nil {
					LoggerFrom(r.Context(), logger).Error("Failed to resolve session", zap.Error(err))
					WriteError(w, r, http.StatusServiceUnavailable, ErrorCodeInternal, "Session store unavailable")
					return
				}
				if ok {
					next.ServeHTTP(w, r.WithContext(WithAgent(r.Context(), agent)))
					return
				}
			}

			WriteError(w, r, http.StatusUnauthorized, ErrorCodeUnauthorized, ErrorMessageUnauthorized)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func matchesAny(token string, tokens []string) bool {
	for _, t := range tokens {
		if t != "" && subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
			return true
		}
	}
	return false
}

func WithAgent(ctx context.Context, agent string) context.Context {
	return context.WithValue(ctx, agentKey, agent)
}

// GetAgent returns the authenticated agent, or "" outside /api.
func GetAgent(ctx context.Context) string {
	if agent, ok := ctx.Value(agentKey).(string); ok {
		return agent
	}
	return ""
}
