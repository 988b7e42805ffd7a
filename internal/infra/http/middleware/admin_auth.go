package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type operatorKey struct{}

var adminAuthRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "admin_auth_rejected_total",
		Help: "Back-office requests rejected by the token check",
	},
	[]string{"reason"},
)

// Operator is the back-office user behind an admin request.
type Operator struct {
	Subject string
}

// AdminJWT admits requests carrying an HMAC bearer token with a subject and an expiry.
// An empty secret closes the back office entirely.
func AdminJWT(secret string) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	)
	key := func(*jwt.Token) (any, error) { return []byte(secret), nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				rejectAdmin(w, "disabled", "admin access disabled")
				return
			}

			raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				rejectAdmin(w, "missing", "missing authorization header")
				return
			}

			var claims jwt.RegisteredClaims
			if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), &claims, key); err != nil {
				rejectAdmin(w, "invalid", "invalid token")
				return
			}
			if claims.Subject == "" {
				rejectAdmin(w, "no_subject", "token has no subject")
				return
			}

			ctx := context.WithValue(r.Context(), operatorKey{}, Operator{Subject: claims.Subject})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext returns the operator admitted by AdminJWT.
func OperatorFromContext(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(operatorKey{}).(Operator)
	return op, ok
}

func rejectAdmin(w http.ResponseWriter, reason, msg string) {
	adminAuthRejectedTotal.WithLabelValues(reason).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"code":    "UNAUTHORIZED",
		"message": msg,
	})
}
