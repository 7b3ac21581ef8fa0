package middleware

import (
	"net/http"

	"github.com/a2sh3r/investcore/internal/hash"
)

const TriggerTokenHeader = "X-Trigger-Token"

// TriggerAuth gates the scheduler-trigger and recovery surface with the
// shared job token. The token arrives as an explicit header and is compared
// against a bcrypt hash from config; the services behind this middleware
// perform no authentication of their own.
func TriggerAuth(tokenHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TriggerTokenHeader)
			if !hash.CheckToken(tokenHash, token) {
				http.Error(w, "invalid trigger token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
