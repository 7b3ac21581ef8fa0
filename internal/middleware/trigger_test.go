package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/investcore/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerAuth(t *testing.T) {
	tokenHash, err := hash.Token("job-secret")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		tokenHash  string
		token      string
		wantStatus int
	}{
		{name: "valid token", tokenHash: tokenHash, token: "job-secret", wantStatus: http.StatusOK},
		{name: "wrong token", tokenHash: tokenHash, token: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing token", tokenHash: tokenHash, token: "", wantStatus: http.StatusUnauthorized},
		{name: "unconfigured hash rejects everything", tokenHash: "", token: "job-secret", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := TriggerAuth(tt.tokenHash)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/jobs/daily_profit/run", nil)
			if tt.token != "" {
				req.Header.Set(TriggerTokenHeader, tt.token)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
