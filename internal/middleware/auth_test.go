package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyAuth(t *testing.T) {
	cfg := config.AuthConfig{
		APIKeys: []string{"apitest", "testkey123"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})
	handler := APIKeyAuth(cfg)(next)

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
		expectedError  string
	}{
		{name: "first key", apiKey: "apitest", expectedStatus: http.StatusOK},
		{name: "second key", apiKey: "testkey123", expectedStatus: http.StatusOK},
		{name: "missing key", apiKey: "", expectedStatus: http.StatusUnauthorized, expectedError: "API key required"},
		{name: "unknown key", apiKey: "wrongkey", expectedStatus: http.StatusForbidden, expectedError: "invalid API key"},
		{name: "prefix of a key", apiKey: "api", expectedStatus: http.StatusForbidden, expectedError: "invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "success", w.Body.String())
				return
			}

			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedError, body["error"])
		})
	}
}
