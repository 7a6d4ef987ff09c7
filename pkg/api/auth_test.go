package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireBearer(t *testing.T) {
	f := newTestServer("s3cret")

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusForbidden},
		{"correct token", "Bearer s3cret", http.StatusOK},
	}

	router := f.server.Router()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireBearerDisabledWithoutSecret(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/jobs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthSkipsAuth(t *testing.T) {
	f := newTestServer("s3cret")
	w := f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "copymill")
}

func TestExtractAuthor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	assert.Equal(t, "alice", extractAuthor(makeCtx(map[string]string{"X-Forwarded-User": "alice"})))
	assert.Equal(t, "bob@example.com", extractAuthor(makeCtx(map[string]string{"X-Forwarded-Email": "bob@example.com"})))
	assert.Equal(t, "alice", extractAuthor(makeCtx(map[string]string{
		"X-Forwarded-User":  "alice",
		"X-Forwarded-Email": "bob@example.com",
	})))
	assert.Equal(t, "api-client", extractAuthor(makeCtx(nil)))
}
