package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"idscan/internal/config"
	"idscan/internal/handler"
	"idscan/internal/router"
	"idscan/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(env string) (*gin.Engine, *mocks.MockAnalysisService) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: env, ExposeErrors: true},
		Upload: config.UploadConfig{Dir: "uploads", MaxMemoryMB: 8},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	svc := new(mocks.MockAnalysisService)
	store := new(mocks.MockUploadStore)
	store.On("Ping", mock.Anything).Return(nil)
	return router.Setup(cfg, handler.NewAnalyzeHandler(svc, true), handler.NewHealthHandler(store)), svc
}

func TestRouter_AnalyzeIDWithoutFile(t *testing.T) {
	r, svc := setupRouter("development")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/analyze-id", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	svc.AssertNotCalled(t, "AnalyzeID", mock.Anything, mock.Anything)
}

func TestRouter_AnalyzeIDRejectsGet(t *testing.T) {
	r, _ := setupRouter("development")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/analyze-id", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_HealthRoutes(t *testing.T) {
	r, _ := setupRouter("development")

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_SwaggerOnlyOutsideProduction(t *testing.T) {
	r, _ := setupRouter("development")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/analyze-id")

	r, _ = setupRouter("production")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/swagger/doc.json", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
