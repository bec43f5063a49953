package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/config"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/domain"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:routerdb?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.User{}, &domain.Strategy{}, &domain.Analysis{}, &domain.UserEvent{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		APIBasePath:    "/api",
		RequestTimeout: 5 * time.Second,
		RateRPS:        100,
		RateBurst:      50,
		CORS:           config.CORSConfig{AllowedOrigins: nil}, // AllowAllOrigins branch
		Security:       config.SecurityConfig{EnableHSTS: false},
		OTEL:           config.OTELConfig{ServiceName: "test-svc"},
	}
}

func TestRegisterRoutes_HealthMetricsAndFallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), testConfig())

	// Health answers the standard envelope.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health: status %d body=%s", w.Code, w.Body.String())
	}
	var env map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("health envelope: %v", err)
	}
	if env["error"] != nil {
		t.Fatalf("health error: %v", env["error"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing security headers")
	}

	// Prometheus endpoint is mounted.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("metrics: status %d", w.Code)
	}

	// Unknown routes answer the envelope, not Gin's default 404.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("noroute: status %d", w.Code)
	}
	env = map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("noroute envelope: %v body=%s", err, w.Body.String())
	}
	if env["error"] != "route not found" {
		t.Fatalf("unexpected noroute message: %v", env["error"])
	}

	// Wrong method on a known route answers 405.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/strategies", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("nomethod: status %d", w.Code)
	}
}

func TestRegisterRoutes_CreateAndAliasRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), testConfig())

	body := `{"telegram_user_id":"42","coin":"BTC","strategy_name":"Breakout"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis_results", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create analysis: status %d body=%s", w.Code, w.Body.String())
	}

	// The alias route must see the same data.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analyses?telegram_user_id=42", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("alias list: status %d", w.Code)
	}
	var env map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("alias envelope: %v", err)
	}
	if items, ok := env["data"].([]any); !ok || len(items) != 1 {
		t.Fatalf("alias route did not see the row: %v", env["data"])
	}

	// The stats alias resolves too.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/42", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("stats alias: status %d body=%s", w.Code, w.Body.String())
	}
}

func TestRegisterRoutes_BodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), testConfig())

	huge := `{"telegram_user_id":"42","name":"` + strings.Repeat("x", 2<<20) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/strategies", strings.NewReader(huge))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("oversized body should fail binding, got %d", w.Code)
	}
}
