package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/greencart/storefront/internal/config"
	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
	"github.com/greencart/storefront/internal/server/http/handlers"
	testhelpers "github.com/greencart/storefront/internal/test"
)

func testConfig() *config.Config {
	return &config.Config{AllowedOrigins: []string{"http://localhost:5173"}}
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.StorefrontFacadeStub{}
	engine := Setup(facade, testConfig(), logger)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/product/list", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public product list, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/getkey", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for getkey, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/order/user", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for user orders, got %d", resp.Code)
	}
}

func TestSetupRejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.StorefrontFacadeStub{}, testConfig(), logger)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/order/user", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	// A customer token must not open seller routes.
	req := httptest.NewRequest(http.MethodGet, "/api/order/seller", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for user token on seller route, got %d", resp.Code)
	}
}

func TestSetupSellerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.StorefrontFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{ParseFn: func(string) (int64, pkgAuth.Audience, error) {
			return 0, pkgAuth.AudienceSeller, nil
		}},
	}
	engine := Setup(facade, testConfig(), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/order/seller", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for seller orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/seller/is-auth", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for seller is-auth, got %d", resp.Code)
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
