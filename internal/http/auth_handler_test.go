package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interview-scheduler/internal/service"
)

func newLoginRouter(t *testing.T, limiter service.LoginRateLimiter) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	authSvc := service.NewAuthService("secret", "admin", "admin123")
	handler := NewAuthHandler(zap.NewNop(), authSvc, limiter)
	r := gin.New()
	r.POST("/api/admin/login", handler.Login)
	return r, authSvc
}

func postLogin(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	r, authSvc := newLoginRouter(t, nil)

	rec := postLogin(t, r, map[string]any{"username": "admin", "password": "admin123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" || resp.Message != "Login successful" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	claims, err := authSvc.VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	r, _ := newLoginRouter(t, nil)

	rec := postLogin(t, r, map[string]any{"username": "admin", "password": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp struct {
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != http.StatusUnauthorized || resp.Detail == "" {
		t.Fatalf("unexpected error shape: %+v", resp)
	}
}

func TestLogin_RejectsMalformedBody(t *testing.T) {
	r, _ := newLoginRouter(t, nil)

	rec := postLogin(t, r, map[string]any{"username": "admin"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestLogin_RateLimited(t *testing.T) {
	r, _ := newLoginRouter(t, service.NewLoginRateLimiter(time.Minute, 2))

	for i := 0; i < 2; i++ {
		rec := postLogin(t, r, map[string]any{"username": "admin", "password": "wrong"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, rec.Code)
		}
	}
	rec := postLogin(t, r, map[string]any{"username": "admin", "password": "admin123"})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
