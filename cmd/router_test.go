package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-push-fanout/internal/config"
	"github.com/KasumiMercury/primind-push-fanout/internal/credential"
	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/handler"
	"github.com/KasumiMercury/primind-push-fanout/internal/health"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/pushsender"
	"github.com/KasumiMercury/primind-push-fanout/internal/service/fanout"
)

const (
	testAllowOrigin  = "*"
	testAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(ctrl *gomock.Controller) (*gin.Engine, *domain.MockProviderRepository) {
	repo := domain.NewMockProviderRepository(ctrl)
	exchanger := credential.NewMockExchanger(ctrl)
	exchanger.EXPECT().Exchange(gomock.Any()).
		Return(&domain.AccessCredential{AccessToken: "bearer", ExpiresAt: time.Now().Add(time.Hour)}, nil).
		AnyTimes()

	svc := fanout.NewService(
		fanout.NewResolver(repo, time.Second),
		fanout.NewDispatcher(pushsender.NewMockSender(ctrl), time.Second, 1),
		credential.NewBroker(credential.StrategyPerInvocation, exchanger),
		fanout.Presentation{Link: "/"},
		nil,
		nil,
		nil,
	)

	r := newRouter(routerDeps{
		cors:          config.CORSConfig{AllowOrigin: testAllowOrigin, AllowHeaders: testAllowHeaders},
		fanoutHandler: handler.NewFanoutHandler(svc),
		healthChecker: health.NewChecker(nil, repo, "test"),
	})
	return r, repo
}

func assertCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != testAllowOrigin {
		t.Errorf("Access-Control-Allow-Origin: got %q, want %q", got, testAllowOrigin)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != testAllowHeaders {
		t.Errorf("Access-Control-Allow-Headers: got %q, want %q", got, testAllowHeaders)
	}
}

func TestRouterPreflight(t *testing.T) {
	paths := []string{
		"/functions/v1/send-push-notification",
		"/api/v1/notifications/fanout",
		"/api/v1/notifications/redrive",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, repo := newTestRouter(ctrl)
			repo.EXPECT().FindProvidersByServiceType(gomock.Any(), gomock.Any()).Times(0)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Errorf("body: got %q, want empty", rec.Body.String())
			}
			assertCORS(t, rec)
		})
	}
}

func TestRouterErrorResponsesCarryCORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, repo := newTestRouter(ctrl)
	repo.EXPECT().FindProvidersByServiceType(gomock.Any(), "plumbing").
		Return(nil, errors.New("connection refused"))

	body := `{"requestId":"r1","serviceType":"plumbing","location":"Downtown","description":"leak","userId":"u1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/fanout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	assertCORS(t, rec)

	var resp handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Error, "connection refused") {
		t.Errorf("error: got %q", resp.Error)
	}
}

func TestRouterHealthCarriesCORS(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantStatus int
	}{
		{name: "live", path: "/health/live", wantStatus: http.StatusOK},
		{name: "ready", path: "/health/ready", wantStatus: http.StatusOK},
		{name: "not ready", path: "/health/ready", pingErr: errors.New("timeout"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, repo := newTestRouter(ctrl)
			repo.EXPECT().Ping(gomock.Any()).Return(tt.pingErr).AnyTimes()

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			assertCORS(t, rec)
		})
	}
}
