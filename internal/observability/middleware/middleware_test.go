package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KasumiMercury/primind-push-fanout/internal/observability/logging"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCORSRouter() *gin.Engine {
	r := gin.New()
	r.Use(CORS(CORSConfig{
		AllowOrigin:  "*",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))
	r.POST("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	r := newCORSRouter()

	tests := []struct {
		name       string
		method     string
		wantStatus int
		wantEmpty  bool
	}{
		{name: "preflight", method: http.MethodOptions, wantStatus: http.StatusOK, wantEmpty: true},
		{name: "post", method: http.MethodPost, wantStatus: http.StatusOK, wantEmpty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/echo", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("allow origin: got %q, want %q", got, "*")
			}
			if got := w.Header().Get("Access-Control-Allow-Headers"); got != "authorization, x-client-info, apikey, content-type" {
				t.Errorf("allow headers: got %q", got)
			}
			if tt.wantEmpty && w.Body.Len() != 0 {
				t.Errorf("expected empty body, got %q", w.Body.String())
			}
		})
	}
}

func TestPanicRecoveryGin(t *testing.T) {
	r := gin.New()
	r.Use(PanicRecoveryGin())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestGinPropagatesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(Gin(GinConfig{Module: logging.Module("test"), TracerName: "test"}))

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = logging.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	incoming := uuid.NewString()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(logging.RequestIDHeader, incoming)
	r.ServeHTTP(w, req)

	if seen != incoming {
		t.Errorf("request id in context: got %q, want %q", seen, incoming)
	}
	if got := w.Header().Get(logging.RequestIDHeader); got != incoming {
		t.Errorf("request id header: got %q, want %q", got, incoming)
	}
}

func TestGinRouteLabelIsBounded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		t.Fatalf("failed to create http metrics: %v", err)
	}

	r := gin.New()
	r.Use(Gin(GinConfig{TracerName: "test", HTTPMetrics: httpMetrics}))
	r.POST("/api/v1/notifications/fanout", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/v1/notifications/fanout", nil),
		httptest.NewRequest(http.MethodOptions, "/api/v1/notifications/fanout", nil),
		httptest.NewRequest(http.MethodGet, "/random/a1b2c3", nil),
		httptest.NewRequest(http.MethodGet, "/random/d4e5f6", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	routes := map[string]struct{}{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http_server_requests_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value("http.route")
				routes[route.AsString()] = struct{}{}
			}
		}
	}

	got := make([]string, 0, len(routes))
	for route := range routes {
		got = append(got, route)
	}
	sort.Strings(got)

	want := []string{"/api/v1/notifications/fanout", "unmatched"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("route labels: got %v, want %v", got, want)
	}
}
