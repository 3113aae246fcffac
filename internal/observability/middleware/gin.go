package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-push-fanout/internal/observability/logging"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/metrics"
)

// unmatchedRoute labels requests no route handled, such as preflights and 404s.
const unmatchedRoute = "unmatched"

type GinConfig struct {
	SkipPaths  []string
	Module     logging.Module
	TracerName string
	// JobNameResolver names the unit of work for queue-delivered requests. Optional.
	JobNameResolver func(c *gin.Context) string
	HTTPMetrics     *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}
	tracer := otel.Tracer(cfg.TracerName)

	return func(c *gin.Context) {
		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.GetHeader(logging.RequestIDHeader))
		c.Header(logging.RequestIDHeader, requestID)

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx = logging.WithRequestID(ctx, requestID)
		if cfg.Module != "" {
			ctx = logging.WithModule(ctx, cfg.Module)
		}

		route := routeLabel(c)

		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		attrs := []attribute.KeyValue{
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("request.id", requestID),
		}
		jobName := ""
		if cfg.JobNameResolver != nil {
			jobName = cfg.JobNameResolver(c)
			if jobName != "" {
				attrs = append(attrs, attribute.String("job.name", jobName))
			}
		}

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}

		cfg.HTTPMetrics.RecordRequest(ctx, c.Request.Method, route, status, duration)

		logAttrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		}
		if jobName != "" {
			logAttrs = append(logAttrs, slog.String("job_name", jobName))
		}

		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "request completed", logAttrs...)
		case status >= 400:
			slog.WarnContext(ctx, "request completed", logAttrs...)
		default:
			slog.InfoContext(ctx, "request completed", logAttrs...)
		}
	}
}

func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}
