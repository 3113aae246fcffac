package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const fanoutTracerName = "github.com/KasumiMercury/primind-push-fanout/internal/service/fanout"

func FanoutTracer() trace.Tracer {
	return otel.Tracer(fanoutTracerName)
}

func StartRunSpan(ctx context.Context, runID, requestID, serviceType string) (context.Context, trace.Span) {
	return FanoutTracer().Start(ctx, "fanout.run",
		trace.WithAttributes(
			attribute.String("fanout.run_id", runID),
			attribute.String("fanout.request_id", requestID),
			attribute.String("fanout.service_type", serviceType),
		),
	)
}

func StartStageSpan(ctx context.Context, stage string) (context.Context, trace.Span) {
	return FanoutTracer().Start(ctx, "fanout.stage."+stage)
}

func StartCredentialExchangeSpan(ctx context.Context, tokenURI string) (context.Context, trace.Span) {
	return FanoutTracer().Start(ctx, "fanout.credential.exchange",
		trace.WithAttributes(
			attribute.String("url", tokenURI),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return FanoutTracer().Start(ctx, "fanout.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordRunResult(span trace.Span, stage, shortCircuit string, eligible, tokens, succeeded, failed int, err error) {
	span.SetAttributes(
		attribute.String("fanout.stage", stage),
		attribute.String("fanout.short_circuit", shortCircuit),
		attribute.Int("fanout.eligible_recipients", eligible),
		attribute.Int("fanout.total_tokens", tokens),
		attribute.Int("fanout.succeeded", succeeded),
		attribute.Int("fanout.failed", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
