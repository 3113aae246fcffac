package fanout

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-push-fanout/internal/credential"
	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/pushsender"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/metrics"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/tracing"
)

type Service struct {
	resolver     *Resolver
	dispatcher   *Dispatcher
	broker       *credential.Broker
	presentation Presentation
	taskQueue    taskqueue.TaskQueue
	recorder     domain.FanoutResultRecorder
	metrics      *metrics.FanoutMetrics
}

// NewService wires the pipeline. taskQueue, recorder and fanoutMetrics may be nil.
func NewService(
	resolver *Resolver,
	dispatcher *Dispatcher,
	broker *credential.Broker,
	presentation Presentation,
	taskQueue taskqueue.TaskQueue,
	recorder domain.FanoutResultRecorder,
	fanoutMetrics *metrics.FanoutMetrics,
) *Service {
	return &Service{
		resolver:     resolver,
		dispatcher:   dispatcher,
		broker:       broker,
		presentation: presentation,
		taskQueue:    taskQueue,
		recorder:     recorder,
		metrics:      fanoutMetrics,
	}
}

// Run takes one event through resolution, token lookup and dispatch.
// The returned Result is never nil; a non-nil error means the run failed as a whole.
func (s *Service) Run(ctx context.Context, event domain.ServiceRequestEvent) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: newRunID(), Stage: StageReceived}

	ctx, span := tracing.StartRunSpan(ctx, result.RunID, event.RequestID, event.ServiceType)
	defer span.End()
	defer s.finish(ctx, span, event, result, start)

	if err := event.Validate(); err != nil {
		return s.fail(ctx, result, err)
	}

	slog.InfoContext(ctx, "fanout run started",
		slog.String("event", "fanout.run.start"),
		slog.String("run_id", result.RunID),
		slog.String("request_id", event.RequestID),
		slog.String("service_type", event.ServiceType),
	)

	stageCtx, stageSpan := tracing.StartStageSpan(ctx, string(StageResolvedRecipients))
	matched, eligible, err := s.resolver.ResolveRecipients(stageCtx, event.ServiceType, event.OriginatorUserID)
	tracing.RecordError(stageSpan, err)
	stageSpan.End()
	if err != nil {
		return s.fail(ctx, result, err)
	}
	result.Stage = StageResolvedRecipients
	result.Report.EligibleRecipients = len(eligible)

	slog.InfoContext(ctx, "recipients resolved",
		slog.String("run_id", result.RunID),
		slog.Int("matched", matched),
		slog.Int("eligible", len(eligible)),
	)

	if matched == 0 {
		return s.shortCircuit(ctx, result, ShortCircuitNoProviders), nil
	}
	if len(eligible) == 0 {
		return s.shortCircuit(ctx, result, ShortCircuitNoEligible), nil
	}

	stageCtx, stageSpan = tracing.StartStageSpan(ctx, string(StageResolvedTokens))
	tokens, err := s.resolver.LookupTokens(stageCtx, eligible)
	tracing.RecordError(stageSpan, err)
	stageSpan.End()
	if err != nil {
		return s.fail(ctx, result, err)
	}
	result.Stage = StageResolvedTokens

	if len(tokens) == 0 {
		return s.shortCircuit(ctx, result, ShortCircuitNoTokens), nil
	}

	s.dispatch(ctx, event, tokens, len(eligible), result)

	if result.Report.Failed > 0 {
		s.enqueueRedrive(ctx, event, result)
	}

	return result, nil
}

// Redeliver dispatches an explicit token list for an event without resolving recipients.
// It never registers another redrive task.
func (s *Service) Redeliver(ctx context.Context, event domain.ServiceRequestEvent, tokens []domain.DeliveryToken) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: newRunID(), Stage: StageReceived}

	ctx, span := tracing.StartRunSpan(ctx, result.RunID, event.RequestID, event.ServiceType)
	defer span.End()
	defer s.finish(ctx, span, event, result, start)

	if err := event.Validate(); err != nil {
		return s.fail(ctx, result, err)
	}

	slog.InfoContext(ctx, "fanout redrive started",
		slog.String("event", "fanout.redrive.start"),
		slog.String("run_id", result.RunID),
		slog.String("request_id", event.RequestID),
		slog.Int("tokens", len(tokens)),
	)

	recipients := make(map[string]struct{}, len(tokens))
	usable := make([]domain.DeliveryToken, 0, len(tokens))
	for _, t := range tokens {
		if t.Token == "" {
			continue
		}
		recipients[t.UserID] = struct{}{}
		usable = append(usable, t)
	}
	result.Stage = StageResolvedTokens
	result.Report.EligibleRecipients = len(recipients)

	if len(usable) == 0 {
		return s.shortCircuit(ctx, result, ShortCircuitNoTokens), nil
	}

	s.dispatch(ctx, event, usable, len(recipients), result)

	return result, nil
}

func (s *Service) dispatch(ctx context.Context, event domain.ServiceRequestEvent, tokens []domain.DeliveryToken, eligible int, result *Result) {
	stageCtx, stageSpan := tracing.StartStageSpan(ctx, string(StageDispatched))
	outcomes := s.dispatcher.Dispatch(stageCtx, tokens, func(t domain.DeliveryToken) pushsender.Envelope {
		return BuildEnvelope(event, t, s.presentation)
	}, s.broker.ForRun(stageCtx))
	stageSpan.End()
	result.Stage = StageDispatched
	result.Outcomes = outcomes

	result.Report = domain.SummarizeOutcomes(eligible, outcomes)
	result.Stage = StageReportBuilt

	s.metrics.RecordDeliveries(ctx, result.Report.Succeeded, result.Report.Failed)

	slog.InfoContext(ctx, "notifications processed",
		slog.String("event", "fanout.run.report"),
		slog.String("run_id", result.RunID),
		slog.Int("total_providers", result.Report.EligibleRecipients),
		slog.Int("total_tokens", result.Report.TotalTokens),
		slog.Int("sent", result.Report.Succeeded),
		slog.Int("failed", result.Report.Failed),
	)
}

func (s *Service) shortCircuit(ctx context.Context, result *Result, reason ShortCircuitReason) *Result {
	result.Stage = StageShortCircuited
	result.ShortCircuit = reason

	slog.InfoContext(ctx, "fanout short-circuited",
		slog.String("event", "fanout.run.short_circuit"),
		slog.String("run_id", result.RunID),
		slog.String("reason", string(reason)),
	)
	return result
}

func (s *Service) fail(ctx context.Context, result *Result, err error) (*Result, error) {
	result.Stage = StageFailed
	result.Err = err

	slog.ErrorContext(ctx, "fanout run failed",
		slog.String("event", "fanout.run.fail"),
		slog.String("run_id", result.RunID),
		slog.String("error", err.Error()),
	)
	return result, err
}

func (s *Service) enqueueRedrive(ctx context.Context, event domain.ServiceRequestEvent, result *Result) {
	if s.taskQueue == nil {
		return
	}

	failed := domain.FailedTokens(result.Outcomes)
	tokens := make([]taskqueue.RedriveToken, 0, len(failed))
	for _, t := range failed {
		tokens = append(tokens, taskqueue.RedriveToken{UserID: t.UserID, Token: t.Token})
	}

	task := &taskqueue.RedriveTask{
		RunID: result.RunID,
		Event: taskqueue.RedriveEvent{
			RequestID:   event.RequestID,
			ServiceType: event.ServiceType,
			Location:    event.Location,
			Description: event.Description,
			UserID:      event.OriginatorUserID,
		},
		Tokens: tokens,
	}

	if _, err := s.taskQueue.RegisterRedrive(ctx, task); err != nil {
		s.metrics.RecordRedriveEnqueued(ctx, "error")
		slog.WarnContext(ctx, "failed to register redrive task",
			slog.String("event", "fanout.redrive.enqueue_fail"),
			slog.String("run_id", result.RunID),
			slog.Int("tokens", len(tokens)),
			slog.String("error", err.Error()),
		)
		return
	}

	s.metrics.RecordRedriveEnqueued(ctx, "success")
	slog.InfoContext(ctx, "redrive task registered",
		slog.String("event", "fanout.redrive.enqueued"),
		slog.String("run_id", result.RunID),
		slog.Int("tokens", len(tokens)),
	)
}

func (s *Service) finish(ctx context.Context, span trace.Span, event domain.ServiceRequestEvent, result *Result, start time.Time) {
	duration := time.Since(start)

	tracing.RecordRunResult(span, string(result.Stage), string(result.ShortCircuit),
		result.Report.EligibleRecipients, result.Report.TotalTokens,
		result.Report.Succeeded, result.Report.Failed, result.Err)
	s.metrics.RecordRun(ctx, string(result.Stage), string(result.ShortCircuit), duration)

	if s.recorder == nil {
		return
	}

	record := domain.FanoutRunRecord{
		RunID:        result.RunID,
		RequestID:    event.RequestID,
		ServiceType:  event.ServiceType,
		Stage:        string(result.Stage),
		ShortCircuit: string(result.ShortCircuit),
		Eligible:     result.Report.EligibleRecipients,
		Tokens:       result.Report.TotalTokens,
		Succeeded:    result.Report.Succeeded,
		Failed:       result.Report.Failed,
		Duration:     duration,
		RecordedAt:   time.Now(),
	}
	if err := s.recorder.RecordRun(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record fanout result",
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()),
		)
	}
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
