package fanout

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-push-fanout/internal/credential"
	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/pushsender"
)

type EnvelopeBuilder func(token domain.DeliveryToken) pushsender.Envelope

type Dispatcher struct {
	sender      pushsender.Sender
	sendTimeout time.Duration
	concurrency int
}

func NewDispatcher(sender pushsender.Sender, sendTimeout time.Duration, concurrency int) *Dispatcher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Dispatcher{
		sender:      sender,
		sendTimeout: sendTimeout,
		concurrency: concurrency,
	}
}

// Dispatch attempts every token once and returns one outcome per token, in token order.
// A failing token never stops the others.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []domain.DeliveryToken, build EnvelopeBuilder, creds credential.TokenProvider) []domain.DeliveryOutcome {
	outcomes := make([]domain.DeliveryOutcome, len(tokens))

	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, token := range tokens {
		g.Go(func() error {
			outcomes[i] = d.deliver(ctx, token, build, creds)
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

func (d *Dispatcher) deliver(ctx context.Context, token domain.DeliveryToken, build EnvelopeBuilder, creds credential.TokenProvider) domain.DeliveryOutcome {
	sendCtx := ctx
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	accessToken, err := creds.AccessToken(sendCtx)
	if err != nil {
		slog.WarnContext(ctx, "credential exchange failed for delivery",
			slog.String("event", "fanout.delivery.credential_fail"),
			slog.String("user_id", token.UserID),
			slog.String("error", err.Error()),
		)
		return domain.Failed(token, err.Error())
	}

	if err := d.sender.Send(sendCtx, accessToken, build(token)); err != nil {
		slog.WarnContext(ctx, "push delivery failed",
			slog.String("event", "fanout.delivery.fail"),
			slog.String("user_id", token.UserID),
			slog.String("error", err.Error()),
		)
		return domain.Failed(token, err.Error())
	}

	slog.DebugContext(ctx, "push delivered",
		slog.String("user_id", token.UserID),
	)
	return domain.Delivered(token)
}
