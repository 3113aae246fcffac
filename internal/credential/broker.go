package credential

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/oauth2"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/metrics"
)

type Strategy string

const (
	StrategyPerDelivery   Strategy = "per_delivery"
	StrategyPerInvocation Strategy = "per_invocation"
	StrategyShared        Strategy = "shared"

	cacheSkew = time.Minute
)

// TokenProvider hands out a bearer token for one delivery.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

type Broker struct {
	strategy  Strategy
	exchanger Exchanger
	cache     domain.CredentialCache
	cacheKey  string
	metrics   *metrics.FanoutMetrics
	timeout   time.Duration
	now       func() time.Time
}

type BrokerOption func(*Broker)

// WithCache enables the shared strategy; cacheKey scopes the entry, usually the client email.
func WithCache(cache domain.CredentialCache, cacheKey string) BrokerOption {
	return func(b *Broker) {
		b.cache = cache
		b.cacheKey = cacheKey
	}
}

func WithMetrics(m *metrics.FanoutMetrics) BrokerOption {
	return func(b *Broker) {
		b.metrics = m
	}
}

// WithFetchTimeout bounds a credential fetch made on behalf of a whole run. Per-delivery
// exchanges already run under the caller's send deadline.
func WithFetchTimeout(d time.Duration) BrokerOption {
	return func(b *Broker) {
		b.timeout = d
	}
}

func WithBrokerClock(now func() time.Time) BrokerOption {
	return func(b *Broker) {
		b.now = now
	}
}

func NewBroker(strategy Strategy, exchanger Exchanger, opts ...BrokerOption) *Broker {
	b := &Broker{
		strategy:  strategy,
		exchanger: exchanger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.strategy == StrategyShared && b.cache == nil {
		slog.Warn("shared credential strategy without cache, falling back to per_invocation")
		b.strategy = StrategyPerInvocation
	}
	if b.strategy == "" {
		b.strategy = StrategyPerInvocation
	}
	return b
}

func (b *Broker) Strategy() Strategy {
	return b.strategy
}

// ForRun returns the token provider used for one fanout run.
func (b *Broker) ForRun(ctx context.Context) TokenProvider {
	switch b.strategy {
	case StrategyPerDelivery:
		return &perDeliveryProvider{broker: b}
	case StrategyShared:
		return newReusingProvider(ctx, b.timeout, b.sharedCredential)
	default:
		return newReusingProvider(ctx, b.timeout, b.exchange)
	}
}

func (b *Broker) exchange(ctx context.Context) (*domain.AccessCredential, error) {
	start := time.Now()
	cred, err := b.exchanger.Exchange(ctx)
	b.metrics.RecordCredentialExchange(ctx, string(b.strategy), time.Since(start), err == nil)
	return cred, err
}

func (b *Broker) sharedCredential(ctx context.Context) (*domain.AccessCredential, error) {
	cached, err := b.cache.GetCredential(ctx, b.cacheKey)
	switch {
	case err == nil && cached.Valid(b.now().Add(cacheSkew)):
		return cached, nil
	case err != nil && !errors.Is(err, domain.ErrCredentialNotFound):
		slog.WarnContext(ctx, "credential cache read failed, exchanging directly",
			slog.String("error", err.Error()),
		)
	}

	cred, err := b.exchange(ctx)
	if err != nil {
		return nil, err
	}

	if ttl := cred.TTL(b.now(), cacheSkew); ttl > 0 {
		if err := b.cache.SaveCredential(ctx, b.cacheKey, cred, ttl); err != nil {
			slog.WarnContext(ctx, "credential cache write failed",
				slog.String("error", err.Error()),
			)
		}
	}

	return cred, nil
}

type perDeliveryProvider struct {
	broker *Broker
}

func (p *perDeliveryProvider) AccessToken(ctx context.Context) (string, error) {
	cred, err := p.broker.exchange(ctx)
	if err != nil {
		return "", err
	}
	return cred.AccessToken, nil
}

// reusingProvider memoizes a credential for the lifetime of a run through oauth2.ReuseTokenSource.
// Failed fetches are not memoized, so the next delivery retries.
type reusingProvider struct {
	source oauth2.TokenSource
}

func newReusingProvider(ctx context.Context, timeout time.Duration, fetch func(context.Context) (*domain.AccessCredential, error)) *reusingProvider {
	return &reusingProvider{
		source: oauth2.ReuseTokenSource(nil, &credentialSource{ctx: ctx, timeout: timeout, fetch: fetch}),
	}
}

func (p *reusingProvider) AccessToken(_ context.Context) (string, error) {
	tok, err := p.source.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// credentialSource adapts a credential fetch to oauth2.TokenSource, which carries no context of its own.
type credentialSource struct {
	ctx     context.Context
	timeout time.Duration
	fetch   func(context.Context) (*domain.AccessCredential, error)
}

func (s *credentialSource) Token() (*oauth2.Token, error) {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cred, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: cred.AccessToken,
		TokenType:   cred.TokenType,
		Expiry:      cred.ExpiresAt,
	}, nil
}
