package credential

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

func TestBrokerPerDeliveryExchangesEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exchanger := NewMockExchanger(ctrl)
	exchanger.EXPECT().Exchange(gomock.Any()).
		Return(&domain.AccessCredential{AccessToken: "tok"}, nil).
		Times(3)

	provider := NewBroker(StrategyPerDelivery, exchanger).ForRun(context.Background())

	for i := 0; i < 3; i++ {
		tok, err := provider.AccessToken(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok != "tok" {
			t.Errorf("token: got %q, want %q", tok, "tok")
		}
	}
}

func TestBrokerPerInvocationReusesWithinRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exchanger := NewMockExchanger(ctrl)
	exchanger.EXPECT().Exchange(gomock.Any()).
		Return(&domain.AccessCredential{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil).
		Times(2)

	broker := NewBroker(StrategyPerInvocation, exchanger)

	for run := 0; run < 2; run++ {
		provider := broker.ForRun(context.Background())
		for i := 0; i < 5; i++ {
			if _, err := provider.AccessToken(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}
}

func TestBrokerPerInvocationRetriesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exchanger := NewMockExchanger(ctrl)
	gomock.InOrder(
		exchanger.EXPECT().Exchange(gomock.Any()).Return(nil, domain.ErrCredentialExchange),
		exchanger.EXPECT().Exchange(gomock.Any()).Return(&domain.AccessCredential{AccessToken: "tok"}, nil),
	)

	provider := NewBroker(StrategyPerInvocation, exchanger).ForRun(context.Background())

	if _, err := provider.AccessToken(context.Background()); !errors.Is(err, domain.ErrCredentialExchange) {
		t.Fatalf("first call: expected ErrCredentialExchange, got %v", err)
	}

	tok, err := provider.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("second call: unexpected error: %v", err)
	}
	if tok != "tok" {
		t.Errorf("token: got %q, want %q", tok, "tok")
	}
}

func TestBrokerSharedUsesCache(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	const key = "fanout@demo-project.iam.gserviceaccount.com"

	tests := []struct {
		name  string
		setup func(cache *domain.MockCredentialCache, exchanger *MockExchanger)
		want  string
	}{
		{
			name: "cache hit skips exchange",
			setup: func(cache *domain.MockCredentialCache, exchanger *MockExchanger) {
				cache.EXPECT().GetCredential(gomock.Any(), key).
					Return(&domain.AccessCredential{AccessToken: "cached", ExpiresAt: now.Add(30 * time.Minute)}, nil)
			},
			want: "cached",
		},
		{
			name: "cache miss exchanges and stores with skewed ttl",
			setup: func(cache *domain.MockCredentialCache, exchanger *MockExchanger) {
				fresh := &domain.AccessCredential{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour)}
				cache.EXPECT().GetCredential(gomock.Any(), key).Return(nil, domain.ErrCredentialNotFound)
				exchanger.EXPECT().Exchange(gomock.Any()).Return(fresh, nil)
				cache.EXPECT().SaveCredential(gomock.Any(), key, fresh, 59*time.Minute).Return(nil)
			},
			want: "fresh",
		},
		{
			name: "nearly expired entry is refreshed",
			setup: func(cache *domain.MockCredentialCache, exchanger *MockExchanger) {
				fresh := &domain.AccessCredential{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour)}
				cache.EXPECT().GetCredential(gomock.Any(), key).
					Return(&domain.AccessCredential{AccessToken: "stale", ExpiresAt: now.Add(30 * time.Second)}, nil)
				exchanger.EXPECT().Exchange(gomock.Any()).Return(fresh, nil)
				cache.EXPECT().SaveCredential(gomock.Any(), key, fresh, gomock.Any()).Return(nil)
			},
			want: "fresh",
		},
		{
			name: "cache errors fall back to exchange",
			setup: func(cache *domain.MockCredentialCache, exchanger *MockExchanger) {
				fresh := &domain.AccessCredential{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour)}
				cache.EXPECT().GetCredential(gomock.Any(), key).Return(nil, errors.New("redis down"))
				exchanger.EXPECT().Exchange(gomock.Any()).Return(fresh, nil)
				cache.EXPECT().SaveCredential(gomock.Any(), key, fresh, gomock.Any()).Return(errors.New("redis down"))
			},
			want: "fresh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cache := domain.NewMockCredentialCache(ctrl)
			exchanger := NewMockExchanger(ctrl)
			tt.setup(cache, exchanger)

			broker := NewBroker(StrategyShared, exchanger,
				WithCache(cache, key),
				WithBrokerClock(func() time.Time { return now }),
			)

			tok, err := broker.ForRun(context.Background()).AccessToken(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok != tt.want {
				t.Errorf("token: got %q, want %q", tok, tt.want)
			}
		})
	}
}

func TestNewBrokerSharedWithoutCacheFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broker := NewBroker(StrategyShared, NewMockExchanger(ctrl))
	if broker.Strategy() != StrategyPerInvocation {
		t.Errorf("strategy: got %q, want %q", broker.Strategy(), StrategyPerInvocation)
	}
}

func TestBrokerRunScopedFetchIsBounded(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
	}{
		{name: "per invocation", strategy: StrategyPerInvocation},
		{name: "shared", strategy: StrategyShared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			exchanger := NewMockExchanger(ctrl)
			exchanger.EXPECT().Exchange(gomock.Any()).
				DoAndReturn(func(ctx context.Context) (*domain.AccessCredential, error) {
					<-ctx.Done()
					return nil, ctx.Err()
				})

			cache := domain.NewMockCredentialCache(ctrl)
			cache.EXPECT().GetCredential(gomock.Any(), gomock.Any()).
				Return(nil, domain.ErrCredentialNotFound).
				AnyTimes()

			broker := NewBroker(tt.strategy, exchanger,
				WithCache(cache, "fanout@demo-project.iam.gserviceaccount.com"),
				WithFetchTimeout(20*time.Millisecond),
			)

			start := time.Now()
			_, err := broker.ForRun(context.Background()).AccessToken(context.Background())
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Fatalf("expected deadline exceeded, got %v", err)
			}
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Errorf("fetch outlived its timeout: took %v", elapsed)
			}
		})
	}
}
