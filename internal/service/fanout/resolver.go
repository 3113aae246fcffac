package fanout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

type Resolver struct {
	repo    domain.ProviderRepository
	timeout time.Duration
}

func NewResolver(repo domain.ProviderRepository, timeout time.Duration) *Resolver {
	return &Resolver{
		repo:    repo,
		timeout: timeout,
	}
}

// ResolveRecipients returns how many providers matched the category and which of them may be notified.
// The originator is never eligible and duplicate rows for one user collapse.
func (r *Resolver) ResolveRecipients(ctx context.Context, serviceType, originatorID string) (int, []domain.Provider, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	providers, err := r.repo.FindProvidersByServiceType(ctx, serviceType)
	if err != nil {
		return 0, nil, asDataStoreError("find providers", err)
	}

	seen := make(map[string]struct{}, len(providers))
	eligible := make([]domain.Provider, 0, len(providers))
	for _, p := range providers {
		if p.UserID == originatorID {
			continue
		}
		if _, dup := seen[p.UserID]; dup {
			continue
		}
		seen[p.UserID] = struct{}{}
		eligible = append(eligible, p)
	}

	return len(providers), eligible, nil
}

func (r *Resolver) LookupTokens(ctx context.Context, recipients []domain.Provider) ([]domain.DeliveryToken, error) {
	if len(recipients) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tokens, err := r.repo.FindTokensByUserIDs(ctx, domain.ProviderIDs(recipients))
	if err != nil {
		return nil, asDataStoreError("find tokens", err)
	}

	return tokens, nil
}

func (r *Resolver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func asDataStoreError(op string, err error) error {
	if errors.Is(err, domain.ErrDataStore) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataStore, err)
}
