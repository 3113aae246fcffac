package domain

import "context"

//go:generate mockgen -source=provider_repository.go -destination=provider_repository_mock.go -package=domain

// ProviderRepository is the read-only view of the marketplace data store.
type ProviderRepository interface {
	FindProvidersByServiceType(ctx context.Context, serviceType string) ([]Provider, error)
	FindTokensByUserIDs(ctx context.Context, userIDs []string) ([]DeliveryToken, error)
	Ping(ctx context.Context) error
}
