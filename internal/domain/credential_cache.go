package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=credential_cache.go -destination=credential_cache_mock.go -package=domain

type CredentialCache interface {
	GetCredential(ctx context.Context, key string) (*AccessCredential, error)
	SaveCredential(ctx context.Context, key string, credential *AccessCredential, ttl time.Duration) error
}
