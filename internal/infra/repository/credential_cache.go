package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

const (
	credentialKeyPrefix = "fanout:credential:"
)

type credentialRecord struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	CachedAt    time.Time `json:"cached_at"`
}

type credentialCache struct {
	client *redis.Client
}

func NewCredentialCache(client *redis.Client) domain.CredentialCache {
	return &credentialCache{
		client: client,
	}
}

func (r *credentialCache) GetCredential(ctx context.Context, key string) (*domain.AccessCredential, error) {
	data, err := r.client.Get(ctx, credentialKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}

	var record credentialRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidCredentialData
	}

	return &domain.AccessCredential{
		AccessToken: record.AccessToken,
		TokenType:   record.TokenType,
		ExpiresAt:   record.ExpiresAt,
	}, nil
}

func (r *credentialCache) SaveCredential(ctx context.Context, key string, credential *domain.AccessCredential, ttl time.Duration) error {
	if credential == nil || credential.AccessToken == "" || ttl <= 0 {
		return ErrInvalidCredentialData
	}

	record := credentialRecord{
		AccessToken: credential.AccessToken,
		TokenType:   credential.TokenType,
		ExpiresAt:   credential.ExpiresAt,
		CachedAt:    time.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidCredentialData
	}

	if err := r.client.Set(ctx, credentialKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}
	return nil
}
