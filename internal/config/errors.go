package config

import "errors"

var (
	ErrInvalidRedisDB           = errors.New("REDIS_DB must be a valid integer")
	ErrServiceAccountMissing    = errors.New("FIREBASE_SERVICE_ACCOUNT is required")
	ErrInvalidServiceAccount    = errors.New("FIREBASE_SERVICE_ACCOUNT must be valid service account JSON")
	ErrUnknownDataStoreBackend  = errors.New("DATA_STORE_BACKEND must be one of supabase, postgres")
	ErrSupabaseURLMissing       = errors.New("SUPABASE_URL is required for the supabase backend")
	ErrSupabaseKeyMissing       = errors.New("SUPABASE_SERVICE_ROLE_KEY is required for the supabase backend")
	ErrDatabaseURLMissing       = errors.New("DATABASE_URL is required for the postgres backend")
	ErrSharedStrategyNeedsRedis = errors.New("CREDENTIAL_STRATEGY=shared requires REDIS_ADDR")
)
