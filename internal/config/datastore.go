package config

import (
	"os"
	"strings"
)

const (
	dataStoreBackendEnv       = "DATA_STORE_BACKEND"
	supabaseURLEnv            = "SUPABASE_URL"
	supabaseServiceRoleKeyEnv = "SUPABASE_SERVICE_ROLE_KEY"
	databaseURLEnv            = "DATABASE_URL"
)

type DataStoreBackend string

const (
	DataStoreBackendSupabase DataStoreBackend = "supabase"
	DataStoreBackendPostgres DataStoreBackend = "postgres"
)

type DataStoreConfig struct {
	Backend                DataStoreBackend
	SupabaseURL            string
	SupabaseServiceRoleKey string
	DatabaseURL            string
}

func LoadDataStoreConfig() (*DataStoreConfig, error) {
	backend := DataStoreBackend(strings.ToLower(os.Getenv(dataStoreBackendEnv)))
	if backend == "" {
		backend = DataStoreBackendSupabase
	}

	if backend != DataStoreBackendSupabase && backend != DataStoreBackendPostgres {
		return nil, ErrUnknownDataStoreBackend
	}

	return &DataStoreConfig{
		Backend:                backend,
		SupabaseURL:            strings.TrimRight(os.Getenv(supabaseURLEnv), "/"),
		SupabaseServiceRoleKey: os.Getenv(supabaseServiceRoleKeyEnv),
		DatabaseURL:            os.Getenv(databaseURLEnv),
	}, nil
}
