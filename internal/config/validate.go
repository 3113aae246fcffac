package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

func ValidateForRun(cfg *Config) error {
	var errs []error

	if cfg.Firebase == nil || cfg.Firebase.ServiceAccountJSON == "" {
		errs = append(errs, ErrServiceAccountMissing)
	} else {
		var probe struct {
			ProjectID   string `json:"project_id"`
			ClientEmail string `json:"client_email"`
			PrivateKey  string `json:"private_key"`
		}
		if err := json.Unmarshal([]byte(cfg.Firebase.ServiceAccountJSON), &probe); err != nil ||
			probe.ProjectID == "" || probe.ClientEmail == "" || probe.PrivateKey == "" {
			errs = append(errs, ErrInvalidServiceAccount)
		}
	}

	if cfg.DataStore != nil {
		switch cfg.DataStore.Backend {
		case DataStoreBackendSupabase:
			if cfg.DataStore.SupabaseURL == "" {
				errs = append(errs, ErrSupabaseURLMissing)
			}
			if cfg.DataStore.SupabaseServiceRoleKey == "" {
				errs = append(errs, ErrSupabaseKeyMissing)
			}
		case DataStoreBackendPostgres:
			if cfg.DataStore.DatabaseURL == "" {
				errs = append(errs, ErrDatabaseURLMissing)
			}
		}
	}

	if cfg.Fanout != nil && cfg.Fanout.CredentialStrategy == CredentialStrategyShared && !cfg.Redis.Enabled() {
		errs = append(errs, ErrSharedStrategyNeedsRedis)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
