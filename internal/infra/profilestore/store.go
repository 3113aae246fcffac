package profilestore

import (
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-push-fanout/internal/config"
	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

// New builds the provider repository for the configured backend. The returned cleanup is never nil.
func New(cfg *config.DataStoreConfig) (domain.ProviderRepository, func() error, error) {
	switch cfg.Backend {
	case config.DataStoreBackendPostgres:
		store, err := OpenPostgresStore(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("provider store initialized", slog.String("backend", string(cfg.Backend)))
		return store, store.Close, nil

	case config.DataStoreBackendSupabase, "":
		slog.Info("provider store initialized",
			slog.String("backend", string(config.DataStoreBackendSupabase)),
			slog.String("url", cfg.SupabaseURL),
		)
		return NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown data store backend: %q", cfg.Backend)
	}
}
