package profilestore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/tracing"
)

const (
	restPath           = "/rest/v1"
	providerProfile    = "provider"
	profilesTable      = "profiles"
	deliveryTokenTable = "fcm_tokens"
)

type profileResponse struct {
	UserID      string   `json:"user_id"`
	FullName    *string  `json:"full_name"`
	ServiceType []string `json:"service_type"`
}

type tokenResponse struct {
	UserID   string `json:"user_id"`
	FCMToken string `json:"fcm_token"`
}

// SupabaseStore reads providers and device tokens through the PostgREST API.
type SupabaseStore struct {
	endpoint string
	client   *postgrest.Client
}

func NewSupabaseStore(baseURL, serviceRoleKey string) *SupabaseStore {
	endpoint := strings.TrimRight(baseURL, "/") + restPath
	return &SupabaseStore{
		endpoint: endpoint,
		client: postgrest.NewClient(endpoint, "public", map[string]string{
			"apikey":        serviceRoleKey,
			"Authorization": "Bearer " + serviceRoleKey,
		}),
	}
}

func (s *SupabaseStore) FindProvidersByServiceType(ctx context.Context, serviceType string) ([]domain.Provider, error) {
	query := s.client.From(profilesTable).
		Select("user_id,full_name,service_type", "", false).
		Eq("profile_type", providerProfile).
		Contains("service_type", []string{serviceType})

	var rows []profileResponse
	if err := s.execute(ctx, "find_providers", profilesTable, query, &rows); err != nil {
		return nil, err
	}

	providers := make([]domain.Provider, 0, len(rows))
	for _, row := range rows {
		p := domain.Provider{
			UserID:       row.UserID,
			ServiceTypes: row.ServiceType,
		}
		if row.FullName != nil {
			p.DisplayName = *row.FullName
		}
		providers = append(providers, p)
	}

	return providers, nil
}

func (s *SupabaseStore) FindTokensByUserIDs(ctx context.Context, userIDs []string) ([]domain.DeliveryToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := s.client.From(deliveryTokenTable).
		Select("fcm_token,user_id", "", false).
		In("user_id", userIDs)

	var rows []tokenResponse
	if err := s.execute(ctx, "find_tokens", deliveryTokenTable, query, &rows); err != nil {
		return nil, err
	}

	tokens := make([]domain.DeliveryToken, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.FCMToken) == "" {
			continue
		}
		tokens = append(tokens, domain.DeliveryToken{
			UserID: row.UserID,
			Token:  row.FCMToken,
		})
	}

	return tokens, nil
}

func (s *SupabaseStore) Ping(ctx context.Context) error {
	query := s.client.From(profilesTable).
		Select("user_id", "", false).
		Limit(1, "")

	var rows []json.RawMessage
	return s.execute(ctx, "ping", profilesTable, query, &rows)
}

func (s *SupabaseStore) execute(ctx context.Context, operation, table string, query *postgrest.FilterBuilder, out any) error {
	ctx, span := tracing.StartExternalAPISpan(ctx, "supabase."+operation, s.endpoint+"/"+table)
	defer span.End()

	if _, err := query.ExecuteToWithContext(ctx, out); err != nil {
		slog.ErrorContext(ctx, "supabase query failed",
			slog.String("table", table),
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		tracing.RecordError(span, err)
		return fmt.Errorf("%w: %s: %v", domain.ErrDataStore, table, err)
	}

	return nil
}
