package profilestore

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

type profileRow struct {
	UserID       string   `gorm:"column:user_id"`
	FullName     *string  `gorm:"column:full_name"`
	ServiceTypes []string `gorm:"column:service_types;serializer:json"`
}

type tokenRow struct {
	UserID   string `gorm:"column:user_id"`
	FCMToken string `gorm:"column:fcm_token"`
}

// PostgresStore queries the marketplace tables directly.
type PostgresStore struct {
	db *gorm.DB
}

func OpenPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open postgres: %v", domain.ErrDataStore, err)
	}
	return NewPostgresStore(db), nil
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindProvidersByServiceType(ctx context.Context, serviceType string) ([]domain.Provider, error) {
	var rows []profileRow
	err := s.db.WithContext(ctx).
		Table(profilesTable).
		Select("user_id, full_name, to_json(service_type) AS service_types").
		Where("profile_type = ?", providerProfile).
		Where("? = ANY(service_type)", serviceType).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query providers: %v", domain.ErrDataStore, err)
	}

	providers := make([]domain.Provider, 0, len(rows))
	for _, row := range rows {
		p := domain.Provider{
			UserID:       row.UserID,
			ServiceTypes: row.ServiceTypes,
		}
		if row.FullName != nil {
			p.DisplayName = *row.FullName
		}
		providers = append(providers, p)
	}

	return providers, nil
}

func (s *PostgresStore) FindTokensByUserIDs(ctx context.Context, userIDs []string) ([]domain.DeliveryToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var rows []tokenRow
	err := s.db.WithContext(ctx).
		Table(deliveryTokenTable).
		Select("user_id, fcm_token").
		Where("user_id IN ?", userIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query tokens: %v", domain.ErrDataStore, err)
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

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDataStore, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDataStore, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
