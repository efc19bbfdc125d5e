package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"

	"github.com/tapea/backoffice/internal/pkg/constants"
	"github.com/tapea/backoffice/internal/pkg/database"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/services/billing"
)

// BillingRepo provides postgres and redis access for the billing service
type BillingRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *BillingRepo {
	return &BillingRepo{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
	}
}

// GetFeeConfig reads the fee configuration singleton from postgres
func (r *BillingRepo) GetFeeConfig(ctx context.Context) (*models.FeeConfig, error) {
	query := `
		SELECT id, service_fee_percent, supplementary_commission_percent,
		       salaried_commission_percent, updated_at
		FROM fee_config
		ORDER BY updated_at DESC
		LIMIT 1
	`
	cfg := &models.FeeConfig{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cfg.ID,
		&cfg.ServiceFeePercent,
		&cfg.SupplementaryCommissionPercent,
		&cfg.SalariedCommissionPercent,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrFeeConfigNotFound
		}
		return nil, fmt.Errorf("failed to get fee config: %w", err)
	}
	return cfg, nil
}

// UpsertFeeConfig writes the fee configuration singleton
func (r *BillingRepo) UpsertFeeConfig(ctx context.Context, cfg *models.FeeConfig) error {
	query := `
		INSERT INTO fee_config (
			id, service_fee_percent, supplementary_commission_percent,
			salaried_commission_percent, updated_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			service_fee_percent = EXCLUDED.service_fee_percent,
			supplementary_commission_percent = EXCLUDED.supplementary_commission_percent,
			salaried_commission_percent = EXCLUDED.salaried_commission_percent,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		cfg.ID,
		cfg.ServiceFeePercent,
		cfg.SupplementaryCommissionPercent,
		cfg.SalariedCommissionPercent,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert fee config: %w", err)
	}
	return nil
}

// GetCachedFeeConfig reads the fee configuration from the redis cache.
// A cache miss returns (nil, nil); redis being down is not an error the
// caller should see, the postgres read is the fallback.
func (r *BillingRepo) GetCachedFeeConfig(ctx context.Context) (*models.FeeConfig, error) {
	raw, err := r.redis.Get(ctx, constants.KeyFeeConfig)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, nil
	}

	cfg := &models.FeeConfig{}
	if err := json.Unmarshal([]byte(raw), cfg); err != nil {
		// Corrupt cache entry; drop it and fall through to postgres
		_ = r.redis.Delete(ctx, constants.KeyFeeConfig)
		return nil, nil
	}
	return cfg, nil
}

// CacheFeeConfig stores the fee configuration in redis with a TTL
func (r *BillingRepo) CacheFeeConfig(ctx context.Context, cfg *models.FeeConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal fee config: %w", err)
	}
	return r.redis.Set(ctx, constants.KeyFeeConfig, raw, constants.FeeConfigTTL)
}

// InvalidateFeeConfig drops the cached fee configuration
func (r *BillingRepo) InvalidateFeeConfig(ctx context.Context) error {
	return r.redis.Delete(ctx, constants.KeyFeeConfig)
}
