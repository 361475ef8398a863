package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mrstm/fare-service/internal/pkg/constants"
	"github.com/mrstm/fare-service/internal/pkg/database"
	"github.com/mrstm/fare-service/internal/pkg/logger"
	"github.com/mrstm/fare-service/internal/pkg/models"
)

// FareRateRepo provides access to fare rates with a Redis cache in front
// of the active-rate lookup, since every estimate and calculation reads it.
type FareRateRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewFareRateRepository creates a new fare rate repository
func NewFareRateRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *FareRateRepo {
	return &FareRateRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

func (r *FareRateRepo) cacheKey(carType string) string {
	return fmt.Sprintf(constants.KeyFareRate, carType)
}

func (r *FareRateRepo) cacheTTL() time.Duration {
	return time.Duration(r.cfg.Pricing.RateCacheTTLSeconds) * time.Second
}

// GetActiveByCarType retrieves the active rate for a car type, checking
// the cache first. Returns (nil, nil) when no active rate exists.
func (r *FareRateRepo) GetActiveByCarType(ctx context.Context, carType string) (*models.FareRate, error) {
	if r.redisClient != nil {
		cached, err := r.redisClient.Get(ctx, r.cacheKey(carType))
		if err == nil && cached != "" {
			rate := &models.FareRate{}
			if err := json.Unmarshal([]byte(cached), rate); err == nil {
				return rate, nil
			}
			logger.WarnCtx(ctx, "Discarding unreadable cached fare rate",
				logger.String("car_type", carType))
		}
	}

	query := `
		SELECT id, car_type, base_fare, per_km_rate, per_min_rate, min_fare, active, created_at
		FROM fare_rates
		WHERE car_type = $1 AND active = true
	`

	rate := &models.FareRate{}
	err := r.db.GetContext(ctx, rate, query, carType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	r.cacheRate(ctx, rate)

	return rate, nil
}

func (r *FareRateRepo) cacheRate(ctx context.Context, rate *models.FareRate) {
	if r.redisClient == nil {
		return
	}

	data, err := json.Marshal(rate)
	if err != nil {
		return
	}

	if err := r.redisClient.Set(ctx, r.cacheKey(rate.CarType), data, r.cacheTTL()); err != nil {
		logger.WarnCtx(ctx, "Failed to cache fare rate",
			logger.String("car_type", rate.CarType),
			logger.Err(err))
	}
}

// Create inserts a new active rate, deactivating any previously active
// rate for the same car type in the same transaction so the uniqueness
// of the active rate holds.
func (r *FareRateRepo) Create(ctx context.Context, rate *models.FareRate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deactivate := `UPDATE fare_rates SET active = false WHERE car_type = $1 AND active = true`
	if _, err := tx.ExecContext(ctx, deactivate, rate.CarType); err != nil {
		return fmt.Errorf("failed to deactivate previous rate: %w", err)
	}

	insert := `
		INSERT INTO fare_rates (id, car_type, base_fare, per_km_rate, per_min_rate, min_fare, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(
		ctx,
		insert,
		rate.ID,
		rate.CarType,
		rate.BaseFare,
		rate.PerKmRate,
		rate.PerMinRate,
		rate.MinFare,
		rate.Active,
		rate.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fare rate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fare rate: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Delete(ctx, r.cacheKey(rate.CarType)); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate fare rate cache",
				logger.String("car_type", rate.CarType),
				logger.Err(err))
		}
	}

	return nil
}
