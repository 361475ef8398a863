package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/mrstm/fare-service/internal/pkg/apperrors"
	"github.com/mrstm/fare-service/internal/pkg/models"
)

// pgUniqueViolation is the SQLSTATE code for unique constraint violations
const pgUniqueViolation = "23505"

// FareRepo provides access to persisted fares and earnings aggregates
type FareRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFareRepository creates a new fare repository
func NewFareRepository(cfg *models.Config, db *sqlx.DB) *FareRepo {
	return &FareRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a new fare row. The fares table carries a unique
// constraint on booking_id, so a concurrent writer for the same booking
// receives an already-exists error instead of creating a second row.
func (r *FareRepo) Create(ctx context.Context, fare *models.Fare) error {
	query := `
		INSERT INTO fares (id, booking_id, car_type, distance, duration, surge, discount, final_fare, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		fare.ID,
		fare.BookingID,
		fare.CarType,
		fare.Distance,
		fare.Duration,
		fare.Surge,
		fare.Discount,
		fare.FinalFare,
		fare.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.AlreadyExists("fare already calculated for this booking")
		}
		return err
	}

	return nil
}

// GetByBookingID retrieves the fare for a booking. Returns (nil, nil)
// when no fare has been calculated yet.
func (r *FareRepo) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Fare, error) {
	query := `
		SELECT id, booking_id, car_type, distance, duration, surge, discount, final_fare, created_at
		FROM fares
		WHERE booking_id = $1
	`

	fare := &models.Fare{}
	err := r.db.GetContext(ctx, fare, query, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return fare, nil
}

// ExistsByBookingID reports whether a fare exists for the booking
func (r *FareRepo) ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM fares WHERE booking_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, bookingID); err != nil {
		return false, err
	}

	return exists, nil
}

// GetTotalEarnings sums the final fares of a driver's bookings created
// within [fromDate, toDate], inclusive by calendar date.
func (r *FareRepo) GetTotalEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(f.final_fare), 0)
		FROM fares f
		JOIN bookings b ON b.id = f.booking_id
		WHERE b.driver_id = $1
		AND f.created_at::date BETWEEN $2::date AND $3::date
	`

	var total float64
	if err := r.db.GetContext(ctx, &total, query, driverID, fromDate, toDate); err != nil {
		return 0, err
	}

	return total, nil
}

// GetThisMonthEarnings sums a driver's fares for the current calendar month
func (r *FareRepo) GetThisMonthEarnings(ctx context.Context, driverID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(f.final_fare), 0)
		FROM fares f
		JOIN bookings b ON b.id = f.booking_id
		WHERE b.driver_id = $1
		AND date_trunc('month', f.created_at) = date_trunc('month', CURRENT_DATE)
	`

	var total float64
	if err := r.db.GetContext(ctx, &total, query, driverID); err != nil {
		return 0, err
	}

	return total, nil
}

// GetDailyEarnings returns one (date, total) pair per date with at least
// one fare, in ascending date order.
func (r *FareRepo) GetDailyEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) ([]models.DailyEarnings, error) {
	query := `
		SELECT f.created_at::date AS date, SUM(f.final_fare) AS total
		FROM fares f
		JOIN bookings b ON b.id = f.booking_id
		WHERE b.driver_id = $1
		AND f.created_at::date BETWEEN $2::date AND $3::date
		GROUP BY f.created_at::date
		ORDER BY f.created_at::date
	`

	rows, err := r.db.QueryContext(ctx, query, driverID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earnings := make([]models.DailyEarnings, 0)
	for rows.Next() {
		var date time.Time
		var total float64
		if err := rows.Scan(&date, &total); err != nil {
			return nil, err
		}
		earnings = append(earnings, models.DailyEarnings{
			Date:  date.Format("2006-01-02"),
			Total: total,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return earnings, nil
}
