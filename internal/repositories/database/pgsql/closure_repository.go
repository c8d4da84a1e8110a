package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	"github.com/agrm/agrm_backend/internal/models"
	"github.com/agrm/agrm_backend/internal/utils/mapping"
)

type PgxClosureRepository struct {
	BaseRepository
}

func newPgxClosureRepository(pool *pgxpool.Pool) portsrepo.ClosureRepositoryFacade {
	return &PgxClosureRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClosureRepositoryFacade = (*PgxClosureRepository)(nil)

// SaveClosures replaces the closure rows of one day inside a transaction, so
// a re-run never leaves a mix of old and new rows.
func (r *PgxClosureRepository) SaveClosures(ctx context.Context, day time.Time, closures []domain.DailyClosure) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM daily_closures WHERE closure_date = $1;`, day); err != nil {
		return fmt.Errorf("failed to clear closures for %s: %w", day.Format("2006-01-02"), err)
	}

	query := `
		INSERT INTO daily_closures (closure_id, cashier_id, closure_date, total_paid, total_surplus,
			payment_count, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, closure := range closures {
		m := mapping.ToModelDailyClosure(closure)
		if _, err := tx.Exec(ctx, query,
			m.ClosureID, m.CashierID, m.ClosureDate, m.TotalPaid, m.TotalSurplus,
			m.PaymentCount, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to save closure for cashier %s: %w", m.CashierID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListClosures retrieves the closure rows of one day.
func (r *PgxClosureRepository) ListClosures(ctx context.Context, day time.Time) ([]domain.DailyClosure, error) {
	query := `
		SELECT closure_id, cashier_id, closure_date, total_paid, total_surplus, payment_count,
			created_at, created_by, last_updated_at, last_updated_by
		FROM daily_closures
		WHERE closure_date = $1
		ORDER BY cashier_id;
	`

	rows, err := r.Pool.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query closures: %w", err)
	}

	modelClosures, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DailyClosure, error) {
		var m models.DailyClosure
		err := row.Scan(
			&m.ClosureID,
			&m.CashierID,
			&m.ClosureDate,
			&m.TotalPaid,
			&m.TotalSurplus,
			&m.PaymentCount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan closures: %w", err)
	}

	closures := make([]domain.DailyClosure, 0, len(modelClosures))
	for _, m := range modelClosures {
		closures = append(closures, mapping.ToDomainDailyClosure(m))
	}
	return closures, nil
}
