package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	"github.com/agrm/agrm_backend/internal/models"
	"github.com/agrm/agrm_backend/internal/utils/mapping"
)

type PgxSurplusRepository struct {
	BaseRepository
}

func newPgxSurplusRepository(pool *pgxpool.Pool) portsrepo.SurplusRepositoryFacade {
	return &PgxSurplusRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SurplusRepositoryFacade = (*PgxSurplusRepository)(nil)

// SaveSurplus inserts an excédent entry.
func (r *PgxSurplusRepository) SaveSurplus(ctx context.Context, surplus domain.Surplus) error {
	m := mapping.ToModelSurplus(surplus)

	query := `
		INSERT INTO surpluses (surplus_id, payment_id, client_id, gross_amount, net_amount, vat_amount,
			entry_date, cashier_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.SurplusID, m.PaymentID, m.ClientID, m.GrossAmount, m.NetAmount, m.VATAmount,
		m.EntryDate, m.CashierID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save surplus %s: %w", m.SurplusID, err)
	}
	return nil
}

// DeleteSurplus removes an excédent entry.
func (r *PgxSurplusRepository) DeleteSurplus(ctx context.Context, surplusID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM surpluses WHERE surplus_id = $1;`, surplusID)
	if err != nil {
		return fmt.Errorf("failed to delete surplus %s: %w", surplusID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListSurpluses retrieves the excédent entries of a date range.
func (r *PgxSurplusRepository) ListSurpluses(ctx context.Context, from, to time.Time) ([]domain.Surplus, error) {
	query := `
		SELECT surplus_id, payment_id, client_id, gross_amount, net_amount, vat_amount,
			entry_date, cashier_id, created_at, created_by, last_updated_at, last_updated_by
		FROM surpluses
		WHERE entry_date >= $1 AND entry_date <= $2
		ORDER BY entry_date, created_at;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query surpluses: %w", err)
	}

	modelSurpluses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Surplus, error) {
		var m models.Surplus
		err := row.Scan(
			&m.SurplusID,
			&m.PaymentID,
			&m.ClientID,
			&m.GrossAmount,
			&m.NetAmount,
			&m.VATAmount,
			&m.EntryDate,
			&m.CashierID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan surpluses: %w", err)
	}

	surpluses := make([]domain.Surplus, 0, len(modelSurpluses))
	for _, m := range modelSurpluses {
		surpluses = append(surpluses, mapping.ToDomainSurplus(m))
	}
	return surpluses, nil
}
