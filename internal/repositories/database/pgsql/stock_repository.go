package pgsql

import (
	"context"
	"errors"
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

const movementColumns = `movement_id, movement_type, article_id, store_id, quantity, unit_price,
	destination, movement_date, reference, created_at, created_by, last_updated_at, last_updated_by`

type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

func scanMovementRow(row pgx.CollectableRow) (models.StockMovement, error) {
	var m models.StockMovement
	err := row.Scan(
		&m.MovementID,
		&m.MovementType,
		&m.ArticleID,
		&m.StoreID,
		&m.Quantity,
		&m.UnitPrice,
		&m.Destination,
		&m.MovementDate,
		&m.Reference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveMovement inserts a stock movement.
func (r *PgxStockRepository) SaveMovement(ctx context.Context, movement domain.StockMovement) error {
	m := mapping.ToModelStockMovement(movement)

	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.MovementID, m.MovementType, m.ArticleID, m.StoreID, m.Quantity, m.UnitPrice,
		m.Destination, m.MovementDate, m.Reference, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock movement %s: %w", m.MovementID, err)
	}
	return nil
}

// UpdateMovement overwrites the mutable fields of a stock movement.
func (r *PgxStockRepository) UpdateMovement(ctx context.Context, movement domain.StockMovement) error {
	m := mapping.ToModelStockMovement(movement)

	query := `
		UPDATE stock_movements SET
			movement_type = $2,
			article_id = $3,
			store_id = $4,
			quantity = $5,
			unit_price = $6,
			destination = $7,
			movement_date = $8,
			reference = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE movement_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.MovementID, m.MovementType, m.ArticleID, m.StoreID, m.Quantity, m.UnitPrice,
		m.Destination, m.MovementDate, m.Reference, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update stock movement %s: %w", m.MovementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovement removes a stock movement.
func (r *PgxStockRepository) DeleteMovement(ctx context.Context, movementID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM stock_movements WHERE movement_id = $1;`, movementID)
	if err != nil {
		return fmt.Errorf("failed to delete stock movement %s: %w", movementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindMovementByID retrieves one stock movement.
func (r *PgxStockRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE movement_id = $1;`

	rows, err := r.Pool.Query(ctx, query, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock movement %s: %w", movementID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanMovementRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock movement %s: %w", movementID, err)
	}

	d := mapping.ToDomainStockMovement(m)
	return &d, nil
}

// ListMovements retrieves the movements of a date range, optionally filtered
// by store, ordered by movement date then creation time.
func (r *PgxStockRepository) ListMovements(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE movement_date >= $1 AND movement_date <= $2`
	args := []interface{}{from, to}

	if storeID != "" {
		args = append(args, storeID)
		query += fmt.Sprintf(" AND store_id = $%d", len(args))
	}
	query += " ORDER BY movement_date, created_at;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock movements: %w", err)
	}

	modelMovements, err := pgx.CollectRows(rows, scanMovementRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock movements: %w", err)
	}

	movements := make([]domain.StockMovement, 0, len(modelMovements))
	for _, m := range modelMovements {
		movements = append(movements, mapping.ToDomainStockMovement(m))
	}
	return movements, nil
}

func scanTicketRow(row pgx.CollectableRow) (models.WeighbridgeTicket, error) {
	var m models.WeighbridgeTicket
	err := row.Scan(
		&m.TicketID,
		&m.VehiclePlate,
		&m.Merchandise,
		&m.FirstWeight,
		&m.SecondWeight,
		&m.NetWeight,
		&m.WeighDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTicket inserts a weighbridge ticket.
func (r *PgxStockRepository) SaveTicket(ctx context.Context, ticket domain.WeighbridgeTicket) error {
	m := mapping.ToModelWeighbridgeTicket(ticket)

	query := `
		INSERT INTO weighbridge_tickets (ticket_id, vehicle_plate, merchandise, first_weight, second_weight,
			net_weight, weigh_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.TicketID, m.VehiclePlate, m.Merchandise, m.FirstWeight, m.SecondWeight,
		m.NetWeight, m.WeighDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save weighbridge ticket %s: %w", m.TicketID, err)
	}
	return nil
}

// FindTicketByID retrieves one weighbridge ticket.
func (r *PgxStockRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.WeighbridgeTicket, error) {
	query := `
		SELECT ticket_id, vehicle_plate, merchandise, first_weight, second_weight, net_weight, weigh_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM weighbridge_tickets
		WHERE ticket_id = $1;
	`

	rows, err := r.Pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to query weighbridge ticket %s: %w", ticketID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanTicketRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find weighbridge ticket %s: %w", ticketID, err)
	}

	d := mapping.ToDomainWeighbridgeTicket(m)
	return &d, nil
}

// ListTickets retrieves the weighbridge tickets of a date range.
func (r *PgxStockRepository) ListTickets(ctx context.Context, from, to time.Time) ([]domain.WeighbridgeTicket, error) {
	query := `
		SELECT ticket_id, vehicle_plate, merchandise, first_weight, second_weight, net_weight, weigh_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM weighbridge_tickets
		WHERE weigh_date >= $1 AND weigh_date <= $2
		ORDER BY weigh_date, created_at;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query weighbridge tickets: %w", err)
	}

	modelTickets, err := pgx.CollectRows(rows, scanTicketRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan weighbridge tickets: %w", err)
	}

	tickets := make([]domain.WeighbridgeTicket, 0, len(modelTickets))
	for _, m := range modelTickets {
		tickets = append(tickets, mapping.ToDomainWeighbridgeTicket(m))
	}
	return tickets, nil
}

// DeleteTicket removes a weighbridge ticket.
func (r *PgxStockRepository) DeleteTicket(ctx context.Context, ticketID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM weighbridge_tickets WHERE ticket_id = $1;`, ticketID)
	if err != nil {
		return fmt.Errorf("failed to delete weighbridge ticket %s: %w", ticketID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
