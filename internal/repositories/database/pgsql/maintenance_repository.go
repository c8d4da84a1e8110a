package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	"github.com/agrm/agrm_backend/internal/models"
	"github.com/agrm/agrm_backend/internal/utils/mapping"
)

const requisitionColumns = `requisition_id, vehicle_id, description, index_start, index_end, tonnage,
	index_diff, ratio, consumption_per_hour, request_date, status,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxMaintenanceRepository struct {
	BaseRepository
}

func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.MaintenanceRepositoryFacade {
	return &PgxMaintenanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MaintenanceRepositoryFacade = (*PgxMaintenanceRepository)(nil)

func scanRequisitionRow(row pgx.CollectableRow) (models.Requisition, error) {
	var m models.Requisition
	err := row.Scan(
		&m.RequisitionID,
		&m.VehicleID,
		&m.Description,
		&m.IndexStart,
		&m.IndexEnd,
		&m.Tonnage,
		&m.IndexDiff,
		&m.Ratio,
		&m.ConsumptionPerHour,
		&m.RequestDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRequisition inserts a requisition.
func (r *PgxMaintenanceRepository) SaveRequisition(ctx context.Context, requisition domain.Requisition) error {
	m := mapping.ToModelRequisition(requisition)

	query := `
		INSERT INTO requisitions (` + requisitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.RequisitionID, m.VehicleID, m.Description, m.IndexStart, m.IndexEnd, m.Tonnage,
		m.IndexDiff, m.Ratio, m.ConsumptionPerHour, m.RequestDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save requisition %s: %w", m.RequisitionID, err)
	}
	return nil
}

// UpdateRequisition overwrites the mutable fields of a requisition.
func (r *PgxMaintenanceRepository) UpdateRequisition(ctx context.Context, requisition domain.Requisition) error {
	m := mapping.ToModelRequisition(requisition)

	query := `
		UPDATE requisitions SET
			description = $2,
			index_start = $3,
			index_end = $4,
			tonnage = $5,
			index_diff = $6,
			ratio = $7,
			consumption_per_hour = $8,
			request_date = $9,
			status = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE requisition_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.RequisitionID, m.Description, m.IndexStart, m.IndexEnd, m.Tonnage,
		m.IndexDiff, m.Ratio, m.ConsumptionPerHour, m.RequestDate, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update requisition %s: %w", m.RequisitionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRequisition removes a requisition.
func (r *PgxMaintenanceRepository) DeleteRequisition(ctx context.Context, requisitionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM requisitions WHERE requisition_id = $1;`, requisitionID)
	if err != nil {
		return fmt.Errorf("failed to delete requisition %s: %w", requisitionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRequisitionByID retrieves one requisition.
func (r *PgxMaintenanceRepository) FindRequisitionByID(ctx context.Context, requisitionID string) (*domain.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions WHERE requisition_id = $1;`

	rows, err := r.Pool.Query(ctx, query, requisitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query requisition %s: %w", requisitionID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanRequisitionRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find requisition %s: %w", requisitionID, err)
	}

	d := mapping.ToDomainRequisition(m)
	return &d, nil
}

// ListRequisitions retrieves requisitions, optionally filtered by vehicle.
func (r *PgxMaintenanceRepository) ListRequisitions(ctx context.Context, vehicleID string) ([]domain.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions`
	args := []interface{}{}
	if vehicleID != "" {
		query += ` WHERE vehicle_id = $1`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY request_date DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requisitions: %w", err)
	}

	modelRequisitions, err := pgx.CollectRows(rows, scanRequisitionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan requisitions: %w", err)
	}

	requisitions := make([]domain.Requisition, 0, len(modelRequisitions))
	for _, m := range modelRequisitions {
		requisitions = append(requisitions, mapping.ToDomainRequisition(m))
	}
	return requisitions, nil
}
