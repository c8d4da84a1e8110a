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

type PgxHRRepository struct {
	BaseRepository
}

func newPgxHRRepository(pool *pgxpool.Pool) portsrepo.HRRepositoryFacade {
	return &PgxHRRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HRRepositoryFacade = (*PgxHRRepository)(nil)

func scanAbsenceRow(row pgx.CollectableRow) (models.Absence, error) {
	var m models.Absence
	err := row.Scan(
		&m.AbsenceID,
		&m.EmployeeID,
		&m.Reason,
		&m.StartDate,
		&m.Days,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAbsence inserts an absence.
func (r *PgxHRRepository) SaveAbsence(ctx context.Context, absence domain.Absence) error {
	m := mapping.ToModelAbsence(absence)

	query := `
		INSERT INTO absences (absence_id, employee_id, reason, start_date, days, end_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.AbsenceID, m.EmployeeID, m.Reason, m.StartDate, m.Days, m.EndDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save absence %s: %w", m.AbsenceID, err)
	}
	return nil
}

// UpdateAbsence overwrites the mutable fields of an absence.
func (r *PgxHRRepository) UpdateAbsence(ctx context.Context, absence domain.Absence) error {
	m := mapping.ToModelAbsence(absence)

	query := `
		UPDATE absences SET
			reason = $2,
			start_date = $3,
			days = $4,
			end_date = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE absence_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.AbsenceID, m.Reason, m.StartDate, m.Days, m.EndDate, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update absence %s: %w", m.AbsenceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAbsence removes an absence.
func (r *PgxHRRepository) DeleteAbsence(ctx context.Context, absenceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM absences WHERE absence_id = $1;`, absenceID)
	if err != nil {
		return fmt.Errorf("failed to delete absence %s: %w", absenceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAbsenceByID retrieves one absence.
func (r *PgxHRRepository) FindAbsenceByID(ctx context.Context, absenceID string) (*domain.Absence, error) {
	query := `
		SELECT absence_id, employee_id, reason, start_date, days, end_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM absences
		WHERE absence_id = $1;
	`

	rows, err := r.Pool.Query(ctx, query, absenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query absence %s: %w", absenceID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanAbsenceRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find absence %s: %w", absenceID, err)
	}

	d := mapping.ToDomainAbsence(m)
	return &d, nil
}

// ListAbsencesByEmployee retrieves the absences of one employee, most recent
// start date first.
func (r *PgxHRRepository) ListAbsencesByEmployee(ctx context.Context, employeeID string) ([]domain.Absence, error) {
	query := `
		SELECT absence_id, employee_id, reason, start_date, days, end_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM absences
		WHERE employee_id = $1
		ORDER BY start_date DESC;
	`

	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences for employee %s: %w", employeeID, err)
	}

	modelAbsences, err := pgx.CollectRows(rows, scanAbsenceRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan absences: %w", err)
	}

	absences := make([]domain.Absence, 0, len(modelAbsences))
	for _, m := range modelAbsences {
		absences = append(absences, mapping.ToDomainAbsence(m))
	}
	return absences, nil
}

func scanAttendanceRow(row pgx.CollectableRow) (models.Attendance, error) {
	var m models.Attendance
	err := row.Scan(
		&m.AttendanceID,
		&m.EmployeeID,
		&m.WorkDate,
		&m.ClockIn,
		&m.ClockOut,
		&m.WorkedHours,
		&m.OvertimeHours,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAttendance inserts a pointage row.
func (r *PgxHRRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) error {
	m := mapping.ToModelAttendance(attendance)

	query := `
		INSERT INTO attendance (attendance_id, employee_id, work_date, clock_in, clock_out,
			worked_hours, overtime_hours, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.AttendanceID, m.EmployeeID, m.WorkDate, m.ClockIn, m.ClockOut,
		m.WorkedHours, m.OvertimeHours, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance %s: %w", m.AttendanceID, err)
	}
	return nil
}

// ListAttendance retrieves the pointage rows of an employee for a month
// given as YYYY-MM.
func (r *PgxHRRepository) ListAttendance(ctx context.Context, employeeID, month string) ([]domain.Attendance, error) {
	query := `
		SELECT attendance_id, employee_id, work_date, clock_in, clock_out, worked_hours, overtime_hours,
			created_at, created_by, last_updated_at, last_updated_by
		FROM attendance
		WHERE employee_id = $1 AND to_char(work_date, 'YYYY-MM') = $2
		ORDER BY work_date;
	`

	rows, err := r.Pool.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for employee %s: %w", employeeID, err)
	}

	modelRows, err := pgx.CollectRows(rows, scanAttendanceRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance: %w", err)
	}

	attendance := make([]domain.Attendance, 0, len(modelRows))
	for _, m := range modelRows {
		attendance = append(attendance, mapping.ToDomainAttendance(m))
	}
	return attendance, nil
}

// DeleteAttendance removes a pointage row.
func (r *PgxHRRepository) DeleteAttendance(ctx context.Context, attendanceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM attendance WHERE attendance_id = $1;`, attendanceID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", attendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveDeduction inserts a retenue.
func (r *PgxHRRepository) SaveDeduction(ctx context.Context, deduction domain.Deduction) error {
	m := mapping.ToModelDeduction(deduction)

	query := `
		INSERT INTO deductions (deduction_id, employee_id, month, amount, reason,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.DeductionID, m.EmployeeID, m.Month, m.Amount, m.Reason,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save deduction %s: %w", m.DeductionID, err)
	}
	return nil
}

// ListDeductionsByEmployee retrieves the retenues of one employee.
func (r *PgxHRRepository) ListDeductionsByEmployee(ctx context.Context, employeeID string) ([]domain.Deduction, error) {
	query := `
		SELECT deduction_id, employee_id, month, amount, reason,
			created_at, created_by, last_updated_at, last_updated_by
		FROM deductions
		WHERE employee_id = $1
		ORDER BY month DESC;
	`

	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deductions for employee %s: %w", employeeID, err)
	}

	modelDeductions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Deduction, error) {
		var m models.Deduction
		err := row.Scan(
			&m.DeductionID,
			&m.EmployeeID,
			&m.Month,
			&m.Amount,
			&m.Reason,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan deductions: %w", err)
	}

	deductions := make([]domain.Deduction, 0, len(modelDeductions))
	for _, m := range modelDeductions {
		deductions = append(deductions, mapping.ToDomainDeduction(m))
	}
	return deductions, nil
}

// DeleteDeduction removes a retenue.
func (r *PgxHRRepository) DeleteDeduction(ctx context.Context, deductionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM deductions WHERE deduction_id = $1;`, deductionID)
	if err != nil {
		return fmt.Errorf("failed to delete deduction %s: %w", deductionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
