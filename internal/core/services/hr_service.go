package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/utils/calc"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// HRService implements absence, attendance and deduction operations.
type HRService struct {
	BaseService
	hrRepo portsrepo.HRRepositoryFacade
}

// NewHRService creates a new HRService.
func NewHRService(hrRepo portsrepo.HRRepositoryFacade) *HRService {
	return &HRService{hrRepo: hrRepo}
}

// Ensure implementation matches interface
var _ portssvc.HRService = (*HRService)(nil)

// RecordAbsence derives the inclusive end date and persists the absence.
func (s *HRService) RecordAbsence(ctx context.Context, absence domain.Absence) (*domain.Absence, error) {
	endDate, ok := calc.AbsenceEndDate(absence.StartDate, absence.Days)
	if !ok {
		return nil, fmt.Errorf("%w: day count must be at least 1", apperrors.ErrValidation)
	}
	absence.EndDate = endDate

	now := time.Now()
	absence.AbsenceID = uuid.NewString()
	absence.CreatedAt = now
	absence.LastUpdatedAt = now
	absence.LastUpdatedBy = absence.CreatedBy

	if err := s.hrRepo.SaveAbsence(ctx, absence); err != nil {
		return nil, fmt.Errorf("failed to record absence: %w", err)
	}

	s.LogInfo(ctx, "absence recorded",
		"absence_id", absence.AbsenceID,
		"employee_id", absence.EmployeeID,
		"days", absence.Days)
	return &absence, nil
}

// UpdateAbsence re-derives the end date and overwrites the absence.
func (s *HRService) UpdateAbsence(ctx context.Context, absence domain.Absence) (*domain.Absence, error) {
	if absence.AbsenceID == "" {
		return nil, fmt.Errorf("%w: absence ID is required", apperrors.ErrValidation)
	}
	endDate, ok := calc.AbsenceEndDate(absence.StartDate, absence.Days)
	if !ok {
		return nil, fmt.Errorf("%w: day count must be at least 1", apperrors.ErrValidation)
	}
	absence.EndDate = endDate

	existing, err := s.hrRepo.FindAbsenceByID(ctx, absence.AbsenceID)
	if err != nil {
		return nil, err
	}
	absence.AuditFields = existing.AuditFields
	absence.LastUpdatedAt = time.Now()

	if err := s.hrRepo.UpdateAbsence(ctx, absence); err != nil {
		return nil, fmt.Errorf("failed to update absence: %w", err)
	}
	return &absence, nil
}

// DeleteAbsence removes an absence.
func (s *HRService) DeleteAbsence(ctx context.Context, absenceID string) error {
	return s.hrRepo.DeleteAbsence(ctx, absenceID)
}

// GetAbsence retrieves one absence.
func (s *HRService) GetAbsence(ctx context.Context, absenceID string) (*domain.Absence, error) {
	return s.hrRepo.FindAbsenceByID(ctx, absenceID)
}

// ListAbsencesByEmployee retrieves the absences of one employee.
func (s *HRService) ListAbsencesByEmployee(ctx context.Context, employeeID string) ([]domain.Absence, error) {
	return s.hrRepo.ListAbsencesByEmployee(ctx, employeeID)
}

// RecordAttendance derives worked and overtime hours and persists the
// pointage row.
func (s *HRService) RecordAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	if !attendance.ClockOut.After(attendance.ClockIn) {
		return nil, fmt.Errorf("%w: clock out must be after clock in", apperrors.ErrValidation)
	}

	attendance.WorkedHours = calc.WorkedHours(attendance.ClockIn, attendance.ClockOut)
	attendance.OvertimeHours = calc.OvertimeHours(attendance.WorkedHours)

	now := time.Now()
	attendance.AttendanceID = uuid.NewString()
	attendance.CreatedAt = now
	attendance.LastUpdatedAt = now
	attendance.LastUpdatedBy = attendance.CreatedBy

	if err := s.hrRepo.SaveAttendance(ctx, attendance); err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	return &attendance, nil
}

// ListAttendance retrieves the pointage rows of an employee for a month.
func (s *HRService) ListAttendance(ctx context.Context, employeeID, month string) ([]domain.Attendance, error) {
	if !monthPattern.MatchString(month) {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", apperrors.ErrValidation)
	}
	return s.hrRepo.ListAttendance(ctx, employeeID, month)
}

// DeleteAttendance removes a pointage row.
func (s *HRService) DeleteAttendance(ctx context.Context, attendanceID string) error {
	return s.hrRepo.DeleteAttendance(ctx, attendanceID)
}

// AddDeduction validates and persists a retenue.
func (s *HRService) AddDeduction(ctx context.Context, deduction domain.Deduction) (*domain.Deduction, error) {
	if deduction.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deduction amount must be positive", apperrors.ErrValidation)
	}
	if !monthPattern.MatchString(deduction.Month) {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", apperrors.ErrValidation)
	}

	now := time.Now()
	deduction.DeductionID = uuid.NewString()
	deduction.CreatedAt = now
	deduction.LastUpdatedAt = now
	deduction.LastUpdatedBy = deduction.CreatedBy

	if err := s.hrRepo.SaveDeduction(ctx, deduction); err != nil {
		return nil, fmt.Errorf("failed to add deduction: %w", err)
	}

	s.LogInfo(ctx, "deduction added",
		"deduction_id", deduction.DeductionID,
		"employee_id", deduction.EmployeeID,
		"month", deduction.Month)
	return &deduction, nil
}

// ListDeductionsByEmployee retrieves the retenues of one employee.
func (s *HRService) ListDeductionsByEmployee(ctx context.Context, employeeID string) ([]domain.Deduction, error) {
	return s.hrRepo.ListDeductionsByEmployee(ctx, employeeID)
}

// DeleteDeduction removes a retenue.
func (s *HRService) DeleteDeduction(ctx context.Context, deductionID string) error {
	return s.hrRepo.DeleteDeduction(ctx, deductionID)
}
