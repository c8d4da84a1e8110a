package services

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// HRService defines absence, attendance and deduction operations.
type HRService interface {
	// RecordAbsence persists an absence, deriving the inclusive end date
	// from the start date and the day count.
	RecordAbsence(ctx context.Context, absence domain.Absence) (*domain.Absence, error)
	UpdateAbsence(ctx context.Context, absence domain.Absence) (*domain.Absence, error)
	DeleteAbsence(ctx context.Context, absenceID string) error
	GetAbsence(ctx context.Context, absenceID string) (*domain.Absence, error)
	ListAbsencesByEmployee(ctx context.Context, employeeID string) ([]domain.Absence, error)

	// RecordAttendance persists a pointage row, deriving worked and
	// overtime hours from the clock times.
	RecordAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error)
	ListAttendance(ctx context.Context, employeeID, month string) ([]domain.Attendance, error)
	DeleteAttendance(ctx context.Context, attendanceID string) error

	AddDeduction(ctx context.Context, deduction domain.Deduction) (*domain.Deduction, error)
	ListDeductionsByEmployee(ctx context.Context, employeeID string) ([]domain.Deduction, error)
	DeleteDeduction(ctx context.Context, deductionID string) error
}
