package repositories

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// AbsenceReader defines read operations for absences.
type AbsenceReader interface {
	FindAbsenceByID(ctx context.Context, absenceID string) (*domain.Absence, error)
	ListAbsencesByEmployee(ctx context.Context, employeeID string) ([]domain.Absence, error)
}

// AbsenceWriter defines write operations for absences.
type AbsenceWriter interface {
	SaveAbsence(ctx context.Context, absence domain.Absence) error
	UpdateAbsence(ctx context.Context, absence domain.Absence) error
	DeleteAbsence(ctx context.Context, absenceID string) error
}

// AttendanceReader defines read operations for attendance records.
type AttendanceReader interface {
	// ListAttendance retrieves the pointage records of an employee for a
	// month given as YYYY-MM.
	ListAttendance(ctx context.Context, employeeID, month string) ([]domain.Attendance, error)
}

// AttendanceWriter defines write operations for attendance records.
type AttendanceWriter interface {
	SaveAttendance(ctx context.Context, attendance domain.Attendance) error
	DeleteAttendance(ctx context.Context, attendanceID string) error
}

// DeductionReader defines read operations for payroll deductions.
type DeductionReader interface {
	ListDeductionsByEmployee(ctx context.Context, employeeID string) ([]domain.Deduction, error)
}

// DeductionWriter defines write operations for payroll deductions.
type DeductionWriter interface {
	SaveDeduction(ctx context.Context, deduction domain.Deduction) error
	DeleteDeduction(ctx context.Context, deductionID string) error
}

// HRRepositoryFacade combines all HR repository interfaces.
type HRRepositoryFacade interface {
	AbsenceReader
	AbsenceWriter
	AttendanceReader
	AttendanceWriter
	DeductionReader
	DeductionWriter
}
