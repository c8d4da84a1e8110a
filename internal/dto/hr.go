package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// CreateAbsenceRequest defines the data needed to record an absence.
// The end date is derived server side from the start date and day count.
type CreateAbsenceRequest struct {
	EmployeeID string `json:"employeeID" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
	StartDate  string `json:"startDate" binding:"required,datetime=2006-01-02"`
	Days       int    `json:"days" binding:"required,min=1"`
}

// ToDomainAbsence converts a create request to a domain absence.
func (r CreateAbsenceRequest) ToDomainAbsence(userID string) domain.Absence {
	startDate, _ := time.Parse("2006-01-02", r.StartDate)
	return domain.Absence{
		EmployeeID:  r.EmployeeID,
		Reason:      r.Reason,
		StartDate:   startDate,
		Days:        r.Days,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateAttendanceRequest defines the data needed to record a pointage.
// Clock times travel as RFC 3339 timestamps.
type CreateAttendanceRequest struct {
	EmployeeID string    `json:"employeeID" binding:"required"`
	WorkDate   string    `json:"workDate" binding:"required,datetime=2006-01-02"`
	ClockIn    time.Time `json:"clockIn" binding:"required"`
	ClockOut   time.Time `json:"clockOut" binding:"required"`
}

// ToDomainAttendance converts a create request to a domain attendance row.
func (r CreateAttendanceRequest) ToDomainAttendance(userID string) domain.Attendance {
	workDate, _ := time.Parse("2006-01-02", r.WorkDate)
	return domain.Attendance{
		EmployeeID:  r.EmployeeID,
		WorkDate:    workDate,
		ClockIn:     r.ClockIn,
		ClockOut:    r.ClockOut,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}

// CreateDeductionRequest defines the data needed to record a retenue.
type CreateDeductionRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Month      string          `json:"month" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Reason     string          `json:"reason" binding:"required"`
}

// ToDomainDeduction converts a create request to a domain deduction.
func (r CreateDeductionRequest) ToDomainDeduction(userID string) domain.Deduction {
	return domain.Deduction{
		EmployeeID:  r.EmployeeID,
		Month:       r.Month,
		Amount:      r.Amount,
		Reason:      r.Reason,
		AuditFields: domain.AuditFields{CreatedBy: userID},
	}
}
