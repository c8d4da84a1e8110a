package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Absence is a leave period; EndDate is derived inclusively from StartDate and Days.
type Absence struct {
	AbsenceID  string    `json:"absenceID"`
	EmployeeID string    `json:"employeeID"`
	Reason     string    `json:"reason"`
	StartDate  time.Time `json:"startDate"`
	Days       int       `json:"days"`
	EndDate    time.Time `json:"endDate"`
	AuditFields
}

// Attendance is one pointage record for an employee and day.
type Attendance struct {
	AttendanceID  string          `json:"attendanceID"`
	EmployeeID    string          `json:"employeeID"`
	WorkDate      time.Time       `json:"workDate"`
	ClockIn       time.Time       `json:"clockIn"`
	ClockOut      time.Time       `json:"clockOut"`
	WorkedHours   decimal.Decimal `json:"workedHours"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	AuditFields
}

// Deduction is a payroll retenue applied to an employee for a month.
type Deduction struct {
	DeductionID string          `json:"deductionID"`
	EmployeeID  string          `json:"employeeID"`
	Month       string          `json:"month"` // YYYY-MM
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	AuditFields
}
