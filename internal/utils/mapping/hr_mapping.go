package mapping

import (
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/models"
)

// ToModelAbsence converts a domain Absence to a model Absence.
func ToModelAbsence(d domain.Absence) models.Absence {
	return models.Absence{
		AbsenceID:   d.AbsenceID,
		EmployeeID:  d.EmployeeID,
		Reason:      d.Reason,
		StartDate:   d.StartDate,
		Days:        d.Days,
		EndDate:     d.EndDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAbsence converts a model Absence to a domain Absence.
func ToDomainAbsence(m models.Absence) domain.Absence {
	return domain.Absence{
		AbsenceID:   m.AbsenceID,
		EmployeeID:  m.EmployeeID,
		Reason:      m.Reason,
		StartDate:   m.StartDate,
		Days:        m.Days,
		EndDate:     m.EndDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAttendance converts a domain Attendance to a model Attendance.
func ToModelAttendance(d domain.Attendance) models.Attendance {
	return models.Attendance{
		AttendanceID:  d.AttendanceID,
		EmployeeID:    d.EmployeeID,
		WorkDate:      d.WorkDate,
		ClockIn:       d.ClockIn,
		ClockOut:      d.ClockOut,
		WorkedHours:   d.WorkedHours,
		OvertimeHours: d.OvertimeHours,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttendance converts a model Attendance to a domain Attendance.
func ToDomainAttendance(m models.Attendance) domain.Attendance {
	return domain.Attendance{
		AttendanceID:  m.AttendanceID,
		EmployeeID:    m.EmployeeID,
		WorkDate:      m.WorkDate,
		ClockIn:       m.ClockIn,
		ClockOut:      m.ClockOut,
		WorkedHours:   m.WorkedHours,
		OvertimeHours: m.OvertimeHours,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDeduction converts a domain Deduction to a model Deduction.
func ToModelDeduction(d domain.Deduction) models.Deduction {
	return models.Deduction{
		DeductionID: d.DeductionID,
		EmployeeID:  d.EmployeeID,
		Month:       d.Month,
		Amount:      d.Amount,
		Reason:      d.Reason,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeduction converts a model Deduction to a domain Deduction.
func ToDomainDeduction(m models.Deduction) domain.Deduction {
	return domain.Deduction{
		DeductionID: m.DeductionID,
		EmployeeID:  m.EmployeeID,
		Month:       m.Month,
		Amount:      m.Amount,
		Reason:      m.Reason,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
