package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/core/services"
)

// --- Mock HRRepository ---
type MockHRRepository struct {
	mock.Mock
}

func (m *MockHRRepository) FindAbsenceByID(ctx context.Context, absenceID string) (*domain.Absence, error) {
	args := m.Called(ctx, absenceID)
	var absence *domain.Absence
	if args.Get(0) != nil {
		absence = args.Get(0).(*domain.Absence)
	}
	return absence, args.Error(1)
}

func (m *MockHRRepository) ListAbsencesByEmployee(ctx context.Context, employeeID string) ([]domain.Absence, error) {
	args := m.Called(ctx, employeeID)
	var absences []domain.Absence
	if args.Get(0) != nil {
		absences = args.Get(0).([]domain.Absence)
	}
	return absences, args.Error(1)
}

func (m *MockHRRepository) SaveAbsence(ctx context.Context, absence domain.Absence) error {
	args := m.Called(ctx, absence)
	return args.Error(0)
}

func (m *MockHRRepository) UpdateAbsence(ctx context.Context, absence domain.Absence) error {
	args := m.Called(ctx, absence)
	return args.Error(0)
}

func (m *MockHRRepository) DeleteAbsence(ctx context.Context, absenceID string) error {
	args := m.Called(ctx, absenceID)
	return args.Error(0)
}

func (m *MockHRRepository) ListAttendance(ctx context.Context, employeeID, month string) ([]domain.Attendance, error) {
	args := m.Called(ctx, employeeID, month)
	var rows []domain.Attendance
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.Attendance)
	}
	return rows, args.Error(1)
}

func (m *MockHRRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockHRRepository) DeleteAttendance(ctx context.Context, attendanceID string) error {
	args := m.Called(ctx, attendanceID)
	return args.Error(0)
}

func (m *MockHRRepository) ListDeductionsByEmployee(ctx context.Context, employeeID string) ([]domain.Deduction, error) {
	args := m.Called(ctx, employeeID)
	var deductions []domain.Deduction
	if args.Get(0) != nil {
		deductions = args.Get(0).([]domain.Deduction)
	}
	return deductions, args.Error(1)
}

func (m *MockHRRepository) SaveDeduction(ctx context.Context, deduction domain.Deduction) error {
	args := m.Called(ctx, deduction)
	return args.Error(0)
}

func (m *MockHRRepository) DeleteDeduction(ctx context.Context, deductionID string) error {
	args := m.Called(ctx, deductionID)
	return args.Error(0)
}

// --- Test Suite ---
type HRServiceTestSuite struct {
	suite.Suite
	mockHRRepo *MockHRRepository
	service    *services.HRService
}

func (suite *HRServiceTestSuite) SetupTest() {
	suite.mockHRRepo = new(MockHRRepository)
	suite.service = services.NewHRService(suite.mockHRRepo)
}

// --- RecordAbsence Tests ---
func (suite *HRServiceTestSuite) TestRecordAbsence_DerivesInclusiveEndDate() {
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	absence := domain.Absence{
		EmployeeID: "emp-1",
		Reason:     "Congé annuel",
		StartDate:  start,
		Days:       5,
	}

	suite.mockHRRepo.On("SaveAbsence", ctx, mock.MatchedBy(func(a domain.Absence) bool {
		return a.EndDate.Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	created, err := suite.service.RecordAbsence(ctx, absence)

	suite.Require().NoError(err)
	// 5 days starting March 4 end on March 8, both ends counted.
	suite.Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), created.EndDate)
	suite.NotEmpty(created.AbsenceID)
	suite.mockHRRepo.AssertExpectations(suite.T())
}

func (suite *HRServiceTestSuite) TestRecordAbsence_SingleDay() {
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	absence := domain.Absence{EmployeeID: "emp-1", StartDate: start, Days: 1}

	suite.mockHRRepo.On("SaveAbsence", ctx, mock.AnythingOfType("domain.Absence")).Return(nil).Once()

	created, err := suite.service.RecordAbsence(ctx, absence)

	suite.Require().NoError(err)
	suite.Equal(start, created.EndDate)
}

func (suite *HRServiceTestSuite) TestRecordAbsence_NonPositiveDays() {
	ctx := context.Background()
	absence := domain.Absence{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Days:       0,
	}

	created, err := suite.service.RecordAbsence(ctx, absence)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockHRRepo.AssertNotCalled(suite.T(), "SaveAbsence", mock.Anything, mock.Anything)
}

// --- RecordAttendance Tests ---
func (suite *HRServiceTestSuite) TestRecordAttendance_DerivesHours() {
	ctx := context.Background()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	attendance := domain.Attendance{
		EmployeeID: "emp-1",
		WorkDate:   day,
		ClockIn:    time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC),
		ClockOut:   time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC),
	}

	suite.mockHRRepo.On("SaveAttendance", ctx, mock.AnythingOfType("domain.Attendance")).Return(nil).Once()

	created, err := suite.service.RecordAttendance(ctx, attendance)

	suite.Require().NoError(err)
	suite.True(created.WorkedHours.Equal(decimal.RequireFromString("10.5")), "worked hours: %s", created.WorkedHours)
	// 8 standard hours, the rest counts as overtime.
	suite.True(created.OvertimeHours.Equal(decimal.RequireFromString("2.5")), "overtime hours: %s", created.OvertimeHours)
	suite.mockHRRepo.AssertExpectations(suite.T())
}

func (suite *HRServiceTestSuite) TestRecordAttendance_ClockOutBeforeClockIn() {
	ctx := context.Background()
	attendance := domain.Attendance{
		EmployeeID: "emp-1",
		ClockIn:    time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC),
		ClockOut:   time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC),
	}

	created, err := suite.service.RecordAttendance(ctx, attendance)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ListAttendance Tests ---
func (suite *HRServiceTestSuite) TestListAttendance_BadMonthFormat() {
	ctx := context.Background()

	rows, err := suite.service.ListAttendance(ctx, "emp-1", "03-2024")

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockHRRepo.AssertNotCalled(suite.T(), "ListAttendance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HRServiceTestSuite) TestListAttendance_Success() {
	ctx := context.Background()
	expected := []domain.Attendance{{AttendanceID: "att-1", EmployeeID: "emp-1"}}

	suite.mockHRRepo.On("ListAttendance", ctx, "emp-1", "2024-03").Return(expected, nil).Once()

	rows, err := suite.service.ListAttendance(ctx, "emp-1", "2024-03")

	suite.Require().NoError(err)
	suite.Equal(expected, rows)
}

// --- AddDeduction Tests ---
func (suite *HRServiceTestSuite) TestAddDeduction_Success() {
	ctx := context.Background()
	deduction := domain.Deduction{
		EmployeeID: "emp-1",
		Month:      "2024-03",
		Amount:     decimal.NewFromInt(25000),
		Reason:     "Avance sur salaire",
	}

	suite.mockHRRepo.On("SaveDeduction", ctx, mock.AnythingOfType("domain.Deduction")).Return(nil).Once()

	created, err := suite.service.AddDeduction(ctx, deduction)

	suite.Require().NoError(err)
	suite.NotEmpty(created.DeductionID)
	suite.mockHRRepo.AssertExpectations(suite.T())
}

func (suite *HRServiceTestSuite) TestAddDeduction_NonPositiveAmount() {
	ctx := context.Background()
	deduction := domain.Deduction{EmployeeID: "emp-1", Month: "2024-03", Amount: decimal.Zero}

	created, err := suite.service.AddDeduction(ctx, deduction)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HRServiceTestSuite) TestAddDeduction_BadMonth() {
	ctx := context.Background()
	deduction := domain.Deduction{EmployeeID: "emp-1", Month: "2024-13", Amount: decimal.NewFromInt(100)}

	created, err := suite.service.AddDeduction(ctx, deduction)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestHRServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HRServiceTestSuite))
}
