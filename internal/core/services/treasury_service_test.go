package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	"github.com/agrm/agrm_backend/internal/core/services"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	var payment *domain.PaymentRecord
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.PaymentRecord)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, from, to time.Time, bankID, cashierID string, limit int, nextToken string) ([]domain.PaymentRecord, string, error) {
	args := m.Called(ctx, from, to, bankID, cashierID, limit, nextToken)
	var payments []domain.PaymentRecord
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.PaymentRecord)
	}
	return payments, args.String(1), args.Error(2)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.PaymentRecord) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock SurplusRepository ---
type MockSurplusRepository struct {
	mock.Mock
}

func (m *MockSurplusRepository) ListSurpluses(ctx context.Context, from, to time.Time) ([]domain.Surplus, error) {
	args := m.Called(ctx, from, to)
	var surpluses []domain.Surplus
	if args.Get(0) != nil {
		surpluses = args.Get(0).([]domain.Surplus)
	}
	return surpluses, args.Error(1)
}

func (m *MockSurplusRepository) SaveSurplus(ctx context.Context, surplus domain.Surplus) error {
	args := m.Called(ctx, surplus)
	return args.Error(0)
}

func (m *MockSurplusRepository) DeleteSurplus(ctx context.Context, surplusID string) error {
	args := m.Called(ctx, surplusID)
	return args.Error(0)
}

// --- Mock ClosureRepository ---
type MockClosureRepository struct {
	mock.Mock
}

func (m *MockClosureRepository) ListClosures(ctx context.Context, day time.Time) ([]domain.DailyClosure, error) {
	args := m.Called(ctx, day)
	var closures []domain.DailyClosure
	if args.Get(0) != nil {
		closures = args.Get(0).([]domain.DailyClosure)
	}
	return closures, args.Error(1)
}

func (m *MockClosureRepository) SaveClosures(ctx context.Context, day time.Time, closures []domain.DailyClosure) error {
	args := m.Called(ctx, day, closures)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetPaymentsForRange(ctx context.Context, from, to time.Time, bankID, cashierID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, from, to, bankID, cashierID)
	var payments []domain.PaymentRecord
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.PaymentRecord)
	}
	return payments, args.Error(1)
}

func (m *MockReportingRepository) GetExitsForRange(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error) {
	args := m.Called(ctx, from, to, storeID)
	var exits []domain.StockMovement
	if args.Get(0) != nil {
		exits = args.Get(0).([]domain.StockMovement)
	}
	return exits, args.Error(1)
}

func (m *MockReportingRepository) GetStockLedgerData(ctx context.Context, articleID, storeID string, from, to time.Time) (decimal.Decimal, []domain.StockMovement, error) {
	args := m.Called(ctx, articleID, storeID, from, to)
	var movements []domain.StockMovement
	if args.Get(1) != nil {
		movements = args.Get(1).([]domain.StockMovement)
	}
	return args.Get(0).(decimal.Decimal), movements, args.Error(2)
}

func (m *MockReportingRepository) GetCashierSummaryData(ctx context.Context, day time.Time) ([]domain.CashierSummaryRow, error) {
	args := m.Called(ctx, day)
	var rows []domain.CashierSummaryRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CashierSummaryRow)
	}
	return rows, args.Error(1)
}

// --- Mock PaymentEventPublisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishPaymentRecorded(ctx context.Context, paymentID, cashierID, bankID string, amountPaid decimal.Decimal) error {
	args := m.Called(ctx, paymentID, cashierID, bankID, amountPaid)
	return args.Error(0)
}

// --- Test Suite ---
type TreasuryServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo   *MockPaymentRepository
	mockSurplusRepo   *MockSurplusRepository
	mockClosureRepo   *MockClosureRepository
	mockReportingRepo *MockReportingRepository
	mockPublisher     *MockPublisher
	service           *services.TreasuryService
}

func (suite *TreasuryServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockSurplusRepo = new(MockSurplusRepository)
	suite.mockClosureRepo = new(MockClosureRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewTreasuryService(
		suite.mockPaymentRepo,
		suite.mockSurplusRepo,
		suite.mockClosureRepo,
		suite.mockReportingRepo,
		suite.mockPublisher,
	)
}

func validPayment() domain.PaymentRecord {
	return domain.PaymentRecord{
		InvoiceID:     "inv-1",
		PaymentType:   domain.PaymentCash,
		PaymentMode:   "CHEQUE",
		BankID:        "bank-1",
		BankName:      "BANCOBU",
		ClientID:      "client-1",
		ClientName:    "SOGESTAL",
		AmountPaid:    decimal.NewFromInt(1000),
		SurplusAmount: decimal.NewFromInt(100),
		PaymentDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CashierID:     "cashier-1",
		Reference:     "REC-0001",
	}
}

// --- RecordPayment Tests ---
func (suite *TreasuryServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	payment := validPayment()

	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.PaymentRecord) bool {
		return p.PaymentID != "" && p.CreatedBy == "cashier-1" && p.Reference == "REC-0001"
	})).Return(nil).Once()
	suite.mockPublisher.On("PublishPaymentRecorded", ctx, mock.AnythingOfType("string"), "cashier-1", "bank-1", payment.AmountPaid).Return(nil).Once()

	created, err := suite.service.RecordPayment(ctx, payment)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.PaymentID)
	suite.Equal("cashier-1", created.CreatedBy)
	suite.True(created.InvoicedAmount().Equal(decimal.NewFromInt(900)))

	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	payment := validPayment()
	payment.AmountPaid = decimal.Zero

	created, err := suite.service.RecordPayment(ctx, payment)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *TreasuryServiceTestSuite) TestRecordPayment_SurplusExceedsAmount() {
	ctx := context.Background()
	payment := validPayment()
	payment.SurplusAmount = decimal.NewFromInt(2000)

	created, err := suite.service.RecordPayment(ctx, payment)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TreasuryServiceTestSuite) TestRecordPayment_PublishFailureIsSwallowed() {
	ctx := context.Background()
	payment := validPayment()

	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.PaymentRecord")).Return(nil).Once()
	suite.mockPublisher.On("PublishPaymentRecorded", ctx, mock.AnythingOfType("string"), "cashier-1", "bank-1", payment.AmountPaid).Return(assert.AnError).Once()

	created, err := suite.service.RecordPayment(ctx, payment)

	// The payment is persisted; the failed notification must not surface.
	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestRecordPayment_DuplicateReference() {
	ctx := context.Background()
	payment := validPayment()

	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.PaymentRecord")).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.RecordPayment(ctx, payment)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishPaymentRecorded", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdatePayment Tests ---
func (suite *TreasuryServiceTestSuite) TestUpdatePayment_PreservesAuditAndCashier() {
	ctx := context.Background()
	createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	existing := validPayment()
	existing.PaymentID = "pay-1"
	existing.CashierID = "original-cashier"
	existing.AuditFields = domain.AuditFields{
		CreatedAt:     createdAt,
		CreatedBy:     "original-cashier",
		LastUpdatedAt: createdAt,
		LastUpdatedBy: "original-cashier",
	}

	updated := validPayment()
	updated.PaymentID = "pay-1"
	updated.CashierID = "someone-else"
	updated.AmountPaid = decimal.NewFromInt(1500)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, "pay-1").Return(&existing, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.PaymentRecord) bool {
		return p.CashierID == "original-cashier" && p.CreatedBy == "original-cashier" && p.CreatedAt.Equal(createdAt)
	})).Return(nil).Once()

	result, err := suite.service.UpdatePayment(ctx, updated)

	suite.Require().NoError(err)
	suite.Equal("original-cashier", result.CashierID)
	suite.True(result.AmountPaid.Equal(decimal.NewFromInt(1500)))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestUpdatePayment_NotFound() {
	ctx := context.Background()
	payment := validPayment()
	payment.PaymentID = "missing"

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.UpdatePayment(ctx, payment)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListPayments Tests ---
func (suite *TreasuryServiceTestSuite) TestListPayments_InvertedRange() {
	ctx := context.Background()
	from := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	payments, token, err := suite.service.ListPayments(ctx, from, to, "", "", 50, "")

	suite.Require().Error(err)
	suite.Nil(payments)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- RecordSurplus Tests ---
func (suite *TreasuryServiceTestSuite) TestRecordSurplus_SplitsVAT() {
	ctx := context.Background()
	surplus := domain.Surplus{
		ClientID:    "client-1",
		GrossAmount: decimal.NewFromInt(118),
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CashierID:   "cashier-1",
	}

	suite.mockSurplusRepo.On("SaveSurplus", ctx, mock.MatchedBy(func(s domain.Surplus) bool {
		return s.NetAmount.Equal(decimal.NewFromInt(100)) && s.VATAmount.Equal(decimal.NewFromInt(18))
	})).Return(nil).Once()

	created, err := suite.service.RecordSurplus(ctx, surplus)

	suite.Require().NoError(err)
	suite.True(created.NetAmount.Equal(decimal.NewFromInt(100)))
	suite.True(created.VATAmount.Equal(decimal.NewFromInt(18)))
	suite.NotEmpty(created.SurplusID)
	suite.mockSurplusRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestRecordSurplus_NonPositiveGross() {
	ctx := context.Background()
	surplus := domain.Surplus{GrossAmount: decimal.Zero, CashierID: "cashier-1"}

	created, err := suite.service.RecordSurplus(ctx, surplus)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- RunDailyClosure Tests ---
func (suite *TreasuryServiceTestSuite) TestRunDailyClosure_FoldsRowsPerCashier() {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	summary := []domain.CashierSummaryRow{
		{CashierID: "cashier-1", PaymentMode: "CHEQUE", TotalPaid: decimal.NewFromInt(500), TotalSurplus: decimal.NewFromInt(50), PaymentCount: 2},
		{CashierID: "cashier-2", PaymentMode: "ESPECES", TotalPaid: decimal.NewFromInt(300), TotalSurplus: decimal.Zero, PaymentCount: 1},
		{CashierID: "cashier-1", PaymentMode: "ESPECES", TotalPaid: decimal.NewFromInt(200), TotalSurplus: decimal.NewFromInt(10), PaymentCount: 3},
	}

	suite.mockReportingRepo.On("GetCashierSummaryData", ctx, day).Return(summary, nil).Once()
	suite.mockClosureRepo.On("SaveClosures", ctx, day, mock.AnythingOfType("[]domain.DailyClosure")).Return(nil).Once()

	closures, err := suite.service.RunDailyClosure(ctx, day)

	suite.Require().NoError(err)
	suite.Require().Len(closures, 2)

	// One row per cashier, first-seen order, modes folded together.
	suite.Equal("cashier-1", closures[0].CashierID)
	suite.True(closures[0].TotalPaid.Equal(decimal.NewFromInt(700)))
	suite.True(closures[0].TotalSurplus.Equal(decimal.NewFromInt(60)))
	suite.Equal(5, closures[0].PaymentCount)

	suite.Equal("cashier-2", closures[1].CashierID)
	suite.True(closures[1].TotalPaid.Equal(decimal.NewFromInt(300)))
	suite.Equal(1, closures[1].PaymentCount)

	suite.mockClosureRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestRunDailyClosure_EmptyDay() {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	suite.mockReportingRepo.On("GetCashierSummaryData", ctx, day).Return([]domain.CashierSummaryRow{}, nil).Once()
	suite.mockClosureRepo.On("SaveClosures", ctx, day, mock.AnythingOfType("[]domain.DailyClosure")).Return(nil).Once()

	closures, err := suite.service.RunDailyClosure(ctx, day)

	suite.Require().NoError(err)
	suite.Empty(closures)
}

func TestTreasuryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TreasuryServiceTestSuite))
}
