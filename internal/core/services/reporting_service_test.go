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

// --- Mock ReferenceRepository (reader side, as used by ReportingService) ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	args := m.Called(ctx)
	var banks []domain.Bank
	if args.Get(0) != nil {
		banks = args.Get(0).([]domain.Bank)
	}
	return banks, args.Error(1)
}

func (m *MockReferenceRepository) ListPaymentModes(ctx context.Context) ([]domain.PaymentMode, error) {
	args := m.Called(ctx)
	var modes []domain.PaymentMode
	if args.Get(0) != nil {
		modes = args.Get(0).([]domain.PaymentMode)
	}
	return modes, args.Error(1)
}

func (m *MockReferenceRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	var stores []domain.Store
	if args.Get(0) != nil {
		stores = args.Get(0).([]domain.Store)
	}
	return stores, args.Error(1)
}

func (m *MockReferenceRepository) ListArticles(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

func (m *MockReferenceRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockReferenceRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockReferenceRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockReferenceRepository) FindEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error) {
	args := m.Called(ctx, code)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockReferenceRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	var vehicles []domain.Vehicle
	if args.Get(0) != nil {
		vehicles = args.Get(0).([]domain.Vehicle)
	}
	return vehicles, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockReferenceRepo *MockReferenceRepository
	service           *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockReferenceRepo = new(MockReferenceRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockReferenceRepo)
}

func paymentFor(bank, mode string, paid, surplus int64) domain.PaymentRecord {
	return domain.PaymentRecord{
		BankName:      bank,
		PaymentMode:   mode,
		AmountPaid:    decimal.NewFromInt(paid),
		SurplusAmount: decimal.NewFromInt(surplus),
	}
}

// --- BankPaymentReport Tests ---
func (suite *ReportingServiceTestSuite) TestBankPaymentReport_GroupsAndTotals() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	payments := []domain.PaymentRecord{
		paymentFor("BANCOBU", "CHEQUE", 1000, 100),
		paymentFor("BCB", "ESPECES", 300, 0),
		paymentFor("BANCOBU", "ESPECES", 200, 0),
		paymentFor("BANCOBU", "CHEQUE", 500, 50),
	}

	suite.mockReportingRepo.On("GetPaymentsForRange", ctx, from, to, "", "").Return(payments, nil).Once()

	report, err := suite.service.BankPaymentReport(ctx, from, to, "", "")

	suite.Require().NoError(err)
	suite.Require().Len(report, 2)

	// Banks keep first-seen order.
	suite.Equal("BANCOBU", report[0].BankName)
	suite.Equal("BCB", report[1].BankName)

	// Bank totals roll up every mode.
	suite.True(report[0].TotalPaid.Equal(decimal.NewFromInt(1700)))
	suite.True(report[0].TotalSurplus.Equal(decimal.NewFromInt(150)))
	suite.True(report[0].TotalInvoiced.Equal(decimal.NewFromInt(1550)))

	// Modes inside a bank keep first-seen order; items keep arrival order.
	suite.Require().Len(report[0].Modes, 2)
	suite.Equal("CHEQUE", report[0].Modes[0].Mode)
	suite.Equal("ESPECES", report[0].Modes[1].Mode)
	suite.Require().Len(report[0].Modes[0].Items, 2)
	suite.True(report[0].Modes[0].TotalPaid.Equal(decimal.NewFromInt(1500)))
}

func (suite *ReportingServiceTestSuite) TestBankPaymentReport_InvertedRange() {
	ctx := context.Background()
	from := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.BankPaymentReport(ctx, from, to, "", "")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetPaymentsForRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- StockLedger Tests ---
func (suite *ReportingServiceTestSuite) TestStockLedger_RunningBalance() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	movements := []domain.StockMovement{
		{MovementType: domain.MovementEntry, Quantity: decimal.NewFromInt(40)},
		{MovementType: domain.MovementExit, Quantity: decimal.NewFromInt(15)},
	}

	suite.mockReferenceRepo.On("FindArticleByID", ctx, "article-1").Return(&domain.Article{ArticleID: "article-1"}, nil).Once()
	suite.mockReportingRepo.On("GetStockLedgerData", ctx, "article-1", "store-1", from, to).Return(decimal.NewFromInt(10), movements, nil).Once()

	ledger, err := suite.service.StockLedger(ctx, "article-1", "store-1", from, to)

	suite.Require().NoError(err)
	suite.True(ledger.OpeningBalance.Equal(decimal.NewFromInt(10)))
	suite.Require().Len(ledger.Rows, 2)
	suite.True(ledger.Rows[0].Balance.Equal(decimal.NewFromInt(50)))
	suite.True(ledger.Rows[1].Balance.Equal(decimal.NewFromInt(35)))
	suite.True(ledger.ClosingBalance.Equal(decimal.NewFromInt(35)))
}

func (suite *ReportingServiceTestSuite) TestStockLedger_UnknownArticle() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockReferenceRepo.On("FindArticleByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	ledger, err := suite.service.StockLedger(ctx, "missing", "store-1", from, to)

	suite.Require().Error(err)
	suite.Nil(ledger)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetStockLedgerData", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Dashboard Tests ---
func (suite *ReportingServiceTestSuite) TestDashboard_AllSectionsLoaded() {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	banks := []domain.Bank{{Name: "BANCOBU"}}
	modes := []domain.PaymentMode{{Code: "CHEQUE", Label: "Chèque"}}
	stores := []domain.Store{{Name: "Magasin central"}}
	summary := []domain.CashierSummaryRow{{CashierID: "cashier-1", PaymentMode: "CHEQUE", TotalPaid: decimal.NewFromInt(500)}}

	suite.mockReferenceRepo.On("ListBanks", ctx).Return(banks, nil).Once()
	suite.mockReferenceRepo.On("ListPaymentModes", ctx).Return(modes, nil).Once()
	suite.mockReferenceRepo.On("ListStores", ctx).Return(stores, nil).Once()
	suite.mockReportingRepo.On("GetCashierSummaryData", ctx, day).Return(summary, nil).Once()

	snapshot, err := suite.service.Dashboard(ctx, day)

	suite.Require().NoError(err)
	suite.Equal(banks, snapshot.Banks)
	suite.Equal(modes, snapshot.PaymentModes)
	suite.Equal(stores, snapshot.Stores)
	suite.Equal(summary, snapshot.CashierSummary)
	suite.Empty(snapshot.FailedSections)
}

func (suite *ReportingServiceTestSuite) TestDashboard_SectionFailureIsIsolated() {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	banks := []domain.Bank{{Name: "BANCOBU"}}
	stores := []domain.Store{{Name: "Magasin central"}}
	summary := []domain.CashierSummaryRow{{CashierID: "cashier-1"}}

	suite.mockReferenceRepo.On("ListBanks", ctx).Return(banks, nil).Once()
	suite.mockReferenceRepo.On("ListPaymentModes", ctx).Return(nil, assert.AnError).Once()
	suite.mockReferenceRepo.On("ListStores", ctx).Return(stores, nil).Once()
	suite.mockReportingRepo.On("GetCashierSummaryData", ctx, day).Return(summary, nil).Once()

	snapshot, err := suite.service.Dashboard(ctx, day)

	// One broken section never fails the whole snapshot.
	suite.Require().NoError(err)
	suite.Equal(banks, snapshot.Banks)
	suite.Empty(snapshot.PaymentModes)
	suite.Equal(stores, snapshot.Stores)
	suite.Equal(summary, snapshot.CashierSummary)
	suite.Equal([]string{"paymentModes"}, snapshot.FailedSections)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
