package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
	"github.com/agrm/agrm_backend/internal/handlers"
	"github.com/agrm/agrm_backend/internal/middleware"
)

// --- Mock TreasuryService ---
type MockTreasuryService struct {
	mock.Mock
}

func (m *MockTreasuryService) RecordPayment(ctx context.Context, payment domain.PaymentRecord) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

func (m *MockTreasuryService) UpdatePayment(ctx context.Context, payment domain.PaymentRecord) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

func (m *MockTreasuryService) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockTreasuryService) GetPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

func (m *MockTreasuryService) ListPayments(ctx context.Context, from, to time.Time, bankID, cashierID string, limit int, nextToken string) ([]domain.PaymentRecord, string, error) {
	args := m.Called(ctx, from, to, bankID, cashierID, limit, nextToken)
	var payments []domain.PaymentRecord
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.PaymentRecord)
	}
	return payments, args.String(1), args.Error(2)
}

func (m *MockTreasuryService) RecordSurplus(ctx context.Context, surplus domain.Surplus) (*domain.Surplus, error) {
	args := m.Called(ctx, surplus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Surplus), args.Error(1)
}

func (m *MockTreasuryService) ListSurpluses(ctx context.Context, from, to time.Time) ([]domain.Surplus, error) {
	args := m.Called(ctx, from, to)
	var surpluses []domain.Surplus
	if args.Get(0) != nil {
		surpluses = args.Get(0).([]domain.Surplus)
	}
	return surpluses, args.Error(1)
}

func (m *MockTreasuryService) DeleteSurplus(ctx context.Context, surplusID string) error {
	args := m.Called(ctx, surplusID)
	return args.Error(0)
}

func (m *MockTreasuryService) RunDailyClosure(ctx context.Context, day time.Time) ([]domain.DailyClosure, error) {
	args := m.Called(ctx, day)
	var closures []domain.DailyClosure
	if args.Get(0) != nil {
		closures = args.Get(0).([]domain.DailyClosure)
	}
	return closures, args.Error(1)
}

func (m *MockTreasuryService) GetDailyClosure(ctx context.Context, day time.Time) ([]domain.DailyClosure, error) {
	args := m.Called(ctx, day)
	var closures []domain.DailyClosure
	if args.Get(0) != nil {
		closures = args.Get(0).([]domain.DailyClosure)
	}
	return closures, args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TreasuryService = (*MockTreasuryService)(nil)

// --- Test Suite ---
type TreasuryHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTreasuryService *MockTreasuryService
	jwtSecret           string
}

func (suite *TreasuryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "agrm-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TreasuryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTreasuryService = new(MockTreasuryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTreasuryRoutes(v1, suite.mockTreasuryService)
}

func (suite *TreasuryHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func createPaymentBody() dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		InvoiceID:     "inv-1",
		PaymentType:   "CASH",
		PaymentMode:   "CHEQUE",
		BankID:        "bank-1",
		BankName:      "BANCOBU",
		ClientID:      "client-1",
		ClientName:    "SOGESTAL",
		AmountPaid:    decimal.NewFromInt(1000),
		SurplusAmount: decimal.NewFromInt(100),
		PaymentDate:   "2024-03-04",
		Reference:     "REC-0001",
	}
}

// --- Test Cases ---

func (suite *TreasuryHandlerTestSuite) TestCreatePayment_Success() {
	cashierID := "cashier-1"
	body, _ := json.Marshal(createPaymentBody())

	created := &domain.PaymentRecord{PaymentID: "pay-1", Reference: "REC-0001", CashierID: cashierID}
	suite.mockTreasuryService.On("RecordPayment",
		mock.Anything,
		mock.MatchedBy(func(p domain.PaymentRecord) bool {
			// Cashier comes from the token, never from the body.
			return p.CashierID == cashierID && p.Reference == "REC-0001"
		}),
	).Return(created, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/payments", body, cashierID))

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody domain.PaymentRecord
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal("pay-1", responseBody.PaymentID)
	suite.mockTreasuryService.AssertExpectations(suite.T())
}

func (suite *TreasuryHandlerTestSuite) TestCreatePayment_DuplicateReference() {
	body, _ := json.Marshal(createPaymentBody())

	suite.mockTreasuryService.On("RecordPayment", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/payments", body, "cashier-1"))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TreasuryHandlerTestSuite) TestCreatePayment_MissingReference() {
	payment := createPaymentBody()
	payment.Reference = ""
	body, _ := json.Marshal(payment)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/payments", body, "cashier-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTreasuryService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything)
}

func (suite *TreasuryHandlerTestSuite) TestCreatePayment_NoToken() {
	body, _ := json.Marshal(createPaymentBody())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTreasuryService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything)
}

func (suite *TreasuryHandlerTestSuite) TestListPayments_Success() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	payments := []domain.PaymentRecord{{PaymentID: "pay-1"}, {PaymentID: "pay-2"}}

	suite.mockTreasuryService.On("ListPayments", mock.Anything, from, to, "bank-1", "", 10, "").
		Return(payments, "next-123", nil).Once()

	w := httptest.NewRecorder()
	url := "/api/v1/payments?from=2024-03-01&to=2024-03-31&bankID=bank-1&limit=10"
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url, nil, "cashier-1"))

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListPaymentsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody.Payments, 2)
	suite.Equal("next-123", responseBody.NextToken)
}

func (suite *TreasuryHandlerTestSuite) TestListPayments_MissingRange() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/payments?from=2024-03-01", nil, "cashier-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTreasuryService.AssertNotCalled(suite.T(), "ListPayments",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TreasuryHandlerTestSuite) TestGetPayment_NotFound() {
	suite.mockTreasuryService.On("GetPayment", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/payments/missing", nil, "cashier-1"))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TreasuryHandlerTestSuite) TestDeletePayment_NoContent() {
	suite.mockTreasuryService.On("DeletePayment", mock.Anything, "pay-1").Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/payments/pay-1", nil, "cashier-1"))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *TreasuryHandlerTestSuite) TestCreateSurplus_Success() {
	cashierID := "cashier-1"
	body, _ := json.Marshal(dto.CreateSurplusRequest{
		ClientID:    "client-1",
		GrossAmount: decimal.NewFromInt(118),
		EntryDate:   "2024-03-04",
	})

	created := &domain.Surplus{SurplusID: "sur-1", CashierID: cashierID}
	suite.mockTreasuryService.On("RecordSurplus", mock.Anything, mock.MatchedBy(func(s domain.Surplus) bool {
		return s.CashierID == cashierID && s.GrossAmount.Equal(decimal.NewFromInt(118))
	})).Return(created, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/surpluses", body, cashierID))

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockTreasuryService.AssertExpectations(suite.T())
}

func (suite *TreasuryHandlerTestSuite) TestRunClosure_DayParam() {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	closures := []domain.DailyClosure{{CashierID: "cashier-1"}}

	suite.mockTreasuryService.On("RunDailyClosure", mock.Anything, day).Return(closures, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/closures/run?day=2024-03-04", nil, "cashier-1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTreasuryService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTreasuryHandler(t *testing.T) {
	suite.Run(t, new(TreasuryHandlerTestSuite))
}
