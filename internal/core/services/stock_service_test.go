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

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, movementID)
	var movement *domain.StockMovement
	if args.Get(0) != nil {
		movement = args.Get(0).(*domain.StockMovement)
	}
	return movement, args.Error(1)
}

func (m *MockStockRepository) ListMovements(ctx context.Context, from, to time.Time, storeID string) ([]domain.StockMovement, error) {
	args := m.Called(ctx, from, to, storeID)
	var movements []domain.StockMovement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.StockMovement)
	}
	return movements, args.Error(1)
}

func (m *MockStockRepository) SaveMovement(ctx context.Context, movement domain.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateMovement(ctx context.Context, movement domain.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

func (m *MockStockRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.WeighbridgeTicket, error) {
	args := m.Called(ctx, ticketID)
	var ticket *domain.WeighbridgeTicket
	if args.Get(0) != nil {
		ticket = args.Get(0).(*domain.WeighbridgeTicket)
	}
	return ticket, args.Error(1)
}

func (m *MockStockRepository) ListTickets(ctx context.Context, from, to time.Time) ([]domain.WeighbridgeTicket, error) {
	args := m.Called(ctx, from, to)
	var tickets []domain.WeighbridgeTicket
	if args.Get(0) != nil {
		tickets = args.Get(0).([]domain.WeighbridgeTicket)
	}
	return tickets, args.Error(1)
}

func (m *MockStockRepository) SaveTicket(ctx context.Context, ticket domain.WeighbridgeTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockStockRepository) DeleteTicket(ctx context.Context, ticketID string) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockStockRepo     *MockStockRepository
	mockReferenceRepo *MockReferenceRepository
	service           *services.StockService
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockReferenceRepo = new(MockReferenceRepository)
	suite.service = services.NewStockService(suite.mockStockRepo, suite.mockReferenceRepo)
}

func exitMovement() domain.StockMovement {
	return domain.StockMovement{
		ArticleID:    "article-1",
		StoreID:      "store-1",
		MovementType: domain.MovementExit,
		Quantity:     decimal.NewFromInt(25),
		Destination:  "Port de Bujumbura",
		MovementDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}
}

// --- RecordMovement Tests ---
func (suite *StockServiceTestSuite) TestRecordMovement_Success() {
	ctx := context.Background()
	movement := exitMovement()

	suite.mockReferenceRepo.On("FindArticleByID", ctx, "article-1").Return(&domain.Article{ArticleID: "article-1"}, nil).Once()
	suite.mockStockRepo.On("SaveMovement", ctx, mock.MatchedBy(func(mv domain.StockMovement) bool {
		return mv.MovementID != "" && mv.MovementType == domain.MovementExit
	})).Return(nil).Once()

	created, err := suite.service.RecordMovement(ctx, movement)

	suite.Require().NoError(err)
	suite.NotEmpty(created.MovementID)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestRecordMovement_ExitWithoutDestination() {
	ctx := context.Background()
	movement := exitMovement()
	movement.Destination = ""

	created, err := suite.service.RecordMovement(ctx, movement)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestRecordMovement_NonPositiveQuantity() {
	ctx := context.Background()
	movement := exitMovement()
	movement.Quantity = decimal.Zero

	created, err := suite.service.RecordMovement(ctx, movement)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StockServiceTestSuite) TestRecordMovement_InventoryAllowsZero() {
	ctx := context.Background()
	movement := exitMovement()
	movement.MovementType = domain.MovementInventory
	movement.Quantity = decimal.Zero
	movement.Destination = ""

	suite.mockReferenceRepo.On("FindArticleByID", ctx, "article-1").Return(&domain.Article{ArticleID: "article-1"}, nil).Once()
	suite.mockStockRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()

	created, err := suite.service.RecordMovement(ctx, movement)

	suite.Require().NoError(err)
	suite.NotNil(created)
}

func (suite *StockServiceTestSuite) TestRecordMovement_UnknownMovementType() {
	ctx := context.Background()
	movement := exitMovement()
	movement.MovementType = domain.MovementType("TRANSFERT")

	created, err := suite.service.RecordMovement(ctx, movement)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StockServiceTestSuite) TestRecordMovement_UnknownArticle() {
	ctx := context.Background()
	movement := exitMovement()

	suite.mockReferenceRepo.On("FindArticleByID", ctx, "article-1").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.RecordMovement(ctx, movement)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

// --- UpdateMovement Tests ---
func (suite *StockServiceTestSuite) TestUpdateMovement_PreservesAudit() {
	ctx := context.Background()
	movement := exitMovement()
	movement.MovementID = "mov-1"

	createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	existing := exitMovement()
	existing.MovementID = "mov-1"
	existing.CreatedAt = createdAt
	existing.CreatedBy = "storekeeper-1"

	suite.mockStockRepo.On("FindMovementByID", ctx, "mov-1").Return(&existing, nil).Once()
	suite.mockStockRepo.On("UpdateMovement", ctx, mock.MatchedBy(func(mv domain.StockMovement) bool {
		return mv.CreatedAt.Equal(createdAt) && mv.CreatedBy == "storekeeper-1"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateMovement(ctx, movement)

	suite.Require().NoError(err)
	suite.Equal("storekeeper-1", updated.CreatedBy)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

// --- RecordTicket Tests ---
func (suite *StockServiceTestSuite) TestRecordTicket_DerivesNetWeight() {
	ctx := context.Background()
	ticket := domain.WeighbridgeTicket{
		VehiclePlate: "AA-123-BI",
		FirstWeight:  decimal.NewFromInt(12500),
		SecondWeight: decimal.NewFromInt(4500),
	}

	suite.mockStockRepo.On("SaveTicket", ctx, mock.AnythingOfType("domain.WeighbridgeTicket")).Return(nil).Once()

	created, err := suite.service.RecordTicket(ctx, ticket)

	suite.Require().NoError(err)
	suite.True(created.NetWeight.Equal(decimal.NewFromInt(8000)), "net weight: %s", created.NetWeight)
}

func (suite *StockServiceTestSuite) TestRecordTicket_WeighingsInEitherOrder() {
	ctx := context.Background()
	// Tare first, loaded second. Net weight is still positive.
	ticket := domain.WeighbridgeTicket{
		VehiclePlate: "AA-123-BI",
		FirstWeight:  decimal.NewFromInt(4500),
		SecondWeight: decimal.NewFromInt(12500),
	}

	suite.mockStockRepo.On("SaveTicket", ctx, mock.AnythingOfType("domain.WeighbridgeTicket")).Return(nil).Once()

	created, err := suite.service.RecordTicket(ctx, ticket)

	suite.Require().NoError(err)
	suite.True(created.NetWeight.Equal(decimal.NewFromInt(8000)))
}

func (suite *StockServiceTestSuite) TestRecordTicket_MissingPlate() {
	ctx := context.Background()
	ticket := domain.WeighbridgeTicket{
		FirstWeight:  decimal.NewFromInt(12500),
		SecondWeight: decimal.NewFromInt(4500),
	}

	created, err := suite.service.RecordTicket(ctx, ticket)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveTicket", mock.Anything, mock.Anything)
}

// --- ListMovements Tests ---
func (suite *StockServiceTestSuite) TestListMovements_InvertedRange() {
	ctx := context.Background()
	from := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	movements, err := suite.service.ListMovements(ctx, from, to, "")

	suite.Require().Error(err)
	suite.Nil(movements)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
