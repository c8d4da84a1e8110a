package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
)

// ReferenceService implements reference-data operations.
type ReferenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceRepositoryFacade
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(referenceRepo portsrepo.ReferenceRepositoryFacade) *ReferenceService {
	return &ReferenceService{referenceRepo: referenceRepo}
}

// Ensure implementation matches interface
var _ portssvc.ReferenceService = (*ReferenceService)(nil)

func stampAudit(createdBy string) domain.AuditFields {
	now := time.Now()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     createdBy,
		LastUpdatedAt: now,
		LastUpdatedBy: createdBy,
	}
}

func (s *ReferenceService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	return s.referenceRepo.ListBanks(ctx)
}

func (s *ReferenceService) CreateBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error) {
	if bank.Name == "" {
		return nil, fmt.Errorf("%w: bank name is required", apperrors.ErrValidation)
	}
	bank.BankID = uuid.NewString()
	bank.AuditFields = stampAudit(bank.CreatedBy)
	if err := s.referenceRepo.SaveBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}
	return &bank, nil
}

func (s *ReferenceService) DeleteBank(ctx context.Context, bankID string) error {
	return s.referenceRepo.DeleteBank(ctx, bankID)
}

func (s *ReferenceService) ListPaymentModes(ctx context.Context) ([]domain.PaymentMode, error) {
	return s.referenceRepo.ListPaymentModes(ctx)
}

func (s *ReferenceService) CreatePaymentMode(ctx context.Context, mode domain.PaymentMode) (*domain.PaymentMode, error) {
	if mode.Code == "" {
		return nil, fmt.Errorf("%w: payment mode code is required", apperrors.ErrValidation)
	}
	mode.AuditFields = stampAudit(mode.CreatedBy)
	if err := s.referenceRepo.SavePaymentMode(ctx, mode); err != nil {
		return nil, fmt.Errorf("failed to create payment mode: %w", err)
	}
	return &mode, nil
}

func (s *ReferenceService) ListStores(ctx context.Context) ([]domain.Store, error) {
	return s.referenceRepo.ListStores(ctx)
}

func (s *ReferenceService) CreateStore(ctx context.Context, store domain.Store) (*domain.Store, error) {
	if store.Name == "" {
		return nil, fmt.Errorf("%w: store name is required", apperrors.ErrValidation)
	}
	store.StoreID = uuid.NewString()
	store.AuditFields = stampAudit(store.CreatedBy)
	if err := s.referenceRepo.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return &store, nil
}

func (s *ReferenceService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	return s.referenceRepo.ListArticles(ctx)
}

func (s *ReferenceService) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if article.Code == "" || article.Designation == "" {
		return nil, fmt.Errorf("%w: article code and designation are required", apperrors.ErrValidation)
	}
	article.ArticleID = uuid.NewString()
	article.AuditFields = stampAudit(article.CreatedBy)
	if err := s.referenceRepo.SaveArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return &article, nil
}

func (s *ReferenceService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.referenceRepo.ListClients(ctx)
}

func (s *ReferenceService) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	if client.Name == "" {
		return nil, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}
	client.ClientID = uuid.NewString()
	client.AuditFields = stampAudit(client.CreatedBy)
	if err := s.referenceRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

func (s *ReferenceService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.referenceRepo.ListEmployees(ctx)
}

func (s *ReferenceService) GetEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: employee matricule is required", apperrors.ErrValidation)
	}
	return s.referenceRepo.FindEmployeeByCode(ctx, code)
}

func (s *ReferenceService) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	if employee.Code == "" {
		return nil, fmt.Errorf("%w: employee matricule is required", apperrors.ErrValidation)
	}
	employee.EmployeeID = uuid.NewString()
	employee.AuditFields = stampAudit(employee.CreatedBy)
	if err := s.referenceRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

func (s *ReferenceService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.referenceRepo.ListVehicles(ctx)
}

func (s *ReferenceService) CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	if vehicle.Plate == "" {
		return nil, fmt.Errorf("%w: vehicle plate is required", apperrors.ErrValidation)
	}
	vehicle.VehicleID = uuid.NewString()
	vehicle.AuditFields = stampAudit(vehicle.CreatedBy)
	if err := s.referenceRepo.SaveVehicle(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return &vehicle, nil
}
