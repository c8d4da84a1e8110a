package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/utils/calc"
)

// PaymentEventPublisher notifies downstream consumers of recorded payments.
// A nil publisher disables notifications without affecting persistence.
type PaymentEventPublisher interface {
	PublishPaymentRecorded(ctx context.Context, paymentID, cashierID, bankID string, amountPaid decimal.Decimal) error
}

// TreasuryService implements cashier and treasury operations.
type TreasuryService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	surplusRepo portsrepo.SurplusRepositoryFacade
	closureRepo portsrepo.ClosureRepositoryFacade
	reporting   portsrepo.ReportingRepository
	publisher   PaymentEventPublisher
}

// NewTreasuryService creates a new TreasuryService.
func NewTreasuryService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	surplusRepo portsrepo.SurplusRepositoryFacade,
	closureRepo portsrepo.ClosureRepositoryFacade,
	reporting portsrepo.ReportingRepository,
	publisher PaymentEventPublisher,
) *TreasuryService {
	return &TreasuryService{
		paymentRepo: paymentRepo,
		surplusRepo: surplusRepo,
		closureRepo: closureRepo,
		reporting:   reporting,
		publisher:   publisher,
	}
}

// Ensure implementation matches interface
var _ portssvc.TreasuryService = (*TreasuryService)(nil)

func validatePayment(payment domain.PaymentRecord) error {
	if payment.AmountPaid.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount paid must be positive", apperrors.ErrValidation)
	}
	if payment.SurplusAmount.IsNegative() {
		return fmt.Errorf("%w: surplus amount cannot be negative", apperrors.ErrValidation)
	}
	if payment.SurplusAmount.GreaterThan(payment.AmountPaid) {
		return fmt.Errorf("%w: surplus amount cannot exceed amount paid", apperrors.ErrValidation)
	}
	if payment.PaymentType != domain.PaymentCash && payment.PaymentType != domain.PaymentCredit {
		return fmt.Errorf("%w: unknown payment type %q", apperrors.ErrValidation, payment.PaymentType)
	}
	return nil
}

// RecordPayment validates and persists a payment, then notifies consumers.
func (s *TreasuryService) RecordPayment(ctx context.Context, payment domain.PaymentRecord) (*domain.PaymentRecord, error) {
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	now := time.Now()
	payment.PaymentID = uuid.NewString()
	payment.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     payment.CashierID,
		LastUpdatedAt: now,
		LastUpdatedBy: payment.CashierID,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.LogInfo(ctx, "payment recorded", "payment_id", payment.PaymentID, "amount", payment.AmountPaid.String())

	if s.publisher != nil {
		if err := s.publisher.PublishPaymentRecorded(ctx, payment.PaymentID, payment.CashierID, payment.BankID, payment.AmountPaid); err != nil {
			// The payment is already persisted; a failed notification is
			// logged and swallowed.
			s.LogError(ctx, err, "failed to publish payment recorded event", "payment_id", payment.PaymentID)
		}
	}

	return &payment, nil
}

// UpdatePayment validates and overwrites an existing payment.
func (s *TreasuryService) UpdatePayment(ctx context.Context, payment domain.PaymentRecord) (*domain.PaymentRecord, error) {
	if payment.PaymentID == "" {
		return nil, fmt.Errorf("%w: payment ID is required", apperrors.ErrValidation)
	}
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	existing, err := s.paymentRepo.FindPaymentByID(ctx, payment.PaymentID)
	if err != nil {
		return nil, err
	}

	payment.AuditFields = existing.AuditFields
	payment.LastUpdatedAt = time.Now()
	payment.CashierID = existing.CashierID

	if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return &payment, nil
}

// DeletePayment removes a payment record.
func (s *TreasuryService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return err
	}
	s.LogInfo(ctx, "payment deleted", "payment_id", paymentID)
	return nil
}

// GetPayment retrieves one payment record.
func (s *TreasuryService) GetPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// ListPayments retrieves payments for a range with optional filters.
func (s *TreasuryService) ListPayments(ctx context.Context, from, to time.Time, bankID, cashierID string, limit int, nextToken string) ([]domain.PaymentRecord, string, error) {
	if to.Before(from) {
		return nil, "", fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}
	return s.paymentRepo.ListPayments(ctx, from, to, bankID, cashierID, limit, nextToken)
}

// RecordSurplus splits the gross amount into net and VAT and persists the
// excédent entry.
func (s *TreasuryService) RecordSurplus(ctx context.Context, surplus domain.Surplus) (*domain.Surplus, error) {
	if surplus.GrossAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: gross amount must be positive", apperrors.ErrValidation)
	}

	surplus.NetAmount, surplus.VATAmount = calc.VATSplit(surplus.GrossAmount, calc.VATRate)

	now := time.Now()
	surplus.SurplusID = uuid.NewString()
	surplus.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     surplus.CashierID,
		LastUpdatedAt: now,
		LastUpdatedBy: surplus.CashierID,
	}

	if err := s.surplusRepo.SaveSurplus(ctx, surplus); err != nil {
		return nil, fmt.Errorf("failed to record surplus: %w", err)
	}

	s.LogInfo(ctx, "surplus recorded", "surplus_id", surplus.SurplusID, "gross", surplus.GrossAmount.String())
	return &surplus, nil
}

// ListSurpluses retrieves the excédent entries of a range.
func (s *TreasuryService) ListSurpluses(ctx context.Context, from, to time.Time) ([]domain.Surplus, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}
	return s.surplusRepo.ListSurpluses(ctx, from, to)
}

// DeleteSurplus removes an excédent entry.
func (s *TreasuryService) DeleteSurplus(ctx context.Context, surplusID string) error {
	return s.surplusRepo.DeleteSurplus(ctx, surplusID)
}

// RunDailyClosure computes the per-cashier totals of one day from the
// summary query and persists them, replacing a previous run of the same day.
func (s *TreasuryService) RunDailyClosure(ctx context.Context, day time.Time) ([]domain.DailyClosure, error) {
	day = day.Truncate(24 * time.Hour)

	summary, err := s.reporting.GetCashierSummaryData(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load cashier summary for closure: %w", err)
	}

	// The summary is one row per cashier and mode; fold to one closure row
	// per cashier preserving first-seen order.
	index := make(map[string]*domain.DailyClosure)
	order := make([]string, 0)
	now := time.Now()
	for _, row := range summary {
		closure, ok := index[row.CashierID]
		if !ok {
			closure = &domain.DailyClosure{
				ClosureID:   uuid.NewString(),
				CashierID:   row.CashierID,
				ClosureDate: day,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     "system",
					LastUpdatedAt: now,
					LastUpdatedBy: "system",
				},
			}
			index[row.CashierID] = closure
			order = append(order, row.CashierID)
		}
		closure.TotalPaid = closure.TotalPaid.Add(row.TotalPaid)
		closure.TotalSurplus = closure.TotalSurplus.Add(row.TotalSurplus)
		closure.PaymentCount += row.PaymentCount
	}

	closures := make([]domain.DailyClosure, 0, len(order))
	for _, cashierID := range order {
		closures = append(closures, *index[cashierID])
	}

	if err := s.closureRepo.SaveClosures(ctx, day, closures); err != nil {
		return nil, fmt.Errorf("failed to persist daily closure: %w", err)
	}

	s.LogInfo(ctx, "daily closure completed", "day", day.Format("2006-01-02"), "cashiers", len(closures))
	return closures, nil
}

// GetDailyClosure retrieves the closure rows of one day.
func (s *TreasuryService) GetDailyClosure(ctx context.Context, day time.Time) ([]domain.DailyClosure, error) {
	return s.closureRepo.ListClosures(ctx, day.Truncate(24*time.Hour))
}
