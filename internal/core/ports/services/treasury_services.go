package services

import (
	"context"
	"time"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// TreasuryService defines cashier and treasury operations.
type TreasuryService interface {
	// RecordPayment validates and persists a payment. A payment whose
	// surplus exceeds the amount paid is rejected with ErrValidation, a
	// reused receipt reference with ErrDuplicate.
	RecordPayment(ctx context.Context, payment domain.PaymentRecord) (*domain.PaymentRecord, error)
	UpdatePayment(ctx context.Context, payment domain.PaymentRecord) (*domain.PaymentRecord, error)
	DeletePayment(ctx context.Context, paymentID string) error
	GetPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)
	ListPayments(ctx context.Context, from, to time.Time, bankID, cashierID string, limit int, nextToken string) ([]domain.PaymentRecord, string, error)

	RecordSurplus(ctx context.Context, surplus domain.Surplus) (*domain.Surplus, error)
	ListSurpluses(ctx context.Context, from, to time.Time) ([]domain.Surplus, error)
	DeleteSurplus(ctx context.Context, surplusID string) error

	// RunDailyClosure computes and persists the per-cashier closure rows of
	// one day, replacing a previous run for the same day.
	RunDailyClosure(ctx context.Context, day time.Time) ([]domain.DailyClosure, error)
	GetDailyClosure(ctx context.Context, day time.Time) ([]domain.DailyClosure, error)
}
