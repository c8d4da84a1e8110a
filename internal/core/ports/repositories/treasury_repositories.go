package repositories

import (
	"context"
	"time"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment records.
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment record.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)

	// ListPayments retrieves payments in a date range with optional bank and
	// cashier filters, keyset-paginated. It returns the records and the next
	// page token (empty when exhausted).
	ListPayments(ctx context.Context, from, to time.Time, bankID, cashierID string, limit int, nextToken string) ([]domain.PaymentRecord, string, error)
}

// PaymentWriter defines write operations for payment records.
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.PaymentRecord) error
	UpdatePayment(ctx context.Context, payment domain.PaymentRecord) error
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// SurplusReader defines read operations for surplus (excédent) entries.
type SurplusReader interface {
	ListSurpluses(ctx context.Context, from, to time.Time) ([]domain.Surplus, error)
}

// SurplusWriter defines write operations for surplus entries.
type SurplusWriter interface {
	SaveSurplus(ctx context.Context, surplus domain.Surplus) error
	DeleteSurplus(ctx context.Context, surplusID string) error
}

// SurplusRepositoryFacade combines all surplus repository interfaces.
type SurplusRepositoryFacade interface {
	SurplusReader
	SurplusWriter
}

// ClosureReader defines read operations for daily closures.
type ClosureReader interface {
	ListClosures(ctx context.Context, day time.Time) ([]domain.DailyClosure, error)
}

// ClosureWriter defines write operations for daily closures.
type ClosureWriter interface {
	// SaveClosures persists the closure rows of one day atomically, replacing
	// any previous closure of the same day.
	SaveClosures(ctx context.Context, day time.Time, closures []domain.DailyClosure) error
}

// ClosureRepositoryFacade combines all closure repository interfaces.
type ClosureRepositoryFacade interface {
	ClosureReader
	ClosureWriter
}
