package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/utils/grouping"
)

// ReportingService implements the report aggregations. It reads flat rows
// from the reporting repository and groups them in memory.
type ReportingService struct {
	BaseService
	reporting     portsrepo.ReportingRepository
	referenceRepo portsrepo.ReferenceReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reporting portsrepo.ReportingRepository, referenceRepo portsrepo.ReferenceReader) *ReportingService {
	return &ReportingService{
		reporting:     reporting,
		referenceRepo: referenceRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.ReportingService = (*ReportingService)(nil)

// BankPaymentReport loads the payments of a range and groups them into the
// bank / payment-mode / records tree.
func (s *ReportingService) BankPaymentReport(ctx context.Context, from, to time.Time, bankID, cashierID string) ([]*domain.BankReportGroup, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}

	payments, err := s.reporting.GetPaymentsForRange(ctx, from, to, bankID, cashierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for bank report: %w", err)
	}

	report := grouping.GroupPaymentsByBank(payments)
	s.LogDebug(ctx, "bank payment report built", "payments", len(payments), "banks", len(report))
	return report, nil
}

// ExitReport loads the stock exits of a range and groups them by
// destination.
func (s *ReportingService) ExitReport(ctx context.Context, from, to time.Time, storeID string) ([]*domain.DestinationGroup, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}

	exits, err := s.reporting.GetExitsForRange(ctx, from, to, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exits for report: %w", err)
	}
	return grouping.GroupExitsByDestination(exits), nil
}

// StockLedger builds the fiche de stock of one article over a range.
func (s *ReportingService) StockLedger(ctx context.Context, articleID, storeID string, from, to time.Time) (*domain.StockLedger, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}
	if _, err := s.referenceRepo.FindArticleByID(ctx, articleID); err != nil {
		return nil, fmt.Errorf("article %s: %w", articleID, err)
	}

	opening, movements, err := s.reporting.GetStockLedgerData(ctx, articleID, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger data: %w", err)
	}

	ledger := grouping.BuildStockLedger(articleID, opening, movements)
	return &ledger, nil
}

// CashierSummary totals one day's receipts per cashier and mode.
func (s *ReportingService) CashierSummary(ctx context.Context, day time.Time) ([]domain.CashierSummaryRow, error) {
	return s.reporting.GetCashierSummaryData(ctx, day)
}

// Dashboard loads the landing-page sections concurrently. Each section
// fails independently; a failed section leaves its slot empty and is named
// in FailedSections so the page can still render the rest.
func (s *ReportingService) Dashboard(ctx context.Context, day time.Time) (*domain.DashboardSnapshot, error) {
	snapshot := &domain.DashboardSnapshot{}

	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func(section string, err error) {
		s.LogError(ctx, err, "dashboard section failed", "section", section)
		mu.Lock()
		snapshot.FailedSections = append(snapshot.FailedSections, section)
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		banks, err := s.referenceRepo.ListBanks(ctx)
		if err != nil {
			fail("banks", err)
			return
		}
		snapshot.Banks = banks
	}()
	go func() {
		defer wg.Done()
		modes, err := s.referenceRepo.ListPaymentModes(ctx)
		if err != nil {
			fail("paymentModes", err)
			return
		}
		snapshot.PaymentModes = modes
	}()
	go func() {
		defer wg.Done()
		stores, err := s.referenceRepo.ListStores(ctx)
		if err != nil {
			fail("stores", err)
			return
		}
		snapshot.Stores = stores
	}()
	go func() {
		defer wg.Done()
		summary, err := s.reporting.GetCashierSummaryData(ctx, day)
		if err != nil {
			fail("cashierSummary", err)
			return
		}
		snapshot.CashierSummary = summary
	}()

	wg.Wait()
	return snapshot, nil
}
