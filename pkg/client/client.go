// Package client is a thin REST client over the report endpoints. It mirrors
// the search semantics of the back-office screens: each searcher tags its
// requests with a monotonically increasing sequence number and only the
// latest search may update its state, so a slow response from an earlier
// search can never clobber a newer result.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// ErrSuperseded reports that a newer search was issued before this one
// finished. The response is discarded; the searcher state already belongs
// to the later search.
var ErrSuperseded = errors.New("search superseded by a newer one")

// PaymentRecord is one settled payment as reported by the service.
type PaymentRecord struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoiceID"`
	PaymentType   string          `json:"paymentType"`
	PaymentMode   string          `json:"paymentMode"`
	BankID        string          `json:"bankID"`
	BankName      string          `json:"bankName"`
	ClientID      string          `json:"clientID"`
	ClientName    string          `json:"clientName"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	SurplusAmount decimal.Decimal `json:"surplusAmount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	CashierID     string          `json:"cashierID"`
	Reference     string          `json:"reference"`
}

// PaymentModeGroup is one payment-mode bucket inside a bank group.
type PaymentModeGroup struct {
	Mode          string          `json:"mode"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalInvoiced decimal.Decimal `json:"totalInvoiced"`
	TotalSurplus  decimal.Decimal `json:"totalSurplus"`
	Items         []PaymentRecord `json:"items"`
}

// BankReportGroup is one bank bucket of the bank payment report.
type BankReportGroup struct {
	BankName      string             `json:"bankName"`
	TotalPaid     decimal.Decimal    `json:"totalPaid"`
	TotalInvoiced decimal.Decimal    `json:"totalInvoiced"`
	TotalSurplus  decimal.Decimal    `json:"totalSurplus"`
	Modes         []PaymentModeGroup `json:"modes"`
}

// BankReportQuery carries the search filters of the bank payment report.
type BankReportQuery struct {
	From      time.Time
	To        time.Time
	BankID    string
	CashierID string
}

// Client calls the report endpoints of one service instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a client for the service at baseURL, authenticating every
// request with the given bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BankPaymentReport fetches the grouped bank payment report for a range.
func (c *Client) BankPaymentReport(ctx context.Context, query BankReportQuery) ([]BankReportGroup, error) {
	params := url.Values{}
	params.Set("from", query.From.Format("2006-01-02"))
	params.Set("to", query.To.Format("2006-01-02"))
	if query.BankID != "" {
		params.Set("bankID", query.BankID)
	}
	if query.CashierID != "" {
		params.Set("cashierID", query.CashierID)
	}

	var groups []BankReportGroup
	if err := c.get(ctx, "/api/v1/reports/bank-payments", params, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// PaymentSearcher runs bank payment report searches with latest-search-wins
// semantics. It is safe for concurrent use.
type PaymentSearcher struct {
	client *Client
	seq    atomic.Uint64

	mu     sync.RWMutex
	latest []BankReportGroup
}

// NewPaymentSearcher builds a searcher backed by the given client.
func NewPaymentSearcher(c *Client) *PaymentSearcher {
	return &PaymentSearcher{client: c}
}

// Search fetches the report for the query. If a newer Search was issued
// while this one was in flight, the response is discarded and ErrSuperseded
// is returned. A fetch error leaves the searcher state untouched and is
// returned as is; it is never retried.
func (s *PaymentSearcher) Search(ctx context.Context, query BankReportQuery) ([]BankReportGroup, error) {
	id := s.seq.Add(1)

	groups, err := s.client.BankPaymentReport(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.seq.Load() {
		return nil, ErrSuperseded
	}
	s.latest = groups
	return groups, nil
}

// Latest returns the result of the most recent successful search, or nil
// if none completed yet.
func (s *PaymentSearcher) Latest() []BankReportGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
