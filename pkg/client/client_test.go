package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture(bankName string) []BankReportGroup {
	return []BankReportGroup{
		{
			BankName:      bankName,
			TotalPaid:     decimal.NewFromInt(1000),
			TotalInvoiced: decimal.NewFromInt(900),
			TotalSurplus:  decimal.NewFromInt(100),
			Modes: []PaymentModeGroup{
				{Mode: "CHEQUE", TotalPaid: decimal.NewFromInt(1000)},
			},
		},
	}
}

func TestBankPaymentReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/reports/bank-payments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-03-31", r.URL.Query().Get("to"))
		assert.Equal(t, "bank-1", r.URL.Query().Get("bankID"))

		json.NewEncoder(w).Encode(reportFixture("BANCOBU"))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token")
	groups, err := c.BankPaymentReport(context.Background(), BankReportQuery{
		From:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		BankID: "bank-1",
	})

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "BANCOBU", groups[0].BankName)
	assert.True(t, groups[0].TotalPaid.Equal(decimal.NewFromInt(1000)))
}

func TestBankPaymentReportServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token")
	groups, err := c.BankPaymentReport(context.Background(), BankReportQuery{From: time.Now(), To: time.Now()})

	require.Error(t, err)
	assert.Nil(t, groups)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestSearcherLatestWins(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bank := r.URL.Query().Get("bankID")
		if bank == "slow" {
			<-release
		}
		json.NewEncoder(w).Encode(reportFixture(bank))
	}))
	defer srv.Close()

	s := NewPaymentSearcher(New(srv.URL, "test-token"))

	slowDone := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), BankReportQuery{From: time.Now(), To: time.Now(), BankID: "slow"})
		slowDone <- err
	}()

	// Let the slow search reach the server before issuing the next one.
	time.Sleep(50 * time.Millisecond)

	groups, err := s.Search(context.Background(), BankReportQuery{From: time.Now(), To: time.Now(), BankID: "fast"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "fast", groups[0].BankName)

	close(release)
	err = <-slowDone
	require.ErrorIs(t, err, ErrSuperseded)

	// The stale response must not have replaced the newer result.
	latest := s.Latest()
	require.Len(t, latest, 1)
	assert.Equal(t, "fast", latest[0].BankName)
}

func TestSearcherFailureKeepsState(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, `{"error":"unavailable"}`, http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(reportFixture("BCB"))
	}))
	defer srv.Close()

	s := NewPaymentSearcher(New(srv.URL, "test-token"))

	_, err := s.Search(context.Background(), BankReportQuery{From: time.Now(), To: time.Now()})
	require.NoError(t, err)

	fail = true
	groups, err := s.Search(context.Background(), BankReportQuery{From: time.Now(), To: time.Now()})
	require.Error(t, err)
	assert.Nil(t, groups)

	// The failed search left the previous result in place.
	latest := s.Latest()
	require.Len(t, latest, 1)
	assert.Equal(t, "BCB", latest[0].BankName)
}
