package amqp

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewPaymentRecordedMessage(t *testing.T) {
	amount := decimal.RequireFromString("1500.50")

	msg := NewPaymentRecordedMessage("pay-1", "cashier-1", "bank-1", amount)

	if msg.PaymentID != "pay-1" {
		t.Errorf("NewPaymentRecordedMessage() PaymentID = %v, want pay-1", msg.PaymentID)
	}
	if msg.CashierID != "cashier-1" {
		t.Errorf("NewPaymentRecordedMessage() CashierID = %v, want cashier-1", msg.CashierID)
	}
	if !msg.AmountPaid.Equal(amount) {
		t.Errorf("NewPaymentRecordedMessage() AmountPaid = %v, want %v", msg.AmountPaid, amount)
	}
	if msg.Timestamp.IsZero() {
		t.Error("NewPaymentRecordedMessage() Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("NewPaymentRecordedMessage() Timestamp should be recent")
	}
}

func TestPaymentRecordedMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	msg := &PaymentRecordedMessage{
		PaymentID:  "pay-1",
		CashierID:  "cashier-1",
		BankID:     "bank-1",
		AmountPaid: decimal.RequireFromString("1500.50"),
		Timestamp:  timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsedMsg, err := PaymentRecordedMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("PaymentRecordedMessageFromJSON() error = %v", err)
	}

	if parsedMsg.PaymentID != msg.PaymentID {
		t.Errorf("Parsed PaymentID = %v, want %v", parsedMsg.PaymentID, msg.PaymentID)
	}
	if parsedMsg.BankID != msg.BankID {
		t.Errorf("Parsed BankID = %v, want %v", parsedMsg.BankID, msg.BankID)
	}
	if !parsedMsg.AmountPaid.Equal(msg.AmountPaid) {
		t.Errorf("Parsed AmountPaid = %v, want %v", parsedMsg.AmountPaid, msg.AmountPaid)
	}
	if !parsedMsg.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsedMsg.Timestamp, msg.Timestamp)
	}
}

func TestPaymentRecordedMessageFromJSON_Invalid(t *testing.T) {
	if _, err := PaymentRecordedMessageFromJSON([]byte("{not json")); err == nil {
		t.Error("PaymentRecordedMessageFromJSON() should fail on malformed input")
	}
}
