package amqp

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecordedMessage notifies downstream consumers that a payment was
// recorded. It carries only identifiers and amounts; consumers fetch the
// full record from the database.
type PaymentRecordedMessage struct {
	PaymentID  string          `json:"paymentId"`
	CashierID  string          `json:"cashierId"`
	BankID     string          `json:"bankId"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NewPaymentRecordedMessage creates a notification for one recorded payment.
func NewPaymentRecordedMessage(paymentID, cashierID, bankID string, amountPaid decimal.Decimal) *PaymentRecordedMessage {
	return &PaymentRecordedMessage{
		PaymentID:  paymentID,
		CashierID:  cashierID,
		BankID:     bankID,
		AmountPaid: amountPaid,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *PaymentRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// PaymentRecordedMessageFromJSON creates a message from JSON bytes
func PaymentRecordedMessageFromJSON(data []byte) (*PaymentRecordedMessage, error) {
	var msg PaymentRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
