package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/agrm/agrm_backend/internal/amqp"
	"github.com/agrm/agrm_backend/internal/platform/config"
)

// The worker tails the payment-recorded queue and writes each event to the
// structured log, giving treasury an audit trail that survives API restarts.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required to run the worker")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutdown signal received, stopping consumer...")
		cancel()
	}()

	logger.Info("Payment event worker started", slog.String("queue", cfg.AMQPQueue))

	err = amqpClient.ConsumePaymentRecorded(ctx, func(msg *amqp.PaymentRecordedMessage) error {
		logger.Info("Payment recorded",
			slog.String("payment_id", msg.PaymentID),
			slog.String("cashier_id", msg.CashierID),
			slog.String("bank_id", msg.BankID),
			slog.String("amount_paid", msg.AmountPaid.String()),
			slog.Time("recorded_at", msg.Timestamp))
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
