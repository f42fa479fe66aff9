package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/middleware"
	"github.com/hibiken/asynq"
)

// Dispatcher fans a payment confirmation out to every consumer in order.
type Dispatcher struct {
	consumers []portssvc.PaymentConsumer
	logger    *slog.Logger
}

// NewDispatcher builds the handler for TaskTypePaymentConfirmed.
func NewDispatcher(logger *slog.Logger, consumers ...portssvc.PaymentConsumer) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{consumers: consumers, logger: logger}
}

// ProcessTask implements asynq.Handler.
//
// Every consumer sees the notification even if an earlier one failed. The task
// is retried when any failure is an infrastructure error; consumers tolerate
// redelivery, so work that already succeeded is skipped on the next attempt.
// When every failure is a rule violation the task is dropped with SkipRetry.
func (d *Dispatcher) ProcessTask(ctx context.Context, t *asynq.Task) error {
	n, err := decodePaymentConfirmed(t)
	if err != nil {
		d.logger.Error("Malformed payment confirmation payload", slog.String("error", err.Error()))
		return fmt.Errorf("decode %s: %v: %w", t.Type(), err, asynq.SkipRetry)
	}

	logger := d.logger.With(
		slog.String("task_type", t.Type()),
		slog.String("payment_id", n.PaymentID),
	)
	ctx = middleware.WithLogger(ctx, logger)

	var errs []error
	retryable := false
	for _, consumer := range d.consumers {
		if err := consumer.HandlePaymentConfirmed(ctx, n); err != nil {
			logger.Warn("Payment consumer failed",
				slog.String("consumer", consumer.Name()),
				slog.String("error", err.Error()),
			)
			if !isPermanent(err) {
				retryable = true
			}
			errs = append(errs, fmt.Errorf("%s: %w", consumer.Name(), err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	joined := errors.Join(errs...)
	if retryable {
		return joined
	}
	return fmt.Errorf("%w: %w", joined, asynq.SkipRetry)
}

// isPermanent reports whether retrying cannot change the outcome.
func isPermanent(err error) bool {
	return apperrors.IsLedgerValidation(err) || errors.Is(err, apperrors.ErrValidation)
}
