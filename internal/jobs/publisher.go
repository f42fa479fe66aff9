package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/middleware"
	"github.com/hibiken/asynq"
)

// enqueuer is the part of *asynq.Client the publisher needs.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Publisher submits payment confirmations to the queue.
type Publisher struct {
	client enqueuer
}

var _ portssvc.PaymentPublisher = (*Publisher)(nil)

// NewPublisher constructs an Asynq backed publisher.
func NewPublisher(redisOpts asynq.RedisClientOpt) *Publisher {
	return &Publisher{client: asynq.NewClient(redisOpts)}
}

// PublishPaymentConfirmed enqueues n keyed by its payment ID. Publishing the
// same payment again while the first task is retained is a no-op.
func (p *Publisher) PublishPaymentConfirmed(ctx context.Context, n domain.PaymentConfirmed) error {
	if strings.TrimSpace(n.PaymentID) == "" {
		return fmt.Errorf("%w: payment ID is required", apperrors.ErrValidation)
	}

	task, err := NewPaymentConfirmedTask(n)
	if err != nil {
		return fmt.Errorf("encode payment %s: %w", n.PaymentID, err)
	}

	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("payment_id", n.PaymentID))
	info, err := p.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueDefault),
		asynq.TaskID(n.PaymentID),
		asynq.Retention(dedupeRetention),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Info("Payment confirmation already queued")
		return nil
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to enqueue payment "+n.PaymentID, err)
	}

	logger.Info("Payment confirmation queued", slog.String("task_id", info.ID), slog.String("queue", info.Queue))
	return nil
}

// Close releases client resources.
func (p *Publisher) Close() error {
	return p.client.Close()
}
