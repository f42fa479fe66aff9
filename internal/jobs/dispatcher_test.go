package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
)

type recordingConsumer struct {
	name  string
	err   error
	calls *[]string
	seen  []domain.PaymentConfirmed
}

func (c *recordingConsumer) Name() string { return c.name }

func (c *recordingConsumer) HandlePaymentConfirmed(ctx context.Context, n domain.PaymentConfirmed) error {
	*c.calls = append(*c.calls, c.name)
	c.seen = append(c.seen, n)
	return c.err
}

func newTask(t *testing.T) *asynq.Task {
	t.Helper()
	task, err := NewPaymentConfirmedTask(domain.PaymentConfirmed{
		PaymentID:        "pay-1",
		MemberID:         "member-1",
		Amount:           decimal.RequireFromString("1000.00"),
		AccountReference: "REG-0001",
		ReceiptNumber:    "QK12ABC",
	})
	require.NoError(t, err)
	return task
}

func TestDispatcherCallsConsumersInOrder(t *testing.T) {
	var calls []string
	bridge := &recordingConsumer{name: "ledger-bridge", calls: &calls}
	activation := &recordingConsumer{name: "member-activation", calls: &calls}
	d := NewDispatcher(nil, bridge, activation)

	require.NoError(t, d.ProcessTask(context.Background(), newTask(t)))

	assert.Equal(t, []string{"ledger-bridge", "member-activation"}, calls)
	require.Len(t, bridge.seen, 1)
	assert.Equal(t, "QK12ABC", bridge.seen[0].ReceiptNumber)
	assert.True(t, decimal.RequireFromString("1000").Equal(bridge.seen[0].Amount))
}

func TestDispatcherMalformedPayloadSkipsRetry(t *testing.T) {
	var calls []string
	d := NewDispatcher(nil, &recordingConsumer{name: "ledger-bridge", calls: &calls})

	err := d.ProcessTask(context.Background(), asynq.NewTask(TaskTypePaymentConfirmed, []byte("{not json")))

	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, calls)
}

func TestDispatcherValidationErrorSkipsRetry(t *testing.T) {
	var calls []string
	bridge := &recordingConsumer{name: "ledger-bridge", calls: &calls, err: apperrors.NewAccountNotFound("1120")}
	activation := &recordingConsumer{name: "member-activation", calls: &calls}
	d := NewDispatcher(nil, bridge, activation)

	err := d.ProcessTask(context.Background(), newTask(t))

	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	assert.Equal(t, []string{"ledger-bridge", "member-activation"}, calls)
}

func TestDispatcherInfrastructureErrorIsRetried(t *testing.T) {
	var calls []string
	dbDown := apperrors.NewAppError(500, "failed to begin transaction", errors.New("connection refused"))
	consumers := []portssvc.PaymentConsumer{
		&recordingConsumer{name: "ledger-bridge", calls: &calls, err: dbDown},
		&recordingConsumer{name: "member-activation", calls: &calls, err: apperrors.NewNotFound("member-1")},
	}
	d := NewDispatcher(nil, consumers...)

	err := d.ProcessTask(context.Background(), newTask(t))

	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
	assert.Len(t, calls, 2)
}

func TestNewPaymentConfirmedTaskPayload(t *testing.T) {
	task := newTask(t)
	assert.Equal(t, TaskTypePaymentConfirmed, task.Type())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, "pay-1", decoded["paymentID"])
	assert.Equal(t, "REG-0001", decoded["accountReference"])
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "pay-1", Queue: QueueDefault}, nil
}

func (f *fakeEnqueuer) Close() error { return nil }

func TestPublisherEnqueues(t *testing.T) {
	q := &fakeEnqueuer{}
	p := &Publisher{client: q}

	err := p.PublishPaymentConfirmed(context.Background(), domain.PaymentConfirmed{PaymentID: "pay-1", AccountReference: "DEP-1"})

	require.NoError(t, err)
	require.Len(t, q.tasks, 1)
	assert.Equal(t, TaskTypePaymentConfirmed, q.tasks[0].Type())
}

func TestPublisherDuplicateTaskIsNotAnError(t *testing.T) {
	p := &Publisher{client: &fakeEnqueuer{err: asynq.ErrTaskIDConflict}}

	assert.NoError(t, p.PublishPaymentConfirmed(context.Background(), domain.PaymentConfirmed{PaymentID: "pay-1"}))
}

func TestPublisherRequiresPaymentID(t *testing.T) {
	q := &fakeEnqueuer{}
	p := &Publisher{client: q}

	err := p.PublishPaymentConfirmed(context.Background(), domain.PaymentConfirmed{PaymentID: "  "})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, q.tasks)
}

func TestPublisherBrokerFailure(t *testing.T) {
	p := &Publisher{client: &fakeEnqueuer{err: errors.New("redis: connection refused")}}

	err := p.PublishPaymentConfirmed(context.Background(), domain.PaymentConfirmed{PaymentID: "pay-1"})

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
}
