package jobs

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypePaymentConfirmed carries a completed mobile-money payment to the consumers.
	TaskTypePaymentConfirmed = "payment:confirmed"
)

// dedupeRetention keeps completed task IDs around so a repeated publish of the
// same payment is rejected by the broker instead of being processed twice.
const dedupeRetention = 24 * time.Hour

// NewPaymentConfirmedTask constructs an Asynq task.
func NewPaymentConfirmedTask(n domain.PaymentConfirmed) (*asynq.Task, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePaymentConfirmed, data), nil
}

func decodePaymentConfirmed(t *asynq.Task) (domain.PaymentConfirmed, error) {
	var n domain.PaymentConfirmed
	err := json.Unmarshal(t.Payload(), &n)
	return n, err
}
