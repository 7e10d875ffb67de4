package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"physioheal/models"
)

const TypeBookingEmail = "email:booking"

// NewBookingEmailTask wraps a persisted booking in an asynq task for the
// email worker.
func NewBookingEmailTask(record models.BookingRecord) (*asynq.Task, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingEmail, b), nil
}

// Queue enqueues notification work onto the asynq client.
type Queue struct {
	client *asynq.Client
}

// NewQueue returns a Queue backed by the given asynq client.
func NewQueue(client *asynq.Client) *Queue {
	return &Queue{client: client}
}

// EnqueueBookingEmail schedules the staff email for a booking. The caller has
// already persisted the record; a failure here is logged by the caller and
// never fails the booking.
func (q *Queue) EnqueueBookingEmail(record models.BookingRecord) error {
	task, err := NewBookingEmailTask(record)
	if err != nil {
		return err
	}
	_, err = q.client.Enqueue(task, asynq.MaxRetry(5))
	return err
}
