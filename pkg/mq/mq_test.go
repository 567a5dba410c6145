package mq

import (
	"errors"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDelivery struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (f *fakeDelivery) Ack(multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeDelivery) Nack(multiple, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func TestSettle(t *testing.T) {
	t.Run("success acks", func(t *testing.T) {
		d := &fakeDelivery{}
		assert.Equal(t, Acked, Settle(d, nil))
		assert.True(t, d.acked)
		assert.False(t, d.nacked)
	})

	t.Run("temporary failure is requeued", func(t *testing.T) {
		d := &fakeDelivery{}
		assert.Equal(t, Requeued, Settle(d, fmt.Errorf("dispatch: %w", Temporary(errors.New("timeout")))))
		assert.True(t, d.nacked)
		assert.True(t, d.requeued)
	})

	t.Run("permanent failure is dead-lettered", func(t *testing.T) {
		d := &fakeDelivery{}
		assert.Equal(t, DeadLettered, Settle(d, errors.New("bad payload")))
		assert.True(t, d.nacked)
		assert.False(t, d.requeued)
	})
}

func TestTempError(t *testing.T) {
	cause := errors.New("broker down")
	err := Temporary(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "broker down", err.Error())
	assert.True(t, IsTemporary(err))
	assert.False(t, IsTemporary(cause))
}

func TestQueueArgs(t *testing.T) {
	args := queueArgs("finance.reminder")

	assert.Equal(t, "", args["x-dead-letter-exchange"])
	assert.Equal(t, "finance.reminder.dead", args["x-dead-letter-routing-key"])
	assert.NoError(t, args.Validate())
}

func TestPublishing(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	t.Run("keeps the caller's message id", func(t *testing.T) {
		p := publishing(Message{ID: "evt-1", Body: []byte(`{}`), Headers: map[string]any{"reminder_type": "overdue"}}, now)

		assert.Equal(t, "evt-1", p.MessageId)
		assert.Equal(t, amqp.Persistent, p.DeliveryMode)
		assert.Equal(t, "application/json", p.ContentType)
		assert.Equal(t, now.UTC(), p.Timestamp)
		assert.Equal(t, "overdue", p.Headers["reminder_type"])
	})

	t.Run("generates an id when missing", func(t *testing.T) {
		p := publishing(Message{Body: []byte(`{}`)}, now)
		require.NotEmpty(t, p.MessageId)
		assert.NotEqual(t, p.MessageId, publishing(Message{}, now).MessageId)
	})
}
