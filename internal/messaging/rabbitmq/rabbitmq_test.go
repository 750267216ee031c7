package rabbitmq_test

import (
	"context"
	"errors"
	"testing"

	"go-hrfine/internal/messaging/outbox"
	"go-hrfine/internal/messaging/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureChannel struct {
	key string
	msg amqp.Publishing
}

func (c *captureChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	c.key = key
	c.msg = msg
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &captureChannel{}
	pub := rabbitmq.NewPublisher(ch, "hr.notification.email.requested.v1")

	err := pub.Publish(context.Background(), outbox.Event{
		ID: "evt-1", AggregateType: "user", AggregateID: "68001",
		EventType: "email.requested", Payload: []byte(`{}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "hr.notification.email.requested.v1", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "evt-1", ch.msg.MessageId)
	assert.Equal(t, "68001", ch.msg.Headers["aggregate_id"])
}

type outcome struct {
	acked   bool
	nacked  bool
	requeue bool
}

// acker records what the consumer did with each delivery tag.
type acker struct {
	outcomes map[uint64]*outcome
}

func (a *acker) get(tag uint64) *outcome {
	if a.outcomes[tag] == nil {
		a.outcomes[tag] = &outcome{}
	}
	return a.outcomes[tag]
}

func (a *acker) Ack(tag uint64, _ bool) error {
	a.get(tag).acked = true
	return nil
}

func (a *acker) Nack(tag uint64, _ bool, requeue bool) error {
	o := a.get(tag)
	o.nacked, o.requeue = true, requeue
	return nil
}

func (a *acker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type fakeSender struct {
	fail map[string]error
}

func (s *fakeSender) Send(_ context.Context, to, _, _ string) error {
	return s.fail[to]
}

func delivery(a *acker, tag uint64, body string, redelivered bool) amqp.Delivery {
	return amqp.Delivery{Acknowledger: a, DeliveryTag: tag, Body: []byte(body), Redelivered: redelivered}
}

func TestConsumeEmailRequested(t *testing.T) {
	a := &acker{outcomes: map[uint64]*outcome{}}
	sender := &fakeSender{fail: map[string]error{"down@example.com": errors.New("smtp refused")}}

	deliveries := make(chan amqp.Delivery, 4)
	deliveries <- delivery(a, 1, `{"to":"ok@example.com","subject":"s","body":"b"}`, false)
	deliveries <- delivery(a, 2, `{{{`, false)
	deliveries <- delivery(a, 3, `{"to":"down@example.com","subject":"s","body":"b"}`, false)
	deliveries <- delivery(a, 4, `{"to":"down@example.com","subject":"s","body":"b"}`, true)
	close(deliveries)

	rabbitmq.ConsumeEmailRequested(context.Background(), deliveries, sender, zap.NewNop())

	assert.Equal(t, &outcome{acked: true}, a.outcomes[1])
	assert.Equal(t, &outcome{nacked: true}, a.outcomes[2])
	assert.Equal(t, &outcome{nacked: true, requeue: true}, a.outcomes[3])
	assert.Equal(t, &outcome{nacked: true}, a.outcomes[4])
}
