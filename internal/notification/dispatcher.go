package notification

import (
	"context"
	"encoding/json"
	"time"

	"go-hrfine/internal/events"
	"go-hrfine/internal/messaging/outbox"
	"go-hrfine/internal/shared/contextutil"

	"github.com/google/uuid"
)

type Message struct {
	Kind    string
	EmpID   string
	To      string
	Subject string
	Body    string
}

// Dispatcher hands a rendered mail to its transport.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// DirectDispatcher sends inline.
type DirectDispatcher struct {
	sender Sender
}

func NewDirectDispatcher(sender Sender) *DirectDispatcher {
	return &DirectDispatcher{sender: sender}
}

func (d *DirectDispatcher) Dispatch(ctx context.Context, msg Message) error {
	return d.sender.Send(ctx, msg.To, msg.Subject, msg.Body)
}

// OutboxDispatcher stores an email.requested event for the worker to relay.
type OutboxDispatcher struct {
	repo  outbox.Repository
	topic string
	now   func() time.Time
}

func NewOutboxDispatcher(repo outbox.Repository, topic string) *OutboxDispatcher {
	if topic == "" {
		topic = events.EmailRequestedTopic
	}
	return &OutboxDispatcher{repo: repo, topic: topic, now: time.Now}
}

func (d *OutboxDispatcher) Dispatch(ctx context.Context, msg Message) error {
	event := events.EmailRequestedEvent{
		EventType:  events.EmailRequestedType,
		Kind:       msg.Kind,
		EmpID:      msg.EmpID,
		To:         msg.To,
		Subject:    msg.Subject,
		Body:       msg.Body,
		RequestID:  contextutil.GetRequestID(ctx),
		OccurredAt: d.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	row := &outbox.Event{
		ID:            uuid.NewString(),
		AggregateType: "user",
		AggregateID:   msg.EmpID,
		EventType:     events.EmailRequestedType,
		Topic:         d.topic,
		Payload:       payload,
		Status:        outbox.StatusPending,
	}
	if event.RequestID != "" {
		row.RequestID = &event.RequestID
	}
	return d.repo.Create(ctx, row)
}
