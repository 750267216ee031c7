package events

import "time"

const (
	EmailRequestedTopic = "hr.notification.email.requested.v1"
	EmailRequestedType  = "email.requested"
)

// EmailRequestedEvent asks the consumer to deliver one rendered mail.
type EmailRequestedEvent struct {
	EventType  string    `json:"event_type"`
	Kind       string    `json:"kind"`
	EmpID      string    `json:"emp_id"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
