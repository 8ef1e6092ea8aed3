package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topics for the service's event streams.
const (
	TopicBookingEvents = "booking.events"
	TopicPaymentEvents = "payment.events"
)

// Event types published by this service.
const (
	BookingRequested = "booking.requested"
	PaymentSucceeded = "payment.succeeded"
	PaymentFailed    = "payment.failed"
)

// CloudEvent is the envelope for every message on the event streams.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps the payload in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.New().String(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   raw,
	}, nil
}

// ParseCloudEvent decodes a CloudEvent from raw message bytes.
func ParseCloudEvent(data []byte) (CloudEvent, error) {
	var e CloudEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return e, nil
}

// ParseData unmarshals the event payload into target.
func (e CloudEvent) ParseData(target interface{}) error {
	return json.Unmarshal(e.Data, target)
}

// BookingRequestedEvent is published when a valid booking is submitted and
// handed off to the payment gateway.
type BookingRequestedEvent struct {
	OrderID     string    `json:"order_id"`
	VisitType   string    `json:"visit_type"`
	ServiceType string    `json:"service_type,omitempty"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	CountryCode string    `json:"country_code"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// PaymentStatusEvent is published after a verified Kashier webhook reports
// the outcome of a payment attempt.
type PaymentStatusEvent struct {
	OrderID       string    `json:"order_id"`
	PaymentStatus string    `json:"payment_status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
