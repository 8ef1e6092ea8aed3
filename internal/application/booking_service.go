package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/anees-health/service-booking/internal/domain"
	"github.com/anees-health/service-booking/internal/domain/booking"
	"github.com/anees-health/service-booking/internal/events"
	"github.com/anees-health/service-booking/internal/payment/kashier"
)

// EventPublisher is the slice of the Kafka producer the services need.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event events.CloudEvent) error
}

// QuoteDTO is the response for a quote request.
type QuoteDTO struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// BookingDTO is the response for a submitted booking: the minted order
// identifier plus everything the client needs to reach the payment page.
type BookingDTO struct {
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	PaymentURL string `json:"payment_url"`
}

// BookingService orchestrates validation, pricing and the payment handoff.
// No booking entity is persisted; the order ID and quote travel to the
// payment gateway and come back on its webhook.
type BookingService struct {
	table    booking.PricingTable
	gateway  *kashier.Client
	producer EventPublisher
	logger   *zap.Logger
}

// NewBookingService creates a BookingService.
func NewBookingService(
	table booking.PricingTable,
	gateway *kashier.Client,
	producer EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		table:    table,
		gateway:  gateway,
		producer: producer,
		logger:   logger,
	}
}

// QuoteBooking validates the selection and prices it. A non-empty error
// list means no quote is produced.
func (s *BookingService) QuoteBooking(sel booking.BookingSelection) (*QuoteDTO, []booking.FieldError) {
	if errs := booking.Validate(sel); len(errs) > 0 {
		return nil, errs
	}

	amount := booking.Calculate(sel, s.table)
	return &QuoteDTO{Amount: amount, Currency: booking.CurrencyEGP}, nil
}

// SubmitBooking validates and prices the selection, mints an opaque order
// identifier unique to this attempt, and returns the Kashier checkout URL.
// A zero price on a valid selection is refused rather than forwarded.
func (s *BookingService) SubmitBooking(ctx context.Context, sel booking.BookingSelection) (*BookingDTO, []booking.FieldError, error) {
	if errs := booking.Validate(sel); len(errs) > 0 {
		return nil, errs, nil
	}

	amount := booking.Calculate(sel, s.table)
	if amount <= 0 {
		return nil, nil, domain.NewValidationError("selection does not price to a positive amount")
	}

	orderID := uuid.New().String()
	paymentURL := s.gateway.CheckoutURL(orderID, amount, booking.CurrencyEGP)

	s.publishBookingRequested(ctx, orderID, amount, sel)

	s.logger.Info("booking submitted",
		zap.String("order_id", orderID),
		zap.String("visit_type", string(sel.VisitType)),
		zap.Int64("amount", amount),
	)

	return &BookingDTO{
		OrderID:    orderID,
		Amount:     amount,
		Currency:   booking.CurrencyEGP,
		PaymentURL: paymentURL,
	}, nil, nil
}

// ProcessPaymentWebhook verifies the webhook signature and publishes the
// payment outcome. An invalid signature is rejected before any field of the
// payload is trusted.
func (s *BookingService) ProcessPaymentWebhook(ctx context.Context, params map[string]string, signature string) error {
	if !s.gateway.VerifyWebhook(params, signature) {
		return domain.NewUnauthorizedError("invalid webhook signature")
	}

	orderID := params["merchantOrderId"]
	if orderID == "" {
		orderID = params["orderId"]
	}
	if orderID == "" {
		return domain.NewValidationError("webhook missing order identifier")
	}

	status := params["paymentStatus"]
	eventType := events.PaymentFailed
	if status == "SUCCESS" {
		eventType = events.PaymentSucceeded
	}

	evt := events.PaymentStatusEvent{
		OrderID:       orderID,
		PaymentStatus: status,
		TransactionID: params["transactionId"],
		Amount:        params["amount"],
		Currency:      params["currency"],
		OccurredAt:    time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicPaymentEvents, eventType, evt)

	s.logger.Info("payment webhook processed",
		zap.String("order_id", orderID),
		zap.String("status", status),
	)
	return nil
}

func (s *BookingService) publishBookingRequested(ctx context.Context, orderID string, amount int64, sel booking.BookingSelection) {
	serviceType := ""
	if sel.HomeVisit != nil {
		serviceType = string(sel.HomeVisit.ServiceType)
	}
	evt := events.BookingRequestedEvent{
		OrderID:     orderID,
		VisitType:   string(sel.VisitType),
		ServiceType: serviceType,
		Amount:      amount,
		Currency:    booking.CurrencyEGP,
		FullName:    sel.FullName,
		PhoneNumber: sel.PhoneNumber,
		CountryCode: sel.CountryCode,
		OccurredAt:  time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingRequested, evt)
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := events.NewCloudEvent("service-booking", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
