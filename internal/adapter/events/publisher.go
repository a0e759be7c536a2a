package events

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/greencart/storefront/internal/domain/model"
)

// Type names an order lifecycle event.
type Type string

const (
	TypeOrderPlaced Type = "order.placed"
	TypeOrderPaid   Type = "order.paid"
)

// OrderEvent is the message published to the order events topic.
type OrderEvent struct {
	Type        Type      `json:"type"`
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	Amount      int64     `json:"amount"`
	PaymentType string    `json:"payment_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewOrderEvent builds an event snapshot from an order.
func NewOrderEvent(eventType Type, order *model.Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Amount:      order.Amount,
		PaymentType: string(order.PaymentType),
		OccurredAt:  time.Now().UTC(),
	}
}

// Publisher emits order lifecycle events. Publishing is best effort:
// callers log failures and never fail the request over them.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
	Close() error
}

// KafkaPublisher writes order events to a Kafka topic.
type KafkaPublisher struct {
	w *kafka.Writer
}

// NewKafkaPublisher constructs a publisher over a comma separated broker list.
func NewKafkaPublisher(brokers, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(context.Context, OrderEvent) error { return nil }
func (NopPublisher) Close() error                                        { return nil }
