// Package kafka publishes order fulfillment events to a Kafka topic.
// Downstream consumers (notification service, analytics) follow the
// fulfillment pipeline through these events instead of polling the store.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderFulfillmentChangedEvent is the wire payload describing an order's
// fulfillment state after a change. Status carries the canonical token;
// the label is included so consumers need no catalog of their own.
type OrderFulfillmentChangedEvent struct {
	OrderID        string            `json:"order_id"`
	CustomerName   string            `json:"customer_name"`
	Status         string            `json:"status"`
	StatusLabel    string            `json:"status_label"`
	ShippingArea   string            `json:"shipping_area"`
	OrderType      string            `json:"order_type"`
	TrackingNumber string            `json:"tracking_number,omitempty"`
	Evidence       map[string]string `json:"evidence,omitempty"`
	Version        int               `json:"version"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// Publisher implements ports.OrderEventPublisher on top of kafka-go.
// Messages are keyed by order ID so one order's events stay ordered within
// a partition.
type Publisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

// NewPublisher creates a publisher writing to the given topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
		now:   time.Now,
	}
}

// newPublisherWithWriter wires a custom writer, used by tests.
func newPublisherWithWriter(writer messageWriter, topic string) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
		now:    time.Now,
	}
}

// PublishFulfillmentChanged emits the order's current fulfillment state.
func (p *Publisher) PublishFulfillmentChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	metadata := aggregate.Metadata()

	evidence := make(map[string]string)
	for slot, ref := range aggregate.EvidenceRefs() {
		evidence[slot.String()] = ref
	}

	event := OrderFulfillmentChangedEvent{
		OrderID:        aggregate.ID().String(),
		CustomerName:   aggregate.CustomerName(),
		Status:         metadata.Status().String(),
		StatusLabel:    metadata.Status().Label(),
		ShippingArea:   metadata.Area().String(),
		OrderType:      metadata.OrderType().String(),
		TrackingNumber: metadata.TrackingNumber(),
		Evidence:       evidence,
		Version:        aggregate.Version(),
		OccurredAt:     p.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer when one is attached.
func (p *Publisher) Close() error {
	if writer, ok := p.writer.(*kafka.Writer); ok {
		return writer.Close()
	}
	return nil
}
