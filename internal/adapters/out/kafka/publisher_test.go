package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	last []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.last = append([]kafka.Message{}, msgs...)
	return w.err
}

func testAggregate(t *testing.T) *order.Order {
	t.Helper()

	metadata, err := fulfillment.RestoreMetadata(
		fulfillment.InTransit, fulfillment.InterCity, fulfillment.Deliver,
		fulfillment.PickupMethodNone, "JNE", "1234567890123456", "", "", "",
	)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "Budi Santoso", metadata,
		map[fulfillment.EvidenceSlot]string{fulfillment.ShipmentProofPhoto: "orders/img-1.jpg"},
		2,
	)
	require.NoError(t, err)
	return aggregate
}

func TestPublisher_PublishFulfillmentChanged(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newPublisherWithWriter(writer, "order-fulfillment")

	aggregate := testAggregate(t)

	err := publisher.PublishFulfillmentChanged(context.Background(), aggregate)
	require.NoError(t, err)
	require.Len(t, writer.last, 1)

	msg := writer.last[0]
	assert.Equal(t, "order-fulfillment", msg.Topic)
	assert.Equal(t, aggregate.ID().String(), string(msg.Key))

	var event OrderFulfillmentChangedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "in_transit", event.Status)
	assert.Equal(t, "Sedang Dikirim", event.StatusLabel)
	assert.Equal(t, "inter_city", event.ShippingArea)
	assert.Equal(t, "1234567890123456", event.TrackingNumber)
	assert.Equal(t, "orders/img-1.jpg", event.Evidence["shipment_proof_photo"])
	assert.Equal(t, 2, event.Version)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestPublisher_PublishFulfillmentChanged_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("boom")}
	publisher := newPublisherWithWriter(writer, "order-fulfillment")

	err := publisher.PublishFulfillmentChanged(context.Background(), testAggregate(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka publish")
}

func TestPublisher_PublishFulfillmentChanged_UnconstructedOrder(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newPublisherWithWriter(writer, "order-fulfillment")

	var zero order.Order
	err := publisher.PublishFulfillmentChanged(context.Background(), &zero)
	require.Error(t, err)
	assert.Empty(t, writer.last)
}
