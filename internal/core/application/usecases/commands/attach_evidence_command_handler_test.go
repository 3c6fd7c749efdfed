package commands_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestAttachEvidenceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoreTestOrder(t, id, fulfillment.InTransit, nil)

	content := strings.NewReader("jpeg bytes")
	cmd, _ := commands.NewAttachEvidenceCommand(id, "delivered_photo", content)

	storage := new(MockEvidenceStorage)
	storage.On("Put", mock.Anything, id, fulfillment.DeliveredPhoto, content).
		Return("orders/img-1.jpg", nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishFulfillmentChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewAttachEvidenceCommandHandler(factory, storage, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// photo advanced the order and landed in its slot
	assert.Equal(t, fulfillment.Received, aggregate.Metadata().Status())
	ref, ok := aggregate.EvidenceRef(fulfillment.DeliveredPhoto)
	require.True(t, ok)
	assert.Equal(t, "orders/img-1.jpg", ref)

	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAttachEvidenceCommandHandler_Handle_IllegalAdvance(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoreTestOrder(t, id, fulfillment.AwaitingProcessing, nil)

	content := strings.NewReader("jpeg bytes")
	cmd, _ := commands.NewAttachEvidenceCommand(id, "delivered_photo", content)

	storage := new(MockEvidenceStorage)
	mock.InOrder(
		storage.On("Put", mock.Anything, id, fulfillment.DeliveredPhoto, content).
			Return("orders/img-1.jpg", nil).Once(),
		storage.On("Delete", mock.Anything, "orders/img-1.jpg").Return(nil).Once(),
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewAttachEvidenceCommandHandler(factory, storage, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, fulfillment.ErrIllegalTransition)

	// order untouched, image discarded
	assert.Equal(t, fulfillment.AwaitingProcessing, aggregate.Metadata().Status())
	_, ok := aggregate.EvidenceRef(fulfillment.DeliveredPhoto)
	assert.False(t, ok)

	storage.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishFulfillmentChanged", mock.Anything, mock.Anything)
}

func TestAttachEvidenceCommandHandler_Handle_ReplacesPreviousImage(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoreTestOrder(t, id, fulfillment.InTransit,
		map[fulfillment.EvidenceSlot]string{fulfillment.PickedUpPhoto: "orders/img-old.jpg"})

	content := strings.NewReader("jpeg bytes")
	cmd, _ := commands.NewAttachEvidenceCommand(id, "picked_up_photo", content)

	storage := new(MockEvidenceStorage)
	mock.InOrder(
		storage.On("Put", mock.Anything, id, fulfillment.PickedUpPhoto, content).
			Return("orders/img-new.jpg", nil).Once(),
		storage.On("Delete", mock.Anything, "orders/img-old.jpg").Return(nil).Once(),
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishFulfillmentChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewAttachEvidenceCommandHandler(factory, storage, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// picked_up_photo targets in_transit, already reached: status stays put
	assert.Equal(t, fulfillment.InTransit, aggregate.Metadata().Status())
	ref, _ := aggregate.EvidenceRef(fulfillment.PickedUpPhoto)
	assert.Equal(t, "orders/img-new.jpg", ref)

	storage.AssertExpectations(t)
}

func TestAttachEvidenceCommandHandler_Handle_ReuploadsPassedMilestone(t *testing.T) {
	// Image references are deterministic, so re-uploading into a slot whose
	// milestone is already behind the order overwrites the file in place.
	// The handler must accept the replacement and never delete the path the
	// slot still points at.
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoreTestOrder(t, id, fulfillment.InTransit,
		map[fulfillment.EvidenceSlot]string{fulfillment.ReadyForPickupPhoto: "orders/img-staging.jpg"})

	content := strings.NewReader("jpeg bytes")
	cmd, _ := commands.NewAttachEvidenceCommand(id, "ready_for_pickup_photo", content)

	storage := new(MockEvidenceStorage)
	storage.On("Put", mock.Anything, id, fulfillment.ReadyForPickupPhoto, content).
		Return("orders/img-staging.jpg", nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishFulfillmentChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewAttachEvidenceCommandHandler(factory, storage, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// milestone already passed: photo replaced, status untouched
	assert.Equal(t, fulfillment.InTransit, aggregate.Metadata().Status())
	ref, _ := aggregate.EvidenceRef(fulfillment.ReadyForPickupPhoto)
	assert.Equal(t, "orders/img-staging.jpg", ref)

	storage.AssertExpectations(t)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAttachEvidenceCommandHandler_Handle_KeepsReferencedImageOnFailure(t *testing.T) {
	// A failed command may only discard the upload when the slot was empty
	// before. An occupied slot's path backs the persisted reference; deleting
	// it would orphan the order's evidence.
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoreTestOrder(t, id, fulfillment.AwaitingProcessing,
		map[fulfillment.EvidenceSlot]string{fulfillment.DeliveredPhoto: "orders/img-1.jpg"})

	content := strings.NewReader("jpeg bytes")
	cmd, _ := commands.NewAttachEvidenceCommand(id, "delivered_photo", content)

	storage := new(MockEvidenceStorage)
	storage.On("Put", mock.Anything, id, fulfillment.DeliveredPhoto, content).
		Return("orders/img-1.jpg", nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewAttachEvidenceCommandHandler(factory, storage, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, fulfillment.ErrIllegalTransition)

	// slot keeps its reference and the backing file survives
	ref, _ := aggregate.EvidenceRef(fulfillment.DeliveredPhoto)
	assert.Equal(t, "orders/img-1.jpg", ref)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveEvidenceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoreTestOrder(t, id, fulfillment.Received,
		map[fulfillment.EvidenceSlot]string{fulfillment.DeliveredPhoto: "orders/img-1.jpg"})

	cmd, _ := commands.NewRemoveEvidenceCommand(id, "delivered_photo")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	storage := new(MockEvidenceStorage)
	storage.On("Delete", mock.Anything, "orders/img-1.jpg").Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishFulfillmentChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewRemoveEvidenceCommandHandler(factory, storage, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// status never rolls back on evidence removal
	assert.Equal(t, fulfillment.Received, aggregate.Metadata().Status())
	_, ok := aggregate.EvidenceRef(fulfillment.DeliveredPhoto)
	assert.False(t, ok)

	storage.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRemoveEvidenceCommandHandler_Handle_EmptySlot(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := restoreTestOrder(t, id, fulfillment.Packed, nil)

	cmd, _ := commands.NewRemoveEvidenceCommand(id, "delivered_photo")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	storage := new(MockEvidenceStorage)
	publisher := new(MockEventPublisher)

	h := commands.NewRemoveEvidenceCommandHandler(factory, storage, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
