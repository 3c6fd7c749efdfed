package ports

import (
	"context"
	"io"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// EvidenceStorage stores and serves the photo images referenced by an
// order's evidence slots. Implementations return an opaque image reference
// that the aggregate records; the storage layout behind it is their own.
type EvidenceStorage interface {
	// Put stores the image content for an order's evidence slot and returns
	// the reference to record on the aggregate. Writing into an occupied
	// slot overwrites the previous image.
	Put(ctx context.Context, orderID kernel.UUID, slot fulfillment.EvidenceSlot, content io.Reader) (string, error)

	// Open returns a reader for a stored image reference.
	// The caller must close the reader.
	Open(ctx context.Context, imageRef string) (io.ReadCloser, error)

	// Delete removes a stored image. Deleting a reference that no longer
	// exists is not an error.
	Delete(ctx context.Context, imageRef string) error
}
