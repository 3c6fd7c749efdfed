// Package filestore stores evidence photos on local disk.
// Images live under a configured root as orders/<order-id>/<slot>; the
// relative path doubles as the image reference recorded on the aggregate.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRefEscapesRoot is returned for image references that resolve outside
// the storage root.
var ErrRefEscapesRoot = errors.New("image reference escapes storage root")

// LocalEvidenceStorage implements ports.EvidenceStorage on the local
// filesystem. Writes go through a temp file and rename, so readers never
// observe a half-written image.
type LocalEvidenceStorage struct {
	root string
}

// NewLocalEvidenceStorage creates a storage rooted at the given directory,
// creating it if needed.
func NewLocalEvidenceStorage(root string) (*LocalEvidenceStorage, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("storage root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}

	return &LocalEvidenceStorage{root: root}, nil
}

// Put stores the image content for an order's evidence slot and returns the
// image reference. Writing into an occupied slot overwrites the previous
// image.
func (s *LocalEvidenceStorage) Put(
	_ context.Context,
	orderID kernel.UUID,
	slot fulfillment.EvidenceSlot,
	content io.Reader,
) (string, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}
	if err := slot.Validate(); err != nil {
		return "", err
	}

	imageRef := filepath.ToSlash(filepath.Join("orders", orderID.String(), slot.String()))
	path := filepath.Join(s.root, filepath.FromSlash(imageRef))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create order directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), slot.String()+".*")
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}

	if _, err = io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write image: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close image: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store image: %w", err)
	}

	return imageRef, nil
}

// Open returns a reader for a stored image reference.
func (s *LocalEvidenceStorage) Open(_ context.Context, imageRef string) (io.ReadCloser, error) {
	path, err := s.resolve(imageRef)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("evidence image", imageRef, err)
		}
		return nil, err
	}

	return file, nil
}

// Delete removes a stored image. A reference that no longer exists is not
// an error.
func (s *LocalEvidenceStorage) Delete(_ context.Context, imageRef string) error {
	path, err := s.resolve(imageRef)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// resolve maps an image reference to an absolute path, rejecting references
// that would escape the storage root.
func (s *LocalEvidenceStorage) resolve(imageRef string) (string, error) {
	if imageRef == "" {
		return "", errs.NewValueIsRequiredError("image_ref")
	}

	cleaned := filepath.Clean(filepath.FromSlash(imageRef))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", ErrRefEscapesRoot
	}

	return filepath.Join(s.root, cleaned), nil
}
