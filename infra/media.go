package infra

import (
	"context"
	"io"
)

// StoredAsset is what the external host hands back after an upload.
// FileURL is the public location of the object, StorageID the host-side
// identifier used for deletes and signed URLs, AssetID an opaque id of
// the stored version.
type StoredAsset struct {
	FileURL   string
	StorageID string
	AssetID   string
}

// MediaStorage is the capability interface over the external object
// host. Tests substitute a fake; production wires the MinIO client.
type MediaStorage interface {
	// Store uploads the file bytes as a raw, non-transformable asset
	// and returns its handles.
	Store(ctx context.Context, r io.Reader, size int64, filename, contentType string) (*StoredAsset, error)
	// Delete removes the underlying object.
	Delete(ctx context.Context, storageID string) error
	// SignedDownloadURL mints a time-bounded, attachment-flagged URL
	// for the stored object.
	SignedDownloadURL(ctx context.Context, storageID, filename string) (string, error)
}
