package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/nbarth/gatehouse/core"
	"github.com/nbarth/gatehouse/pkg/crypto"
)

// AssetService binds uploaded byte streams to user records. The blob
// store and the user store are independent effects; a failed record
// update triggers a compensating delete of the stored blob.
type AssetService struct {
	store  core.UserStorage
	blobs  core.BlobStorage
	logger *slog.Logger
}

// Ensure AssetService implements AssetProvider
var _ core.AssetProvider = (*AssetService)(nil)

func NewAssetService(store core.UserStorage, blobs core.BlobStorage, logger *slog.Logger) *AssetService {
	return &AssetService{
		store:  store,
		blobs:  blobs,
		logger: logger,
	}
}

// Bind persists the stream under a fresh collision-resistant key and
// records the key on the user identified by the gate-attached subject,
// overwriting any prior locator. The key, not a client-supplied value,
// is the returned locator.
func (s *AssetService) Bind(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error) {
	if r == nil {
		return "", core.ErrNoFile
	}

	id, err := crypto.NewID()
	if err != nil {
		return "", fmt.Errorf("failed to generate storage key: %w", err)
	}
	key := "avatars/" + id + filepath.Ext(filename)

	if err := s.blobs.Save(ctx, key, contentType, r); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	if err := s.store.UpdateUserImage(ctx, userID, key); err != nil {
		// The blob is already durable; remove it so a failed bind
		// leaves no orphaned bytes behind.
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn("orphaned blob after failed bind",
				"key", key, "error", delErr)
		}
		if errors.Is(err, core.ErrUserNotFound) {
			return "", core.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to update user image: %w", err)
	}

	return key, nil
}

// Image returns the caller's current image locator.
func (s *AssetService) Image(ctx context.Context, userID string) (string, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return "", core.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if user.Image == nil || *user.Image == "" {
		return "", core.ErrNoImage
	}

	return *user.Image, nil
}
