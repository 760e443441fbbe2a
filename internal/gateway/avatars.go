package gateway

import (
	"context"
	"fmt"
	"time"

	s3infra "github.com/go-docs-auth/internal/infrastructure/s3"
)

const (
	defaultAvatarKey = "avatars/default.png"
	avatarURLTTL     = 15 * time.Minute
)

type avatars struct {
	storage  StorageOps // nil without a bucket
	bucket   string
	fallback string
}

// Default returns the avatar reference given to new user documents. With a
// bucket it is the uploaded placeholder object, otherwise the configured URL,
// otherwise the placeholder inlined as a data URI.
func (a *avatars) Default(ctx context.Context) (string, error) {
	if a.storage == nil {
		if a.fallback != "" {
			return a.fallback, nil
		}
		return "data:image/png;base64," + placeholderAvatarPNG, nil
	}
	ok, err := a.storage.Exists(ctx, defaultAvatarKey)
	if err != nil {
		return "", fmt.Errorf("check default avatar: %w", err)
	}
	if ok {
		return a.storage.ObjectURL(defaultAvatarKey), nil
	}
	return a.storage.UploadBase64(ctx, defaultAvatarKey, placeholderAvatarPNG)
}

// URL resolves a stored avatar reference to something a browser can load.
// Objects in our bucket become presigned URLs; anything else is returned as is.
func (a *avatars) URL(ctx context.Context, avatar string) (string, error) {
	key, ok := s3infra.KeyFromURL(a.bucket, avatar)
	if !ok || a.storage == nil {
		return avatar, nil
	}
	return a.storage.PresignedURL(ctx, key, avatarURLTTL)
}
