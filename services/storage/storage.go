package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}

// UploadAvatar uploads an avatar image to Cloudinary, keyed by the DJ's UID
// so re-uploads replace the previous image.
func (s *StorageServiceImpl) UploadAvatar(ctx context.Context, file multipart.File, uid string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "avatars",
		PublicID: uid,
	})
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload avatar: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no delivery URL returned")
	}
	return result.SecureURL, nil
}
