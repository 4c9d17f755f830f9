package storage

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService handles avatar media hosted on Cloudinary.
type StorageService interface {
	// UploadAvatar stores an uploaded image under the avatars folder and
	// returns its delivery URL.
	UploadAvatar(ctx context.Context, file multipart.File, uid string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
