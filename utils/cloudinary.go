package utils

import (
	"fmt"

	"onair/config"
	"onair/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes and returns a Cloudinary-based StorageService.
func Cloudinary() (storage.StorageService, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL not set in configuration")
	}

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewStorageService(cld), nil
}
