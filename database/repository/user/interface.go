package userRepo

import (
	"context"

	"onair/models"
)

// UserRepository abstracts the Firestore "users" collection of DJ profiles.
type UserRepository interface {
	// GetByEmail returns the profile matching an email address, or nil when
	// no profile matches. Absence is not an error.
	GetByEmail(ctx context.Context, email string) (*models.DJProfile, error)

	// GetByID returns the profile for a Firebase Auth UID, or nil.
	GetByID(ctx context.Context, uid string) (*models.DJProfile, error)

	// SetSubscriptionActive flips the billing flag on the profile matching
	// an email address. A missing profile is a no-op.
	SetSubscriptionActive(ctx context.Context, email string, active bool) error

	// UpdateAvatarURL writes a new avatar delivery URL on a profile.
	UpdateAvatarURL(ctx context.Context, uid, avatarURL string) error
}
