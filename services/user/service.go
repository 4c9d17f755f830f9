package user

import (
	"context"

	userRepo "onair/database/repository/user"
	"onair/models"
)

// UserService exposes DJ profile lookups and updates.
type UserService interface {
	// LookupByEmail returns the matching DJ profile, or nil when none
	// matches. Absence is a benign result, not an error.
	LookupByEmail(ctx context.Context, email string) (*models.DJProfile, error)

	// SetAvatar stores a new avatar delivery URL on the DJ's profile.
	SetAvatar(ctx context.Context, uid, avatarURL string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) LookupByEmail(ctx context.Context, email string) (*models.DJProfile, error) {
	return s.Repo.GetByEmail(ctx, email)
}

func (s *DefaultUserService) SetAvatar(ctx context.Context, uid, avatarURL string) error {
	return s.Repo.UpdateAvatarURL(ctx, uid, avatarURL)
}
