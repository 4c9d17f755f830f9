// File: database/repository/user/user_firestore.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"onair/config"
	"onair/models"
	"onair/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type firestoreUserRepo struct {
	client *firestore.Client
}

// NewFirestoreUserRepo returns a UserRepository backed by the shared
// Firestore client.
func NewFirestoreUserRepo() UserRepository {
	return &firestoreUserRepo{client: utils.FirestoreClient}
}

func (repo *firestoreUserRepo) coll() *firestore.CollectionRef {
	return repo.client.Collection(config.UsersCollection)
}

func (repo *firestoreUserRepo) GetByEmail(ctx context.Context, email string) (*models.DJProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := repo.coll().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	var profile models.DJProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", snap.Ref.ID, err)
	}
	profile.ID = snap.Ref.ID
	return &profile, nil
}

func (repo *firestoreUserRepo) GetByID(ctx context.Context, uid string) (*models.DJProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := repo.coll().Doc(uid).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", uid, err)
	}

	var profile models.DJProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", uid, err)
	}
	profile.ID = snap.Ref.ID
	return &profile, nil
}

func (repo *firestoreUserRepo) SetSubscriptionActive(ctx context.Context, email string, active bool) error {
	profile, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = repo.coll().Doc(profile.ID).Update(ctx, []firestore.Update{
		{Path: "subscriptionActive", Value: active},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update subscription for %s: %w", profile.ID, err)
	}
	return nil
}

func (repo *firestoreUserRepo) UpdateAvatarURL(ctx context.Context, uid, avatarURL string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "avatarUrl", Value: avatarURL},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update avatar for %s: %w", uid, err)
	}
	return nil
}
