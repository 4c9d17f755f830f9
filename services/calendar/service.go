package calendar

import (
	"context"
	"fmt"
	"time"

	"onair/config"

	"cloud.google.com/go/firestore"
)

// Service manages DJ calendar connections stored in Firestore.
type Service struct {
	Client *firestore.Client
}

// Disconnect removes the calendar connection for a Firebase Auth UID.
// Deleting an absent document succeeds, so repeated disconnects are harmless.
func (s *Service) Disconnect(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.Client.Collection(config.CalendarConnectionsCollection).Doc(uid).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete calendar connection for %s: %w", uid, err)
	}
	return nil
}
