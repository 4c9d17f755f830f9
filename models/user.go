package models

import "time"

// DJProfile is a DJ's public profile, stored in the Firestore "users"
// collection keyed by the Firebase Auth UID.
type DJProfile struct {
	ID                 string    `firestore:"-" json:"id"`
	Email              string    `firestore:"email" json:"email"`
	DisplayName        string    `firestore:"displayName" json:"displayName"`
	Collective         string    `firestore:"collective" json:"collective,omitempty"`
	Bio                string    `firestore:"bio" json:"bio,omitempty"`
	AvatarURL          string    `firestore:"avatarUrl" json:"avatarUrl,omitempty"`
	SubscriptionActive bool      `firestore:"subscriptionActive" json:"subscriptionActive"`
	FCMTokens          []string  `firestore:"fcmTokens" json:"-"`
	CreatedAt          time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// CalendarConnection links a DJ to an external calendar, stored in the
// Firestore "calendar-connections" collection keyed by the Firebase Auth UID.
type CalendarConnection struct {
	Provider    string    `firestore:"provider" json:"provider"`
	AccountID   string    `firestore:"accountId" json:"accountId"`
	ConnectedAt time.Time `firestore:"connectedAt" json:"connectedAt"`
}
