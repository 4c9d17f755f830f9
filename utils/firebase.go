// utils/firebase.go
package utils

import (
	"context"
	"log"

	"onair/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	// AuthClient verifies bearer ID tokens issued to the web/mobile apps.
	AuthClient *auth.Client
	// FirestoreClient is the handle on the app-owned Firestore project.
	FirestoreClient *firestore.Client
	// FCMClient sends push notifications to DJ devices.
	FCMClient *messaging.Client
)

// FirebaseInit initializes the Firebase App and its Auth, Firestore and
// Messaging clients.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	var conf *firebase.Config
	if config.AppConfig.FirebaseProjectID != "" {
		conf = &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	AuthClient, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	FCMClient, err = app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
}
