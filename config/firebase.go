package config

// ServiceAccount holds essential fields from the Firebase JSON key.
type ServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Firestore collection names owned by the companion web app.
const (
	SlotsCollection               = "broadcast-slots"
	UsersCollection               = "users"
	CalendarConnectionsCollection = "calendar-connections"
)
