package entities

import "time"

// User is the authenticated identity consumed by the order workflow.
//
// IsAdmin is derived by the auth layer (configured admin email), never
// persisted on orders.

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserRecord is the stored shape, including the bcrypt password hash.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email

type UserRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
