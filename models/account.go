package models

import "time"

// Account is the slice of the account-management subsystem's user record that
// QuickFind touches: identity and the credit counter.
type Account struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email,omitempty"`
	Role      string    `bson:"role" json:"role"` // "user" or "provider"
	Credits   int       `bson:"credits" json:"credits"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
