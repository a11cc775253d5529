package models

import "time"

// User roles. Admin status is a role claim carried in the JWT, not an email
// comparison.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered driver (or administrator).
type User struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	Username      string    `bson:"username" json:"username"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	CarPlate      string    `bson:"carPlate" json:"carPlate"`
	EcocashNumber string    `bson:"ecocashNumber" json:"ecocashNumber"`
	FCMToken      string    `bson:"fcmToken,omitempty" json:"-"`
	Role          string    `bson:"role" json:"role"`
	TokenHash     string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
