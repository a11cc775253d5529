package models

import "time"

// Notification types.
const (
	NotificationReserved    = "RESERVED"
	NotificationTimeExpired = "TIME_EXPIRED"
)

// Notification is an in-app message for a user. Consumers sort by Timestamp
// descending; "mark as left" is equivalent to dismissing (deleting) it.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	Type      string         `bson:"type" json:"type"`
	Message   string         `bson:"message" json:"message"`
	IsRead    bool           `bson:"isRead" json:"isRead"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
}
