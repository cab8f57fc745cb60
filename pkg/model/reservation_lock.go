package model

import "time"

// ReservationLock is an advisory lock serializing state-changing operations
// against a single reservation (or booking slot). The unique _id insert is
// the acquisition; ExpiresAt bounds the damage of a leaked lock.
type ReservationLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
