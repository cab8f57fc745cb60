package model

import "time"

const (
	PermitActive  = "active"
	PermitExpired = "expired"
	PermitPending = "pending"
)

// Permit is a semester parking permit. A user holds an active permit iff at
// least one row has status active and the instant falls inside its validity
// interval.
type Permit struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID     string    `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	ValidFrom  time.Time `json:"valid_from" bson:"valid_from" validate:"required"`
	ValidUntil time.Time `json:"valid_until" bson:"valid_until" validate:"required,gtfield=ValidFrom"`
	Status     string    `json:"status" bson:"status" validate:"required,oneof=active expired pending"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// Covers reports whether this permit row makes its holder an active permit
// holder at the given instant.
func (p *Permit) Covers(at time.Time) bool {
	if p.Status != PermitActive {
		return false
	}
	return !at.Before(p.ValidFrom) && !at.After(p.ValidUntil)
}
