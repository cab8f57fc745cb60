package model

import (
	"time"
)

// ReservationStatus is the tagged lifecycle state of a reservation. Upcoming,
// active and completed are derived from the clock on every read; pending and
// cancelled are stored facts, and cancelled is sticky.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusUpcoming  ReservationStatus = "upcoming"
	StatusActive    ReservationStatus = "active"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID                  string            `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	LotID               string            `json:"lot_id" bson:"lot_id" validate:"required,mongodb"`
	UserID              string            `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	VehiclePlate        string            `json:"vehicle_plate" bson:"vehicle_plate" validate:"required,min=2,max=12"`
	StartTime           time.Time         `json:"start_time" bson:"start_time" validate:"required"`
	EndTime             time.Time         `json:"end_time" bson:"end_time" validate:"required,gtfield=StartTime"`
	Status              ReservationStatus `json:"status" bson:"status" validate:"required,oneof=pending upcoming active completed cancelled"`
	OriginalAmountCents int64             `json:"original_amount_cents" bson:"original_amount_cents" validate:"min=0"`
	CurrentAmountCents  int64             `json:"current_amount_cents" bson:"current_amount_cents" validate:"min=0"`
	IsFree              bool              `json:"is_free" bson:"is_free"`
	FreeReason          string            `json:"free_reason,omitempty" bson:"free_reason,omitempty"`
	PaymentRef          string            `json:"payment_ref,omitempty" bson:"payment_ref,omitempty"`
	Version             int64             `json:"version" bson:"version"`
	CreatedAt           time.Time         `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// ReservationRequest is the booking-flow input; the service resolves the lot,
// prices the interval and owns the resulting reservation's status.
type ReservationRequest struct {
	LotID        string    `json:"lot_id" validate:"required,mongodb"`
	UserID       string    `json:"user_id" validate:"required,mongodb"`
	VehiclePlate string    `json:"vehicle_plate" validate:"required,min=2,max=12"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	PaymentToken string    `json:"payment_token" validate:"omitempty,max=128"`
}

// ExtensionRequest extends a reservation by whole hours, within [1,24].
type ExtensionRequest struct {
	AdditionalHours int    `json:"additional_hours" validate:"required,min=1,max=24"`
	PaymentToken    string `json:"payment_token" validate:"omitempty,max=128"`
}
