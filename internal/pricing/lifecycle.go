package pricing

import (
	"time"

	"campuspark/pkg/model"
)

// allowedTransitions is the legality table for explicit, stored transitions.
// Upcoming -> Active and Active -> Completed never appear here: those are
// derived from the clock on read, not written.
var allowedTransitions = map[model.ReservationStatus][]model.ReservationStatus{
	model.StatusPending:   {model.StatusUpcoming, model.StatusCancelled},
	model.StatusUpcoming:  {model.StatusCancelled},
	model.StatusActive:    {model.StatusCancelled},
	model.StatusCompleted: {},
	model.StatusCancelled: {},
}

// CanTransition reports whether an explicit transition from one stored
// status to another is legal.
func CanTransition(from, to model.ReservationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DeriveStatus computes the effective status at instant now. Cancelled is
// sticky and overrides time. Pending stays pending until payment confirms.
// Everything else follows the clock against [start, end).
func DeriveStatus(r *model.Reservation, now time.Time) model.ReservationStatus {
	switch r.Status {
	case model.StatusCancelled:
		return model.StatusCancelled
	case model.StatusPending:
		return model.StatusPending
	}

	switch {
	case now.Before(r.StartTime):
		return model.StatusUpcoming
	case now.Before(r.EndTime):
		return model.StatusActive
	default:
		return model.StatusCompleted
	}
}

// CanExtend reports whether an extension is legal in the given status.
func CanExtend(status model.ReservationStatus) bool {
	return status == model.StatusUpcoming || status == model.StatusActive
}

// CanCancel reports whether cancellation is legal in the given status.
func CanCancel(status model.ReservationStatus) bool {
	switch status {
	case model.StatusPending, model.StatusUpcoming, model.StatusActive:
		return true
	}
	return false
}

// CanConfirm reports whether a payment confirmation may fire, which is only
// ever the pending -> upcoming transition.
func CanConfirm(status model.ReservationStatus) bool {
	return status == model.StatusPending
}
