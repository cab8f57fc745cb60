package pricing

import (
	"math"
	"time"

	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
)

// Quote is the result of pricing a reservation interval.
type Quote struct {
	AmountCents   int64
	BillableHours float64
	IsFree        bool
	FreeReason    string
}

// ComputeBillableAmount prices an interval against a rate profile.
//
// Semester lots are already covered by the flat permit fee and price to zero.
// Hourly lots charge only for the overlap between the interval and the
// billable window on the interval's start date; weekends are free. Intervals
// spanning midnight honor only the start date's window.
func ComputeBillableAmount(start, end time.Time, profile model.RateProfile, rules Rules) (Quote, error) {
	if !end.After(start) {
		return Quote{}, apperrors.Validation("non-positive duration", map[string]any{
			"start_time": start,
			"end_time":   end,
		})
	}

	if profile.RateModel == model.RateModelSemester {
		return Quote{IsFree: true, FreeReason: ReasonSemesterRate}, nil
	}

	switch start.Weekday() {
	case time.Saturday, time.Sunday:
		return Quote{IsFree: true, FreeReason: ReasonWeekend}, nil
	}

	windowStart := time.Date(start.Year(), start.Month(), start.Day(), rules.BillableStartHour, 0, 0, 0, start.Location())
	windowEnd := time.Date(start.Year(), start.Month(), start.Day(), rules.BillableEndHour, 0, 0, 0, start.Location())

	billableFrom := maxTime(start, windowStart)
	billableTo := minTime(end, windowEnd)

	overlap := billableTo.Sub(billableFrom)
	if overlap <= 0 {
		return Quote{IsFree: true, FreeReason: ReasonOutsideWindow}, nil
	}

	hours := overlap.Hours()
	amount := int64(math.Round(hours * float64(profile.HourlyRateCents)))

	return Quote{
		AmountCents:   amount,
		BillableHours: hours,
	}, nil
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
