package model

import "time"

const (
	RateModelHourly   = "hourly"
	RateModelSemester = "semester"
)

// Lot describes a campus parking lot. Rate fields are immutable for the
// lifetime of any reservation referencing the lot; pricing always reads
// the snapshot stored on the billing entry, never the live row.
type Lot struct {
	ID                string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name              string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	RateModel         string    `json:"rate_model" bson:"rate_model" validate:"required"`
	HourlyRateCents   int64     `json:"hourly_rate_cents" bson:"hourly_rate_cents" validate:"min=0"`
	SemesterRateCents int64     `json:"semester_rate_cents" bson:"semester_rate_cents" validate:"min=0"`
	IsMetered         bool      `json:"is_metered" bson:"is_metered"`
	IsEV              bool      `json:"is_ev" bson:"is_ev"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// RateProfile is the normalized pricing view of a lot, the only shape the
// pricing engine ever sees.
type RateProfile struct {
	RateModel         string `json:"rate_model" bson:"rate_model"`
	HourlyRateCents   int64  `json:"hourly_rate_cents" bson:"hourly_rate_cents"`
	SemesterRateCents int64  `json:"semester_rate_cents" bson:"semester_rate_cents"`
	IsMetered         bool   `json:"is_metered" bson:"is_metered"`
}

// RateProfile normalizes the lot's rate facts. An unrecognized rate model is
// coerced to hourly so a bad config row never blocks a booking; recognized
// reports whether the stored model was valid so the caller can log the
// fallback.
func (l *Lot) RateProfile() (profile RateProfile, recognized bool) {
	profile = RateProfile{
		RateModel:         l.RateModel,
		HourlyRateCents:   l.HourlyRateCents,
		SemesterRateCents: l.SemesterRateCents,
		IsMetered:         l.IsMetered,
	}
	switch l.RateModel {
	case RateModelHourly, RateModelSemester:
		return profile, true
	default:
		profile.RateModel = RateModelHourly
		return profile, false
	}
}
