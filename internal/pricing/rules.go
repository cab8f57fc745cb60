// Package pricing is the single place parking amounts are computed: the
// billable-window charge for a reservation interval, the fee for extending
// it, the refund for cancelling it, and the reconciled display amount for a
// historical ledger row. Every function here is pure; callers inject time.
package pricing

import (
	"time"

	"campuspark/pkg/config"
)

// Free and fee reasons recorded on reservations and extension quotes.
const (
	ReasonSemesterRate      = "semester-rate"
	ReasonWeekend           = "weekend"
	ReasonOutsideWindow     = "outside billable window"
	ReasonPermitEvening     = "free-after-4pm-with-permit"
	ReasonFreeEvening       = "free-after-7pm"
	ReasonMeteredExtension  = "metered-extension-fee"
	ReasonStandardExtension = "standard-extension"
)

// Rules bundles the tunable pricing facts. The hour fields are local-time
// hours of day; the billable window is [BillableStartHour, BillableEndHour).
type Rules struct {
	BillableStartHour       int
	BillableEndHour         int
	ExtensionSurchargeCents int64
	MaxExtensionHours       int
	PermitEveningHour       int
	MeteredEveningHour      int
	FullRefundLeadTime      time.Duration
	LateRefund              RefundPolicy
}

// DefaultRules returns the campus defaults: 07:00-19:00 billable window,
// $2.50 extension surcharge, 24h full-refund lead, nothing back after that.
func DefaultRules() Rules {
	return Rules{
		BillableStartHour:       7,
		BillableEndHour:         19,
		ExtensionSurchargeCents: 250,
		MaxExtensionHours:       24,
		PermitEveningHour:       16,
		MeteredEveningHour:      19,
		FullRefundLeadTime:      24 * time.Hour,
		LateRefund:              PercentRefundPolicy(0),
	}
}

// FromConfig builds Rules from the service configuration.
func FromConfig(cfg *config.Config) Rules {
	return Rules{
		BillableStartHour:       cfg.BillableWindowStartHour,
		BillableEndHour:         cfg.BillableWindowEndHour,
		ExtensionSurchargeCents: cfg.ExtensionSurchargeCents,
		MaxExtensionHours:       cfg.MaxExtensionHours,
		PermitEveningHour:       cfg.PermitEveningHour,
		MeteredEveningHour:      cfg.MeteredEveningHour,
		FullRefundLeadTime:      cfg.FullRefundLeadTime,
		LateRefund:              PercentRefundPolicy(cfg.LateRefundPercent),
	}
}
