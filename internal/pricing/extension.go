package pricing

import (
	"fmt"
	"time"

	apperrors "campuspark/pkg/errors"
	"campuspark/pkg/model"
)

// ExtensionQuote is the result of pricing an extension request.
type ExtensionQuote struct {
	FeeCents   int64
	NewEndTime time.Time
	IsFree     bool
	Reason     string
}

// ComputeExtension prices extending a reservation by additionalHours past
// endTime. Rule precedence, first match wins:
//
//  1. semester lots extend free
//  2. an active permit holder extending in the evening extends free
//  3. a metered extension ending at or after the evening cutoff is free
//  4. a metered extension pays the flat surcharge plus the hourly rate
//  5. everything else pays the hourly rate alone
func ComputeExtension(endTime time.Time, profile model.RateProfile, additionalHours int, now time.Time, hasActivePermit bool, rules Rules) (ExtensionQuote, error) {
	if additionalHours < 1 || additionalHours > rules.MaxExtensionHours {
		return ExtensionQuote{}, apperrors.Validation(
			fmt.Sprintf("additional hours must be between 1 and %d", rules.MaxExtensionHours),
			map[string]any{"additional_hours": additionalHours},
		)
	}

	newEnd := endTime.Add(time.Duration(additionalHours) * time.Hour)
	quote := ExtensionQuote{NewEndTime: newEnd}

	switch {
	case profile.RateModel == model.RateModelSemester:
		quote.IsFree = true
		quote.Reason = ReasonSemesterRate

	case hasActivePermit && now.Hour() >= rules.PermitEveningHour:
		quote.IsFree = true
		quote.Reason = ReasonPermitEvening

	case profile.IsMetered && newEnd.Hour() >= rules.MeteredEveningHour:
		quote.IsFree = true
		quote.Reason = ReasonFreeEvening

	case profile.IsMetered:
		quote.FeeCents = rules.ExtensionSurchargeCents + profile.HourlyRateCents*int64(additionalHours)
		quote.Reason = ReasonMeteredExtension

	default:
		quote.FeeCents = profile.HourlyRateCents * int64(additionalHours)
		quote.Reason = ReasonStandardExtension
	}

	return quote, nil
}
