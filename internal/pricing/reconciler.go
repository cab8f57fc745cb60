package pricing

import "campuspark/pkg/model"

// ReconcileDisplayAmount re-derives the amount a historical ledger row should
// display. For metered charges the stored amount is never trusted: the
// snapshot is re-priced through ComputeBillableAmount plus any surcharge
// recorded at transaction time, so a row written by an older code path still
// shows what the current rules say. Refund rows against a free reservation
// display zero; otherwise the stored refund is capped at the recomputed
// charge basis. Pure and idempotent.
func ReconcileDisplayAmount(entry model.BillingEntry, rules Rules) int64 {
	snap := entry.Snapshot

	if !snap.Profile.IsMetered && snap.Profile.RateModel != model.RateModelSemester {
		return entry.AmountCents
	}

	quote, err := ComputeBillableAmount(snap.StartTime, snap.EndTime, snap.Profile, rules)
	if err != nil {
		// Snapshot predates interval validation; nothing to recompute from.
		return entry.AmountCents
	}

	basis := quote.AmountCents + snap.SurchargeCents

	switch entry.Kind {
	case model.EntryCharge:
		return basis
	case model.EntryRefund:
		if quote.IsFree && snap.SurchargeCents == 0 {
			return 0
		}
		if entry.AmountCents > basis {
			return basis
		}
		return entry.AmountCents
	default:
		return entry.AmountCents
	}
}
