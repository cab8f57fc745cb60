package pricing

import "time"

// RefundPolicy decides the late-cancellation refund from the net amount paid
// so far. The campus policy text only pins down the 24-hour full-refund rule;
// what a late cancellation returns is a policy decision, so it is injected
// rather than hard-coded. The result is clamped to [0, netPaidCents] by the
// caller regardless of what the policy returns.
type RefundPolicy func(netPaidCents int64) int64

// PercentRefundPolicy refunds a flat percentage of the net amount paid.
func PercentRefundPolicy(percent int) RefundPolicy {
	return func(netPaidCents int64) int64 {
		return netPaidCents * int64(percent) / 100
	}
}

// ComputeRefund computes the refund for cancelling at instant now a
// reservation starting at startTime, given the net amount paid to date
// (charges minus prior refunds). Cancelling at least FullRefundLeadTime
// before the start refunds everything; later cancellations go through the
// configured late policy.
func ComputeRefund(netPaidCents int64, startTime, now time.Time, rules Rules) int64 {
	if netPaidCents <= 0 {
		return 0
	}

	var refund int64
	if !now.After(startTime.Add(-rules.FullRefundLeadTime)) {
		refund = netPaidCents
	} else if rules.LateRefund != nil {
		refund = rules.LateRefund(netPaidCents)
	}

	if refund < 0 {
		return 0
	}
	if refund > netPaidCents {
		return netPaidCents
	}
	return refund
}
