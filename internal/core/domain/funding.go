package domain

import "math"

const (
	// MinContribution is the exclusive lower bound for a single
	// contribution: invest requires amount > MinContribution.
	MinContribution int64 = 5

	// TreasuryFeePercent is the platform fee taken from every withdrawal.
	// The rate is fixed; there is no governance over it.
	TreasuryFeePercent int64 = 3

	// MaxRaisedAmount caps a campaign's escrow. Keeping the total at or
	// below MaxInt64/100 means the amount*TreasuryFeePercent product in
	// SplitFee cannot overflow int64.
	MaxRaisedAmount int64 = math.MaxInt64 / 100
)

// SplitFee divides a withdrawn amount between the campaign owner and the
// platform treasury. The treasury share is floor(amount*3/100) and the
// owner receives the remainder, so the two shares always sum to amount
// exactly.
func SplitFee(amount int64) (ownerAmount, treasuryAmount int64) {
	treasuryAmount = amount * TreasuryFeePercent / 100
	ownerAmount = amount - treasuryAmount
	return ownerAmount, treasuryAmount
}
