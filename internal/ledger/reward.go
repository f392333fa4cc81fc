package ledger

import (
	sdkmath "cosmossdk.io/math"
)

// SecondsPerYear is the accrual denominator of the fixed-rate reward
// formula: one full year of staking accrues the principal itself.
const SecondsPerYear uint64 = 365 * 24 * 60 * 60

// Reward computes the simple-interest reward accrued by principal over
// elapsedSeconds: floor(principal * elapsedSeconds / SecondsPerYear).
// The product is taken in 256-bit arithmetic so it cannot wrap; only a
// quotient outside the 64-bit range is an error.
func Reward(principal, elapsedSeconds uint64) (uint64, error) {
	reward := sdkmath.NewUint(principal).
		Mul(sdkmath.NewUint(elapsedSeconds)).
		Quo(sdkmath.NewUint(SecondsPerYear))
	if !reward.BigInt().IsUint64() {
		return 0, ErrRewardOverflow
	}
	return reward.Uint64(), nil
}

// ElapsedSeconds converts the millisecond interval between the staking
// start and the host-supplied now into whole seconds, flooring the
// sub-second remainder.
func ElapsedSeconds(stakedStartAt, nowMillis uint64) (uint64, error) {
	if nowMillis < stakedStartAt {
		return 0, ErrTimeReversed
	}
	return (nowMillis - stakedStartAt) / 1000, nil
}
