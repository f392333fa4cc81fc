package ledger

import "errors"

var (
	// ErrTokenAlreadyStaked is returned when a token id is already present
	// in the global staked set at insertion time.
	ErrTokenAlreadyStaked = errors.New("token already staked")

	// ErrTokenNotStaked is returned when removal references a token id the
	// owner does not currently have staked.
	ErrTokenNotStaked = errors.New("token not staked")

	// ErrTimeReversed is returned when the host-supplied time precedes the
	// recorded staking start. Host time is contractually monotonic, so this
	// is a host violation, not a user error.
	ErrTimeReversed = errors.New("host time precedes staking start")

	// ErrRewardOverflow is returned when the computed reward does not fit
	// in 64 bits.
	ErrRewardOverflow = errors.New("reward exceeds 64-bit range")
)
