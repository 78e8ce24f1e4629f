package pool

import (
	"errors"
	"time"

	"github.com/holiman/uint256"

	"github.com/babylonchain/bridge-pool-service/internal/token"
)

// Protocol-level ratios, expressed in percent.
const (
	// A staker may vouch for a single transfer of at most this share of its stake.
	StakeCapPercent = 10
	// Share of an executed amount paid to the receiver.
	ReceiverSharePercent = 95
	// Share of an executed amount paid to the executing staker.
	RelayerFeePercent = 5
)

const DefaultCooldown = time.Hour

// DefaultMinStakeAmount is 1000 whole tokens.
var DefaultMinStakeAmount = token.FromTokens(1000)

type Params struct {
	// MinStakeAmount is the smallest amount accepted by a single Stake call.
	MinStakeAmount *uint256.Int
	// Cooldown is how long a staker stays locked after executing a bridge.
	Cooldown time.Duration
}

func DefaultParams() Params {
	return Params{
		MinStakeAmount: DefaultMinStakeAmount.Clone(),
		Cooldown:       DefaultCooldown,
	}
}

func (p Params) Validate() error {
	if p.MinStakeAmount == nil || p.MinStakeAmount.IsZero() {
		return errors.New("min stake amount must be greater than 0")
	}
	if p.Cooldown < 0 {
		return errors.New("cooldown cannot be negative")
	}
	return nil
}

var percentBase = uint256.NewInt(100)

// StakeCap returns the largest amount a staker holding stake may execute.
func StakeCap(stake *uint256.Int) *uint256.Int {
	limit, _ := new(uint256.Int).MulDivOverflow(stake, uint256.NewInt(StakeCapPercent), percentBase)
	return limit
}

// SplitPayout splits an executed amount into the receiver payout and the
// staker fee. Both shares are floored; the remainder stays in the pool.
func SplitPayout(amount *uint256.Int) (payout, fee *uint256.Int) {
	payout, _ = new(uint256.Int).MulDivOverflow(amount, uint256.NewInt(ReceiverSharePercent), percentBase)
	fee, _ = new(uint256.Int).MulDivOverflow(amount, uint256.NewInt(RelayerFeePercent), percentBase)
	return payout, fee
}
