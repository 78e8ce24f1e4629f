package pool

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type EventType string

const (
	EventStaked          EventType = "staked"
	EventUnstaked        EventType = "unstaked"
	EventDeposit         EventType = "deposit"
	EventExecuteBridge   EventType = "execute_bridge"
	EventBlacklistVote   EventType = "blacklist_vote"
	EventNodeBlacklisted EventType = "node_blacklisted"
)

func (t EventType) ToString() string {
	return string(t)
}

// Event is emitted exactly once per successful state transition.
type Event interface {
	Type() EventType
}

// EventSink receives events after the operation that produced them has been
// fully applied.
type EventSink interface {
	Emit(Event)
}

type EventSinkFunc func(Event)

func (f EventSinkFunc) Emit(e Event) {
	f(e)
}

type StakedEvent struct {
	Staker      common.Address
	Amount      *uint256.Int
	TotalStaked *uint256.Int
}

func (StakedEvent) Type() EventType { return EventStaked }

type UnstakedEvent struct {
	Staker      common.Address
	Amount      *uint256.Int
	TotalStaked *uint256.Int
}

func (UnstakedEvent) Type() EventType { return EventUnstaked }

type DepositEvent struct {
	DepositID uint64
	Sender    common.Address
	Receiver  common.Address
	Amount    *uint256.Int
	Timestamp time.Time
}

func (DepositEvent) Type() EventType { return EventDeposit }

type ExecuteBridgeEvent struct {
	DepositID   uint64
	Relayer     common.Address
	Receiver    common.Address
	Amount      *uint256.Int
	Payout      *uint256.Int
	Fee         *uint256.Int
	LockedUntil time.Time
	Timestamp   time.Time
}

func (ExecuteBridgeEvent) Type() EventType { return EventExecuteBridge }

type BlacklistVoteEvent struct {
	Voter  common.Address
	Target common.Address
	Weight *uint256.Int
	Tally  *uint256.Int
}

func (BlacklistVoteEvent) Type() EventType { return EventBlacklistVote }

// NodeBlacklistedEvent reports the forced removal of a staker's collateral.
type NodeBlacklistedEvent struct {
	Target      common.Address
	Forfeited   *uint256.Int
	Tally       *uint256.Int
	TotalStaked *uint256.Int
}

func (NodeBlacklistedEvent) Type() EventType { return EventNodeBlacklisted }
