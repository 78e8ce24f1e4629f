package pool

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/babylonchain/bridge-pool-service/internal/token"
)

// StakeEntry is the collateral a staker holds in the pool.
type StakeEntry struct {
	Amount *uint256.Int
	// LockedUntil is the earliest time the staker may unstake or execute again.
	LockedUntil time.Time
}

// Deposit is a transfer locked on this side, waiting to be paid out on the
// other side.
type Deposit struct {
	ID       uint64
	Sender   common.Address
	Receiver common.Address
	Amount   *uint256.Int
	Executed bool
}

// Pool is one side of the bridge. All operations are serialised and each one
// is applied completely or not at all.
type Pool struct {
	mu sync.Mutex

	address common.Address
	params  Params
	ledger  token.Ledger
	now     func() time.Time
	sink    EventSink

	stakes      map[common.Address]*StakeEntry
	totalStaked *uint256.Int
	// deposits[i].ID == i
	deposits []*Deposit
	executed map[uint64]bool
	// tallies[target] == sum of votes[target]
	tallies map[common.Address]*uint256.Int
	votes   map[common.Address]map[common.Address]*uint256.Int
}

type Option func(*Pool)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pool) {
		p.now = now
	}
}

func WithEventSink(sink EventSink) Option {
	return func(p *Pool) {
		p.sink = sink
	}
}

// New creates an empty pool. address is the account holding the pool's
// tokens on the ledger.
func New(address common.Address, params Params, ledger token.Ledger, opts ...Option) (*Pool, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	p := &Pool{
		address:     address,
		params:      params,
		ledger:      ledger,
		now:         time.Now,
		sink:        EventSinkFunc(func(Event) {}),
		stakes:      make(map[common.Address]*StakeEntry),
		totalStaked: new(uint256.Int),
		executed:    make(map[uint64]bool),
		tallies:     make(map[common.Address]*uint256.Int),
		votes:       make(map[common.Address]map[common.Address]*uint256.Int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Pool) Address() common.Address {
	return p.address
}

func (p *Pool) Params() Params {
	return Params{
		MinStakeAmount: p.params.MinStakeAmount.Clone(),
		Cooldown:       p.params.Cooldown,
	}
}

// Balance returns the pool's own token balance.
func (p *Pool) Balance() *uint256.Int {
	return p.ledger.BalanceOf(p.address)
}

// StakeOf returns a copy of the stake entry of staker. Unknown stakers have a
// zero entry.
func (p *Pool) StakeOf(staker common.Address) StakeEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := p.stakeEntry(staker)
	return StakeEntry{Amount: e.Amount.Clone(), LockedUntil: e.LockedUntil}
}

func (p *Pool) TotalStaked() *uint256.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalStaked.Clone()
}

// DepositCount is the id the next deposit will receive.
func (p *Pool) DepositCount() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return uint64(len(p.deposits))
}

// LastDepositID returns the id of the most recent deposit, ok is false when
// no deposit was made yet.
func (p *Pool) LastDepositID() (id uint64, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.deposits) == 0 {
		return 0, false
	}
	return uint64(len(p.deposits) - 1), true
}

func (p *Pool) GetDeposit(id uint64) (Deposit, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id >= uint64(len(p.deposits)) {
		return Deposit{}, ErrDepositNotFound
	}
	d := p.deposits[id]
	return Deposit{
		ID:       d.ID,
		Sender:   d.Sender,
		Receiver: d.Receiver,
		Amount:   d.Amount.Clone(),
		Executed: p.executed[id],
	}, nil
}

func (p *Pool) IsExecuted(depositID uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.executed[depositID]
}

// BlacklistVotes returns the accumulated vote weight against target.
func (p *Pool) BlacklistVotes(target common.Address) *uint256.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tallies[target]; ok {
		return t.Clone()
	}
	return new(uint256.Int)
}

func (p *Pool) stakeEntry(staker common.Address) *StakeEntry {
	if e, ok := p.stakes[staker]; ok {
		return e
	}
	return &StakeEntry{Amount: new(uint256.Int)}
}

func (p *Pool) isLocked(e *StakeEntry) bool {
	return p.now().Before(e.LockedUntil)
}

// IsLocked reports whether staker is still inside its cooldown window.
func (p *Pool) IsLocked(staker common.Address) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isLocked(p.stakeEntry(staker))
}
