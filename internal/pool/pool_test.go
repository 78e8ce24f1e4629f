package pool

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/bridge-pool-service/internal/token"
)

var (
	poolAddr = common.HexToAddress("0x000000000000000000000000000000000000b001")
	alice    = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob      = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carol    = common.HexToAddress("0x00000000000000000000000000000000000ca201")
	receiver = common.HexToAddress("0x000000000000000000000000000000000000beef")
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordedEvents struct {
	events []Event
}

func (r *recordedEvents) Emit(e Event) { r.events = append(r.events, e) }

func (r *recordedEvents) types() []EventType {
	var out []EventType
	for _, e := range r.events {
		out = append(out, e.Type())
	}
	return out
}

type testEnv struct {
	pool   *Pool
	ledger *token.MemoryLedger
	clock  *testClock
	events *recordedEvents
}

func setupPool(t *testing.T, params Params) *testEnv {
	ledger := token.NewMemoryLedger()
	for _, addr := range []common.Address{alice, bob, carol} {
		require.NoError(t, ledger.Mint(addr, token.FromTokens(10000)))
		require.NoError(t, ledger.Approve(addr, poolAddr, token.FromTokens(10000)))
	}
	clock := &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	events := &recordedEvents{}
	p, err := New(poolAddr, params, ledger, WithClock(clock.Now), WithEventSink(events))
	require.NoError(t, err)
	return &testEnv{pool: p, ledger: ledger, clock: clock, events: events}
}

func tokens(n uint64) *uint256.Int {
	return token.FromTokens(n)
}

// tenths returns n/10 tokens in base units.
func tenths(n uint64) *uint256.Int {
	return new(uint256.Int).Div(tokens(n), uint256.NewInt(10))
}

func TestNewRejectsInvalidParams(t *testing.T) {
	_, err := New(poolAddr, Params{MinStakeAmount: new(uint256.Int), Cooldown: time.Hour}, token.NewMemoryLedger())
	assert.Error(t, err)

	_, err = New(poolAddr, Params{MinStakeAmount: uint256.NewInt(1), Cooldown: -time.Second}, token.NewMemoryLedger())
	assert.Error(t, err)
}

func TestStakeBelowMinimum(t *testing.T) {
	env := setupPool(t, DefaultParams())

	err := env.pool.Stake(alice, tokens(1))
	assert.ErrorIs(t, err, ErrInsufficientStakeAmount)
	assert.True(t, env.pool.TotalStaked().IsZero())
	assert.Equal(t, tokens(10000), env.ledger.BalanceOf(alice))

	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	assert.Equal(t, tokens(1000), env.pool.StakeOf(alice).Amount)
	assert.Equal(t, tokens(1000), env.pool.TotalStaked())
	assert.Equal(t, tokens(1000), env.pool.Balance())
	assert.True(t, env.pool.StakeOf(alice).LockedUntil.IsZero(), "staking must not set a lock")
}

func TestStakeTransferFailure(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.ledger.Approve(alice, poolAddr, tokens(500)))

	err := env.pool.Stake(alice, tokens(1000))
	require.ErrorIs(t, err, ErrTransferFailed)
	assert.ErrorIs(t, err, token.ErrInsufficientAllowance)
	assert.True(t, env.pool.StakeOf(alice).Amount.IsZero())
	assert.True(t, env.pool.TotalStaked().IsZero())
	assert.Empty(t, env.events.events)
}

func TestStakeUnstakeRoundTrip(t *testing.T) {
	env := setupPool(t, DefaultParams())
	before := env.ledger.BalanceOf(alice)
	poolBefore := env.pool.Balance()

	require.NoError(t, env.pool.Stake(alice, tokens(1500)))
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	assert.Equal(t, tokens(2500), env.pool.StakeOf(alice).Amount)

	require.NoError(t, env.pool.Unstake(alice, tokens(2500)))
	assert.Equal(t, before, env.ledger.BalanceOf(alice))
	assert.Equal(t, poolBefore, env.pool.Balance())
	assert.True(t, env.pool.StakeOf(alice).Amount.IsZero())
	assert.True(t, env.pool.TotalStaked().IsZero())
	assert.Equal(t, []EventType{EventStaked, EventStaked, EventUnstaked}, env.events.types())
}

func TestUnstakeMoreThanStake(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))

	assert.ErrorIs(t, env.pool.Unstake(alice, tokens(1001)), ErrInsufficientStake)
	assert.ErrorIs(t, env.pool.Unstake(bob, tokens(1)), ErrInsufficientStake)
	assert.ErrorIs(t, env.pool.Unstake(alice, new(uint256.Int)), ErrZeroAmount)
	assert.Equal(t, tokens(1000), env.pool.StakeOf(alice).Amount)
}

func TestDepositAllocatesSequentialIDs(t *testing.T) {
	env := setupPool(t, DefaultParams())

	_, ok := env.pool.LastDepositID()
	assert.False(t, ok)

	for i := uint64(0); i < 3; i++ {
		id, err := env.pool.Deposit(bob, tokens(10), receiver)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}
	last, ok := env.pool.LastDepositID()
	require.True(t, ok)
	assert.Equal(t, uint64(2), last)
	assert.Equal(t, uint64(3), env.pool.DepositCount())
	assert.Equal(t, tokens(30), env.pool.Balance())

	d, err := env.pool.GetDeposit(1)
	require.NoError(t, err)
	assert.Equal(t, bob, d.Sender)
	assert.Equal(t, receiver, d.Receiver)
	assert.Equal(t, tokens(10), d.Amount)
	assert.False(t, d.Executed)

	_, err = env.pool.GetDeposit(3)
	assert.ErrorIs(t, err, ErrDepositNotFound)

	ev, ok := env.events.events[0].(DepositEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(0), ev.DepositID)
	assert.Equal(t, bob, ev.Sender)
}

func TestDepositValidation(t *testing.T) {
	env := setupPool(t, DefaultParams())

	_, err := env.pool.Deposit(bob, new(uint256.Int), receiver)
	assert.ErrorIs(t, err, ErrZeroAmount)
	_, err = env.pool.Deposit(bob, tokens(1), common.Address{})
	assert.ErrorIs(t, err, ErrInvalidReceiver)
	_, err = env.pool.Deposit(bob, tokens(10001), receiver)
	assert.ErrorIs(t, err, ErrTransferFailed)

	assert.Equal(t, uint64(0), env.pool.DepositCount())
	assert.Empty(t, env.events.events)
}

func TestExecuteBridgePaysReceiverAndRelayer(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	id, err := env.pool.Deposit(bob, tokens(10), receiver)
	require.NoError(t, err)

	aliceBefore := env.ledger.BalanceOf(alice)
	poolBefore := env.pool.Balance()

	payout, fee, err := env.pool.ExecuteBridge(alice, id, receiver, tokens(10))
	require.NoError(t, err)
	assert.Equal(t, tenths(95), payout)
	assert.Equal(t, tenths(5), fee)

	assert.True(t, env.pool.IsExecuted(id))
	assert.Equal(t, tenths(95), env.ledger.BalanceOf(receiver))
	assert.Equal(t, new(uint256.Int).Add(aliceBefore, tenths(5)), env.ledger.BalanceOf(alice))
	assert.Equal(t, new(uint256.Int).Sub(poolBefore, tokens(10)), env.pool.Balance())

	d, err := env.pool.GetDeposit(id)
	require.NoError(t, err)
	assert.True(t, d.Executed)

	entry := env.pool.StakeOf(alice)
	assert.Equal(t, tokens(1000), entry.Amount)
	assert.Equal(t, env.clock.now.Add(DefaultCooldown), entry.LockedUntil)

	last := env.events.events[len(env.events.events)-1]
	ev, ok := last.(ExecuteBridgeEvent)
	require.True(t, ok)
	assert.Equal(t, id, ev.DepositID)
	assert.Equal(t, alice, ev.Relayer)
}

func TestExecuteBridgeFloorsShares(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	poolBefore := env.pool.Balance()

	payout, fee, err := env.pool.ExecuteBridge(alice, 7, receiver, uint256.NewInt(19))
	require.NoError(t, err)
	// 19*95/100 = 18, 19*5/100 = 0, one unit stays in the pool
	assert.Equal(t, uint256.NewInt(18), payout)
	assert.True(t, fee.IsZero())
	assert.Equal(t, new(uint256.Int).Sub(poolBefore, uint256.NewInt(18)), env.pool.Balance())
}

func TestExecuteBridgeAlreadyExecutedTakesPrecedence(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	require.NoError(t, env.pool.Stake(bob, tokens(1000)))
	_, err := env.pool.Deposit(carol, tokens(10), receiver)
	require.NoError(t, err)

	_, _, err = env.pool.ExecuteBridge(alice, 0, receiver, tokens(10))
	require.NoError(t, err)

	balances := map[common.Address]*uint256.Int{}
	for _, addr := range []common.Address{alice, bob, carol, receiver, poolAddr} {
		balances[addr] = env.ledger.BalanceOf(addr)
	}

	// valid for bob on every other check
	_, _, err = env.pool.ExecuteBridge(bob, 0, receiver, tokens(10))
	assert.ErrorIs(t, err, ErrAlreadyExecuted)
	// over cap, locked, unstaked, zero amount: still AlreadyExecuted
	_, _, err = env.pool.ExecuteBridge(alice, 0, receiver, tokens(500))
	assert.ErrorIs(t, err, ErrAlreadyExecuted)
	_, _, err = env.pool.ExecuteBridge(carol, 0, carol, tokens(1))
	assert.ErrorIs(t, err, ErrAlreadyExecuted)
	_, _, err = env.pool.ExecuteBridge(bob, 0, common.Address{}, new(uint256.Int))
	assert.ErrorIs(t, err, ErrAlreadyExecuted)

	for addr, b := range balances {
		assert.Equal(t, b, env.ledger.BalanceOf(addr))
	}
	assert.True(t, env.pool.StakeOf(bob).LockedUntil.IsZero())
}

func TestExecuteBridgeStakeCap(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	_, err := env.pool.Deposit(bob, tokens(200), receiver)
	require.NoError(t, err)
	poolBefore := env.pool.Balance()
	aliceBefore := env.ledger.BalanceOf(alice)

	_, _, err = env.pool.ExecuteBridge(alice, 0, receiver, tokens(101))
	assert.ErrorIs(t, err, ErrAmountExceedsStakeCap)
	assert.False(t, env.pool.IsExecuted(0))
	assert.Equal(t, poolBefore, env.pool.Balance())
	assert.Equal(t, aliceBefore, env.ledger.BalanceOf(alice))
	assert.True(t, env.ledger.BalanceOf(receiver).IsZero())
	assert.True(t, env.pool.StakeOf(alice).LockedUntil.IsZero())

	_, _, err = env.pool.ExecuteBridge(alice, 0, receiver, tokens(100))
	assert.NoError(t, err)
}

func TestExecuteBridgeRequiresStake(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))

	_, _, err := env.pool.ExecuteBridge(bob, 0, receiver, tokens(1))
	assert.ErrorIs(t, err, ErrInsufficientStake)
	_, _, err = env.pool.ExecuteBridge(alice, 0, receiver, new(uint256.Int))
	assert.ErrorIs(t, err, ErrZeroAmount)
	_, _, err = env.pool.ExecuteBridge(alice, 0, common.Address{}, tokens(1))
	assert.ErrorIs(t, err, ErrInvalidReceiver)
	assert.False(t, env.pool.IsExecuted(0))
}

func TestCooldownLocksExecuteAndUnstake(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	require.NoError(t, env.pool.Stake(bob, tokens(1000)))

	_, _, err := env.pool.ExecuteBridge(alice, 0, receiver, tokens(10))
	require.NoError(t, err)

	assert.ErrorIs(t, env.pool.Unstake(alice, tokens(1000)), ErrStakeLocked)
	_, _, err = env.pool.ExecuteBridge(alice, 1, receiver, tokens(10))
	assert.ErrorIs(t, err, ErrStakeLocked)
	assert.False(t, env.pool.IsExecuted(1))

	// the lock is per address
	require.NoError(t, env.pool.Unstake(bob, tokens(1)))
	_, _, err = env.pool.ExecuteBridge(bob, 1, receiver, tokens(10))
	require.NoError(t, err)

	env.clock.Advance(DefaultCooldown - time.Second)
	assert.ErrorIs(t, env.pool.Unstake(alice, tokens(1000)), ErrStakeLocked)

	env.clock.Advance(time.Second)
	require.NoError(t, env.pool.Unstake(alice, tokens(1000)))
	assert.Equal(t, tokens(999), env.pool.TotalStaked())
}

func TestExecuteBridgeTransferFailureRollsBack(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	_, err := env.pool.Deposit(bob, tokens(10), receiver)
	require.NoError(t, err)

	failing := &failingLedger{MemoryLedger: env.ledger, failTo: alice}
	p, err := New(poolAddr, DefaultParams(), failing, WithClock(env.clock.Now))
	require.NoError(t, err)
	require.NoError(t, p.Restore(env.pool.Snapshot()))

	poolBefore := p.Balance()
	_, _, err = p.ExecuteBridge(alice, 0, receiver, tokens(10))
	require.ErrorIs(t, err, ErrTransferFailed)

	assert.False(t, p.IsExecuted(0))
	assert.True(t, env.ledger.BalanceOf(receiver).IsZero(), "receiver payout must be rolled back")
	assert.Equal(t, poolBefore, p.Balance())
	assert.True(t, p.StakeOf(alice).LockedUntil.IsZero())
}

func TestExecuteBridgeInsufficientPoolBalance(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	// drain the pool below the payout
	require.NoError(t, env.ledger.Transfer(poolAddr, carol, tokens(995)))

	_, _, err := env.pool.ExecuteBridge(alice, 0, receiver, tokens(10))
	require.ErrorIs(t, err, ErrTransferFailed)
	assert.ErrorIs(t, err, token.ErrInsufficientBalance)
	assert.Equal(t, tokens(5), env.pool.Balance())
	assert.True(t, env.ledger.BalanceOf(receiver).IsZero())
	assert.False(t, env.pool.IsExecuted(0))
}

type failingLedger struct {
	*token.MemoryLedger
	failTo common.Address
}

func (l *failingLedger) WithTransaction(fn func(tx token.Ledger) error) error {
	return l.MemoryLedger.WithTransaction(func(tx token.Ledger) error {
		return fn(&failingTx{Ledger: tx, failTo: l.failTo})
	})
}

type failingTx struct {
	token.Ledger
	failTo common.Address
}

func (t *failingTx) Transfer(from, to common.Address, amount *uint256.Int) error {
	if to == t.failTo {
		return errors.New("transfer rejected")
	}
	return t.Ledger.Transfer(from, to, amount)
}

func TestPoolCannotActAsCaller(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	require.NoError(t, env.ledger.Mint(poolAddr, tokens(500)))
	// an allowance of the pool on itself must not let it credit itself
	require.NoError(t, env.ledger.Approve(poolAddr, poolAddr, tokens(1500)))
	balanceBefore := env.pool.Balance()
	eventsBefore := len(env.events.events)

	assert.ErrorIs(t, env.pool.Stake(poolAddr, tokens(1000)), ErrInvalidCaller)
	assert.ErrorIs(t, env.pool.Unstake(poolAddr, tokens(1)), ErrInvalidCaller)

	_, err := env.pool.Deposit(poolAddr, tokens(5), receiver)
	assert.ErrorIs(t, err, ErrInvalidCaller)

	_, _, err = env.pool.ExecuteBridge(poolAddr, 3, receiver, tokens(1))
	assert.ErrorIs(t, err, ErrInvalidCaller)
	assert.False(t, env.pool.IsExecuted(3))

	removed, err := env.pool.VoteToBlacklistNode(poolAddr, alice)
	assert.ErrorIs(t, err, ErrInvalidCaller)
	assert.False(t, removed)

	assert.Equal(t, tokens(1000), env.pool.TotalStaked())
	assert.Equal(t, tokens(1000), env.pool.StakeOf(alice).Amount)
	assert.True(t, env.pool.StakeOf(poolAddr).Amount.IsZero())
	assert.True(t, env.pool.BlacklistVotes(alice).IsZero())
	assert.Equal(t, uint64(0), env.pool.DepositCount())
	assert.Equal(t, balanceBefore, env.pool.Balance())
	assert.Len(t, env.events.events, eventsBefore)
}

func TestPoolIsNotAValidReceiver(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	require.NoError(t, env.ledger.Mint(poolAddr, tokens(500)))

	_, err := env.pool.Deposit(bob, tokens(5), poolAddr)
	assert.ErrorIs(t, err, ErrInvalidReceiver)
	assert.Equal(t, uint64(0), env.pool.DepositCount())

	_, _, err = env.pool.ExecuteBridge(alice, 0, poolAddr, tokens(10))
	assert.ErrorIs(t, err, ErrInvalidReceiver)
	assert.False(t, env.pool.IsExecuted(0))
	assert.False(t, env.pool.IsLocked(alice))
}

func TestAlreadyExecutedPrecedesCallerCheck(t *testing.T) {
	env := setupPool(t, DefaultParams())
	require.NoError(t, env.pool.Stake(alice, tokens(1000)))
	require.NoError(t, env.ledger.Mint(poolAddr, tokens(500)))
	_, _, err := env.pool.ExecuteBridge(alice, 9, receiver, tokens(10))
	require.NoError(t, err)

	_, _, err = env.pool.ExecuteBridge(poolAddr, 9, receiver, tokens(10))
	assert.ErrorIs(t, err, ErrAlreadyExecuted)
}
