package token

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carol = common.HexToAddress("0x00000000000000000000000000000000000ca201")
)

func newFundedLedger(t *testing.T) *MemoryLedger {
	l := NewMemoryLedger()
	for _, addr := range []common.Address{alice, bob, carol} {
		require.NoError(t, l.Mint(addr, FromTokens(10000)))
	}
	return l
}

func TestMintSetsInitialBalances(t *testing.T) {
	l := newFundedLedger(t)

	assert.Equal(t, FromTokens(30000), l.TotalSupply())
	for _, addr := range []common.Address{alice, bob, carol} {
		assert.Equal(t, FromTokens(10000), l.BalanceOf(addr))
	}
	assert.True(t, l.BalanceOf(common.HexToAddress("0x1234")).IsZero())
}

func TestTransfer(t *testing.T) {
	l := newFundedLedger(t)

	require.NoError(t, l.Transfer(alice, bob, FromTokens(1000)))
	assert.Equal(t, FromTokens(9000), l.BalanceOf(alice))
	assert.Equal(t, FromTokens(11000), l.BalanceOf(bob))

	err := l.Transfer(alice, bob, FromTokens(9001))
	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.Equal(t, FromTokens(9000), l.BalanceOf(alice))

	assert.ErrorIs(t, l.Transfer(alice, common.Address{}, uint256.NewInt(1)), ErrInvalidAddress)
}

func TestTransferFromConsumesAllowance(t *testing.T) {
	l := newFundedLedger(t)

	err := l.TransferFrom(bob, alice, carol, FromTokens(1))
	require.ErrorIs(t, err, ErrInsufficientAllowance)

	require.NoError(t, l.Approve(alice, bob, FromTokens(1000)))
	assert.Equal(t, FromTokens(1000), l.Allowance(alice, bob))

	require.NoError(t, l.TransferFrom(bob, alice, carol, FromTokens(400)))
	assert.Equal(t, FromTokens(600), l.Allowance(alice, bob))
	assert.Equal(t, FromTokens(9600), l.BalanceOf(alice))
	assert.Equal(t, FromTokens(10400), l.BalanceOf(carol))

	err = l.TransferFrom(bob, alice, carol, FromTokens(601))
	assert.ErrorIs(t, err, ErrInsufficientAllowance)
	assert.Equal(t, FromTokens(600), l.Allowance(alice, bob))
}

func TestTransferFromFailsOnBalanceKeepsAllowance(t *testing.T) {
	l := newFundedLedger(t)
	require.NoError(t, l.Approve(alice, bob, FromTokens(20000)))

	err := l.TransferFrom(bob, alice, carol, FromTokens(10001))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, FromTokens(20000), l.Allowance(alice, bob))
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	l := newFundedLedger(t)
	require.NoError(t, l.Approve(alice, bob, FromTokens(50)))
	boom := errors.New("boom")

	err := l.WithTransaction(func(tx Ledger) error {
		if err := tx.Transfer(alice, bob, FromTokens(100)); err != nil {
			return err
		}
		if err := tx.TransferFrom(bob, alice, common.HexToAddress("0xdead"), FromTokens(50)); err != nil {
			return err
		}
		assert.Equal(t, FromTokens(9850), tx.BalanceOf(alice))
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, FromTokens(10000), l.BalanceOf(alice))
	assert.Equal(t, FromTokens(10000), l.BalanceOf(bob))
	assert.True(t, l.BalanceOf(common.HexToAddress("0xdead")).IsZero())
	assert.Equal(t, FromTokens(50), l.Allowance(alice, bob))

	snap := l.Snapshot()
	_, present := snap.Balances[common.HexToAddress("0xdead")]
	assert.False(t, present, "rolled back transfer must not leave an entry behind")
}

func TestWithTransactionCommits(t *testing.T) {
	l := newFundedLedger(t)

	err := l.WithTransaction(func(tx Ledger) error {
		if err := tx.Transfer(alice, bob, FromTokens(10)); err != nil {
			return err
		}
		return tx.Transfer(alice, carol, FromTokens(20))
	})
	require.NoError(t, err)
	assert.Equal(t, FromTokens(9970), l.BalanceOf(alice))
	assert.Equal(t, FromTokens(10010), l.BalanceOf(bob))
	assert.Equal(t, FromTokens(10020), l.BalanceOf(carol))
}

func TestSnapshotRestore(t *testing.T) {
	l := newFundedLedger(t)
	require.NoError(t, l.Approve(alice, bob, FromTokens(5)))
	snap := l.Snapshot()

	require.NoError(t, l.Transfer(alice, bob, FromTokens(1)))

	restored := NewMemoryLedger()
	require.NoError(t, restored.Restore(snap))
	assert.Equal(t, FromTokens(10000), restored.BalanceOf(alice))
	assert.Equal(t, FromTokens(5), restored.Allowance(alice, bob))
	assert.Equal(t, FromTokens(30000), restored.TotalSupply())

	snap.TotalSupply = FromTokens(1)
	assert.Error(t, restored.Restore(snap))
}
