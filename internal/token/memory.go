package token

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// MemoryLedger is an in-process ERC20 style ledger. Stored amounts are never
// mutated in place, every write replaces the pointer, so the undo journal can
// keep references to previous values.
type MemoryLedger struct {
	mu          sync.Mutex
	balances    map[common.Address]*uint256.Int
	allowances  map[common.Address]map[common.Address]*uint256.Int
	totalSupply *uint256.Int

	// journal is non-nil while a transaction is open
	journal []func()
}

// Snapshot is a deep copy of the ledger state.
type Snapshot struct {
	Balances    map[common.Address]*uint256.Int
	Allowances  map[common.Address]map[common.Address]*uint256.Int
	TotalSupply *uint256.Int
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances:    make(map[common.Address]*uint256.Int),
		allowances:  make(map[common.Address]map[common.Address]*uint256.Int),
		totalSupply: new(uint256.Int),
	}
}

// Mint creates amount new tokens owned by `to`. Only used when seeding the
// ledger from genesis.
func (l *MemoryLedger) Mint(to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if to == (common.Address{}) {
		return ErrInvalidAddress
	}
	supply, overflow := new(uint256.Int).AddOverflow(l.totalSupply, amount)
	if overflow {
		return ErrOverflow
	}
	balance, overflow := new(uint256.Int).AddOverflow(l.balanceOf(to), amount)
	if overflow {
		return ErrOverflow
	}
	l.setBalance(to, balance)
	l.totalSupply = supply
	return nil
}

func (l *MemoryLedger) BalanceOf(owner common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceOf(owner).Clone()
}

func (l *MemoryLedger) Allowance(owner, spender common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowance(owner, spender).Clone()
}

func (l *MemoryLedger) TotalSupply() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalSupply.Clone()
}

func (l *MemoryLedger) Approve(owner, spender common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.approve(owner, spender, amount)
}

func (l *MemoryLedger) Transfer(from, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transfer(from, to, amount)
}

func (l *MemoryLedger) TransferFrom(spender, from, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transferFrom(spender, from, to, amount)
}

// WithTransaction holds the ledger lock for the whole of fn. Nested calls on
// tx join the outer transaction.
func (l *MemoryLedger) WithTransaction(fn func(tx Ledger) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.journal = make([]func(), 0)
	defer func() { l.journal = nil }()

	if err := fn(&memoryTx{l: l}); err != nil {
		for i := len(l.journal) - 1; i >= 0; i-- {
			l.journal[i]()
		}
		return err
	}
	return nil
}

func (l *MemoryLedger) Snapshot() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := &Snapshot{
		Balances:    make(map[common.Address]*uint256.Int, len(l.balances)),
		Allowances:  make(map[common.Address]map[common.Address]*uint256.Int, len(l.allowances)),
		TotalSupply: l.totalSupply.Clone(),
	}
	for addr, b := range l.balances {
		s.Balances[addr] = b.Clone()
	}
	for owner, spenders := range l.allowances {
		m := make(map[common.Address]*uint256.Int, len(spenders))
		for spender, a := range spenders {
			m[spender] = a.Clone()
		}
		s.Allowances[owner] = m
	}
	return s
}

// Restore replaces the ledger state with s. The sum of balances must match
// the total supply.
func (l *MemoryLedger) Restore(s *Snapshot) error {
	sum := new(uint256.Int)
	for _, b := range s.Balances {
		var overflow bool
		if sum, overflow = new(uint256.Int).AddOverflow(sum, b); overflow {
			return ErrOverflow
		}
	}
	if s.TotalSupply == nil || !sum.Eq(s.TotalSupply) {
		return fmt.Errorf("ledger snapshot is inconsistent: balances sum to %s, total supply is %v", sum.Dec(), s.TotalSupply)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances = make(map[common.Address]*uint256.Int, len(s.Balances))
	for addr, b := range s.Balances {
		l.balances[addr] = b.Clone()
	}
	l.allowances = make(map[common.Address]map[common.Address]*uint256.Int, len(s.Allowances))
	for owner, spenders := range s.Allowances {
		m := make(map[common.Address]*uint256.Int, len(spenders))
		for spender, a := range spenders {
			m[spender] = a.Clone()
		}
		l.allowances[owner] = m
	}
	l.totalSupply = s.TotalSupply.Clone()
	return nil
}

// The lower-case methods below expect l.mu to be held.

func (l *MemoryLedger) balanceOf(owner common.Address) *uint256.Int {
	if b, ok := l.balances[owner]; ok {
		return b
	}
	return new(uint256.Int)
}

func (l *MemoryLedger) allowance(owner, spender common.Address) *uint256.Int {
	if a, ok := l.allowances[owner][spender]; ok {
		return a
	}
	return new(uint256.Int)
}

func (l *MemoryLedger) setBalance(owner common.Address, amount *uint256.Int) {
	if l.journal != nil {
		prev, existed := l.balances[owner]
		l.journal = append(l.journal, func() {
			if existed {
				l.balances[owner] = prev
			} else {
				delete(l.balances, owner)
			}
		})
	}
	l.balances[owner] = amount
}

func (l *MemoryLedger) setAllowance(owner, spender common.Address, amount *uint256.Int) {
	spenders, ok := l.allowances[owner]
	if !ok {
		spenders = make(map[common.Address]*uint256.Int)
		l.allowances[owner] = spenders
	}
	if l.journal != nil {
		prev, existed := spenders[spender]
		l.journal = append(l.journal, func() {
			if existed {
				spenders[spender] = prev
			} else {
				delete(spenders, spender)
			}
		})
	}
	spenders[spender] = amount
}

func (l *MemoryLedger) approve(owner, spender common.Address, amount *uint256.Int) error {
	if owner == (common.Address{}) || spender == (common.Address{}) {
		return ErrInvalidAddress
	}
	l.setAllowance(owner, spender, amount.Clone())
	return nil
}

func (l *MemoryLedger) transfer(from, to common.Address, amount *uint256.Int) error {
	if from == (common.Address{}) || to == (common.Address{}) {
		return ErrInvalidAddress
	}
	fromBalance := l.balanceOf(from)
	if fromBalance.Lt(amount) {
		return fmt.Errorf("%w: balance %s, amount %s", ErrInsufficientBalance, fromBalance.Dec(), amount.Dec())
	}
	if from == to {
		return nil
	}
	toBalance, overflow := new(uint256.Int).AddOverflow(l.balanceOf(to), amount)
	if overflow {
		return ErrOverflow
	}
	l.setBalance(from, new(uint256.Int).Sub(fromBalance, amount))
	l.setBalance(to, toBalance)
	return nil
}

func (l *MemoryLedger) transferFrom(spender, from, to common.Address, amount *uint256.Int) error {
	allowed := l.allowance(from, spender)
	if allowed.Lt(amount) {
		return fmt.Errorf("%w: allowance %s, amount %s", ErrInsufficientAllowance, allowed.Dec(), amount.Dec())
	}
	if err := l.transfer(from, to, amount); err != nil {
		return err
	}
	l.setAllowance(from, spender, new(uint256.Int).Sub(allowed, amount))
	return nil
}

// memoryTx is the view handed to WithTransaction callbacks. The ledger lock
// is already held.
type memoryTx struct {
	l *MemoryLedger
}

func (t *memoryTx) BalanceOf(owner common.Address) *uint256.Int {
	return t.l.balanceOf(owner).Clone()
}

func (t *memoryTx) Allowance(owner, spender common.Address) *uint256.Int {
	return t.l.allowance(owner, spender).Clone()
}

func (t *memoryTx) TotalSupply() *uint256.Int {
	return t.l.totalSupply.Clone()
}

func (t *memoryTx) Approve(owner, spender common.Address, amount *uint256.Int) error {
	return t.l.approve(owner, spender, amount)
}

func (t *memoryTx) Transfer(from, to common.Address, amount *uint256.Int) error {
	return t.l.transfer(from, to, amount)
}

func (t *memoryTx) TransferFrom(spender, from, to common.Address, amount *uint256.Int) error {
	return t.l.transferFrom(spender, from, to, amount)
}

func (t *memoryTx) WithTransaction(fn func(tx Ledger) error) error {
	return fn(t)
}
