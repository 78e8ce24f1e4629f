package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/db"
	"github.com/babylonchain/bridge-pool-service/internal/db/model"
	"github.com/babylonchain/bridge-pool-service/internal/pool"
	"github.com/babylonchain/bridge-pool-service/internal/token"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

func (s *Services) loadState(ctx context.Context, genesis *types.TokenGenesis) error {
	side := s.cfg.Pool.Side
	doc, err := s.DbClient.FindPoolState(ctx, side)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return fmt.Errorf("error while loading pool state: %w", err)
		}
		return s.seedFromGenesis(ctx, genesis)
	}

	poolState, ledgerState, err := documentToState(doc)
	if err != nil {
		return fmt.Errorf("invalid persisted pool state of %s: %w", side, err)
	}
	if err := s.ledger.Restore(ledgerState); err != nil {
		return fmt.Errorf("error while restoring the ledger: %w", err)
	}
	if err := s.pool.Restore(poolState); err != nil {
		return fmt.Errorf("error while restoring the pool: %w", err)
	}
	log.Ctx(ctx).Info().Str("side", side).
		Str("totalStaked", poolState.TotalStaked.Dec()).
		Int("deposits", len(poolState.Deposits)).
		Msg("pool state restored")
	return nil
}

func (s *Services) seedFromGenesis(ctx context.Context, genesis *types.TokenGenesis) error {
	if genesis == nil {
		return fmt.Errorf("no persisted state for side %s and no genesis given", s.cfg.Pool.Side)
	}
	for addr, amount := range genesis.Allocations {
		if err := s.ledger.Mint(addr, amount); err != nil {
			return fmt.Errorf("error while minting genesis balance of %s: %w", addr.Hex(), err)
		}
	}
	if genesis.Liquidity != nil && !genesis.Liquidity.IsZero() {
		if err := s.ledger.Mint(s.pool.Address(), genesis.Liquidity); err != nil {
			return fmt.Errorf("error while minting pool liquidity: %w", err)
		}
	}

	doc := stateToDocument(s.cfg.Pool.Side, s.pool.Snapshot(), s.ledger.Snapshot(), time.Now())
	if err := s.DbClient.SavePoolState(ctx, doc); err != nil {
		return fmt.Errorf("error while saving the genesis state: %w", err)
	}
	log.Ctx(ctx).Info().Str("side", s.cfg.Pool.Side).
		Int("accounts", len(genesis.Allocations)).
		Str("totalSupply", s.ledger.TotalSupply().Dec()).
		Msg("pool seeded from genesis")
	return nil
}

func (s *Services) persistState(ctx context.Context) error {
	doc := stateToDocument(s.cfg.Pool.Side, s.pool.Snapshot(), s.ledger.Snapshot(), time.Now())
	if err := s.DbClient.SavePoolState(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("side", s.cfg.Pool.Side).Msg("error while saving pool state")
		return err
	}
	return nil
}

func stateToDocument(side string, p *pool.State, l *token.Snapshot, now time.Time) *model.PoolStateDocument {
	doc := &model.PoolStateDocument{
		Side:        side,
		Stakes:      make([]model.StakeEntry, 0, len(p.Stakes)),
		TotalStaked: p.TotalStaked.Dec(),
		Deposits:    make([]model.PoolDepositEntry, 0, len(p.Deposits)),
		Executed:    slices.Clone(p.Executed),
		Votes:       make([]model.BlacklistVoteEntry, 0),
		Ledger: model.LedgerState{
			Balances:    make([]model.BalanceEntry, 0, len(l.Balances)),
			Allowances:  make([]model.AllowanceEntry, 0),
			TotalSupply: l.TotalSupply.Dec(),
		},
		UpdatedAt: now.Unix(),
	}

	for addr, e := range p.Stakes {
		var lockedUntil int64
		if !e.LockedUntil.IsZero() {
			// rounded up, a restart must not shorten a cooldown
			lockedUntil = e.LockedUntil.Unix()
			if e.LockedUntil.Nanosecond() > 0 {
				lockedUntil++
			}
		}
		doc.Stakes = append(doc.Stakes, model.StakeEntry{
			Staker:      addr.Hex(),
			Amount:      e.Amount.Dec(),
			LockedUntil: lockedUntil,
		})
	}
	slices.SortFunc(doc.Stakes, func(a, b model.StakeEntry) int { return strings.Compare(a.Staker, b.Staker) })

	for _, d := range p.Deposits {
		doc.Deposits = append(doc.Deposits, model.PoolDepositEntry{
			DepositID: d.ID,
			Sender:    d.Sender.Hex(),
			Receiver:  d.Receiver.Hex(),
			Amount:    d.Amount.Dec(),
		})
	}
	slices.Sort(doc.Executed)

	for target, voters := range p.Votes {
		for voter, weight := range voters {
			doc.Votes = append(doc.Votes, model.BlacklistVoteEntry{
				Target: target.Hex(),
				Voter:  voter.Hex(),
				Weight: weight.Dec(),
			})
		}
	}
	slices.SortFunc(doc.Votes, func(a, b model.BlacklistVoteEntry) int {
		if c := strings.Compare(a.Target, b.Target); c != 0 {
			return c
		}
		return strings.Compare(a.Voter, b.Voter)
	})

	for owner, amount := range l.Balances {
		doc.Ledger.Balances = append(doc.Ledger.Balances, model.BalanceEntry{Owner: owner.Hex(), Amount: amount.Dec()})
	}
	slices.SortFunc(doc.Ledger.Balances, func(a, b model.BalanceEntry) int { return strings.Compare(a.Owner, b.Owner) })

	for owner, spenders := range l.Allowances {
		for spender, amount := range spenders {
			doc.Ledger.Allowances = append(doc.Ledger.Allowances, model.AllowanceEntry{
				Owner:   owner.Hex(),
				Spender: spender.Hex(),
				Amount:  amount.Dec(),
			})
		}
	}
	slices.SortFunc(doc.Ledger.Allowances, func(a, b model.AllowanceEntry) int {
		if c := strings.Compare(a.Owner, b.Owner); c != 0 {
			return c
		}
		return strings.Compare(a.Spender, b.Spender)
	})
	return doc
}

func documentToState(doc *model.PoolStateDocument) (*pool.State, *token.Snapshot, error) {
	totalStaked, err := parseStoredAmount("total_staked", doc.TotalStaked)
	if err != nil {
		return nil, nil, err
	}
	p := &pool.State{
		Stakes:      make(map[common.Address]pool.StakeEntry, len(doc.Stakes)),
		TotalStaked: totalStaked,
		Deposits:    make([]pool.Deposit, 0, len(doc.Deposits)),
		Executed:    slices.Clone(doc.Executed),
		Votes:       make(map[common.Address]map[common.Address]*uint256.Int),
	}
	for _, e := range doc.Stakes {
		amount, err := parseStoredAmount("stake of "+e.Staker, e.Amount)
		if err != nil {
			return nil, nil, err
		}
		var lockedUntil time.Time
		if e.LockedUntil != 0 {
			lockedUntil = time.Unix(e.LockedUntil, 0)
		}
		p.Stakes[common.HexToAddress(e.Staker)] = pool.StakeEntry{Amount: amount, LockedUntil: lockedUntil}
	}
	for _, d := range doc.Deposits {
		amount, err := parseStoredAmount(fmt.Sprintf("deposit %d", d.DepositID), d.Amount)
		if err != nil {
			return nil, nil, err
		}
		p.Deposits = append(p.Deposits, pool.Deposit{
			ID:       d.DepositID,
			Sender:   common.HexToAddress(d.Sender),
			Receiver: common.HexToAddress(d.Receiver),
			Amount:   amount,
		})
	}
	for _, v := range doc.Votes {
		weight, err := parseStoredAmount("vote of "+v.Voter, v.Weight)
		if err != nil {
			return nil, nil, err
		}
		target := common.HexToAddress(v.Target)
		if _, ok := p.Votes[target]; !ok {
			p.Votes[target] = make(map[common.Address]*uint256.Int)
		}
		p.Votes[target][common.HexToAddress(v.Voter)] = weight
	}

	totalSupply, err := parseStoredAmount("total_supply", doc.Ledger.TotalSupply)
	if err != nil {
		return nil, nil, err
	}
	l := &token.Snapshot{
		Balances:    make(map[common.Address]*uint256.Int, len(doc.Ledger.Balances)),
		Allowances:  make(map[common.Address]map[common.Address]*uint256.Int),
		TotalSupply: totalSupply,
	}
	for _, b := range doc.Ledger.Balances {
		amount, err := parseStoredAmount("balance of "+b.Owner, b.Amount)
		if err != nil {
			return nil, nil, err
		}
		l.Balances[common.HexToAddress(b.Owner)] = amount
	}
	for _, a := range doc.Ledger.Allowances {
		amount, err := parseStoredAmount("allowance of "+a.Owner, a.Amount)
		if err != nil {
			return nil, nil, err
		}
		owner := common.HexToAddress(a.Owner)
		if _, ok := l.Allowances[owner]; !ok {
			l.Allowances[owner] = make(map[common.Address]*uint256.Int)
		}
		l.Allowances[owner][common.HexToAddress(a.Spender)] = amount
	}
	return p, l, nil
}

func parseStoredAmount(field, value string) (*uint256.Int, error) {
	amount, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return amount, nil
}
