package services

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/db"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type DepositResultPublic struct {
	DepositID uint64 `json:"deposit_id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Amount    string `json:"amount"`
}

type ExecuteBridgeResultPublic struct {
	DepositID   uint64 `json:"deposit_id"`
	Relayer     string `json:"relayer"`
	Receiver    string `json:"receiver"`
	Amount      string `json:"amount"`
	Payout      string `json:"payout"`
	Fee         string `json:"fee"`
	LockedUntil int64  `json:"locked_until"`
}

// DepositPublic is an entry of the deposit registry. Executed tells whether
// the id was paid out by this side.
type DepositPublic struct {
	DepositID uint64 `json:"deposit_id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Amount    string `json:"amount"`
	Executed  bool   `json:"executed"`
}

type DepositExecutionPublic struct {
	DepositID uint64 `json:"deposit_id"`
	Executed  bool   `json:"executed"`
}

type IndexedDepositPublic struct {
	DepositID uint64 `json:"deposit_id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Amount    string `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// Deposit locks amount from caller in the pool, to be paid out to receiver
// on the other side.
func (s *Services) Deposit(
	ctx context.Context, caller common.Address, amount *uint256.Int, receiver common.Address,
) (*DepositResultPublic, *types.Error) {
	var depositID uint64
	err := s.apply(ctx, "deposit", func() error {
		var err error
		depositID, err = s.pool.Deposit(caller, amount, receiver)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &DepositResultPublic{
		DepositID: depositID,
		Sender:    caller.Hex(),
		Receiver:  receiver.Hex(),
		Amount:    amount.Dec(),
	}, nil
}

// ExecuteBridge pays out the remote deposit depositID to receiver on behalf
// of the relayer caller.
func (s *Services) ExecuteBridge(
	ctx context.Context, caller common.Address, depositID uint64, receiver common.Address, amount *uint256.Int,
) (*ExecuteBridgeResultPublic, *types.Error) {
	var payout, fee *uint256.Int
	err := s.apply(ctx, "execute_bridge", func() error {
		var err error
		payout, fee, err = s.pool.ExecuteBridge(caller, depositID, receiver, amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ExecuteBridgeResultPublic{
		DepositID:   depositID,
		Relayer:     caller.Hex(),
		Receiver:    receiver.Hex(),
		Amount:      amount.Dec(),
		Payout:      payout.Dec(),
		Fee:         fee.Dec(),
		LockedUntil: s.pool.StakeOf(caller).LockedUntil.Unix(),
	}, nil
}

func (s *Services) GetDeposit(ctx context.Context, depositID uint64) (*DepositPublic, *types.Error) {
	d, err := s.pool.GetDeposit(depositID)
	if err != nil {
		return nil, mapPoolError(ctx, "get_deposit", err)
	}
	return &DepositPublic{
		DepositID: d.ID,
		Sender:    d.Sender.Hex(),
		Receiver:  d.Receiver.Hex(),
		Amount:    d.Amount.Dec(),
		Executed:  d.Executed,
	}, nil
}

func (s *Services) IsExecuted(ctx context.Context, depositID uint64) *DepositExecutionPublic {
	return &DepositExecutionPublic{
		DepositID: depositID,
		Executed:  s.pool.IsExecuted(depositID),
	}
}

// GetDepositsBySender lists the indexed deposits of sender, ordered by id.
func (s *Services) GetDepositsBySender(
	ctx context.Context, sender common.Address, paginationKey string,
) ([]IndexedDepositPublic, string, *types.Error) {
	resultMap, err := s.DbClient.FindDepositsBySender(ctx, sender.Hex(), paginationKey)
	if err != nil {
		if db.IsInvalidPaginationTokenError(err) {
			log.Ctx(ctx).Warn().Err(err).Msg("Invalid pagination token when fetching deposits by sender")
			return nil, "", types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		log.Ctx(ctx).Error().Err(err).Msg("Failed to find deposits by sender")
		return nil, "", types.NewInternalServiceError(err)
	}
	deposits := make([]IndexedDepositPublic, 0, len(resultMap.Data))
	for _, d := range resultMap.Data {
		deposits = append(deposits, IndexedDepositPublic{
			DepositID: d.DepositID,
			Sender:    d.Sender,
			Receiver:  d.Receiver,
			Amount:    d.Amount,
			Timestamp: d.Timestamp,
		})
	}
	return deposits, resultMap.PaginationToken, nil
}

// GetExecution returns the indexed payout of the remote deposit depositID.
func (s *Services) GetExecution(ctx context.Context, depositID uint64) (*ExecuteBridgeResultPublic, *types.Error) {
	execution, err := s.DbClient.FindExecutionByDepositID(ctx, depositID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "execution not found")
		}
		log.Ctx(ctx).Error().Err(err).Uint64("depositId", depositID).Msg("Failed to find execution")
		return nil, types.NewInternalServiceError(err)
	}
	return &ExecuteBridgeResultPublic{
		DepositID:   execution.DepositID,
		Relayer:     execution.Relayer,
		Receiver:    execution.Receiver,
		Amount:      execution.Amount,
		Payout:      execution.Payout,
		Fee:         execution.Fee,
		LockedUntil: execution.LockedUntil,
	}, nil
}
