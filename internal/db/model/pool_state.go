package model

const PoolStateCollection = "pool_state"

// PoolStateDocument is the persisted pool bookkeeping and token ledger of
// one side. There is a single document per side.
type PoolStateDocument struct {
	Side        string               `bson:"_id"` // Primary key
	Stakes      []StakeEntry         `bson:"stakes"`
	TotalStaked string               `bson:"total_staked"`
	Deposits    []PoolDepositEntry   `bson:"deposits"`
	Executed    []uint64             `bson:"executed"`
	Votes       []BlacklistVoteEntry `bson:"votes"`
	Ledger      LedgerState          `bson:"ledger"`
	UpdatedAt   int64                `bson:"updated_at"`
}

type StakeEntry struct {
	Staker      string `bson:"staker"`
	Amount      string `bson:"amount"`
	LockedUntil int64  `bson:"locked_until"`
}

type PoolDepositEntry struct {
	DepositID uint64 `bson:"deposit_id"`
	Sender    string `bson:"sender"`
	Receiver  string `bson:"receiver"`
	Amount    string `bson:"amount"`
}

type BlacklistVoteEntry struct {
	Target string `bson:"target"`
	Voter  string `bson:"voter"`
	Weight string `bson:"weight"`
}

type LedgerState struct {
	Balances    []BalanceEntry   `bson:"balances"`
	Allowances  []AllowanceEntry `bson:"allowances"`
	TotalSupply string           `bson:"total_supply"`
}

type BalanceEntry struct {
	Owner  string `bson:"owner"`
	Amount string `bson:"amount"`
}

type AllowanceEntry struct {
	Owner   string `bson:"owner"`
	Spender string `bson:"spender"`
	Amount  string `bson:"amount"`
}
