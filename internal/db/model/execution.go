package model

const ExecutionCollection = "executions"

// ExecutionDocument is a payout made by this side for a deposit observed on
// the remote side. DepositID is the remote deposit id.
type ExecutionDocument struct {
	DepositID   uint64 `bson:"_id"` // Primary key
	Relayer     string `bson:"relayer"`
	Receiver    string `bson:"receiver"`
	Amount      string `bson:"amount"`
	Payout      string `bson:"payout"`
	Fee         string `bson:"fee"`
	LockedUntil int64  `bson:"locked_until"`
	Timestamp   int64  `bson:"timestamp"`
}
