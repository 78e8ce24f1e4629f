package model

const DepositCollection = "deposits"

// DepositDocument is a deposit made on this side of the bridge. Amounts are
// decimal strings in token base units.
type DepositDocument struct {
	DepositID uint64 `bson:"_id"` // Primary key
	Sender    string `bson:"sender"`
	Receiver  string `bson:"receiver"`
	Amount    string `bson:"amount"`
	Timestamp int64  `bson:"timestamp"`
}

type DepositsBySenderPagination struct {
	DepositID uint64 `bson:"deposit_id"`
}

func BuildDepositsBySenderPaginationToken(d DepositDocument) (string, error) {
	return EncodePaginationToken(DepositsBySenderPagination{DepositID: d.DepositID})
}
