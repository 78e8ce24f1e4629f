package client

import "fmt"

const (
	depositQueueSuffix   = "deposit_queue"
	relayQueueSuffix     = "relay_queue"
	executionQueueSuffix = "execution_queue"
)

// DepositQueueName is consumed by the side's own deposit indexer.
func DepositQueueName(side string) string {
	return fmt.Sprintf("%s_%s", side, depositQueueSuffix)
}

// RelayQueueName carries the side's deposits to the relayer of the other
// side.
func RelayQueueName(side string) string {
	return fmt.Sprintf("%s_%s", side, relayQueueSuffix)
}

func ExecutionQueueName(side string) string {
	return fmt.Sprintf("%s_%s", side, executionQueueSuffix)
}

type EventType int

const (
	DepositEventType       EventType = 1
	ExecuteBridgeEventType EventType = 2
)

type EventMessage interface {
	GetEventType() EventType
	GetSide() string
}

// Amounts are decimal strings in token base units, timestamps are unix
// seconds.
type DepositEvent struct {
	EventType EventType `json:"event_type"` // always 1
	Side      string    `json:"side"`
	DepositID uint64    `json:"deposit_id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Amount    string    `json:"amount"`
	Timestamp int64     `json:"timestamp"`
}

func (e DepositEvent) GetEventType() EventType {
	return DepositEventType
}

func (e DepositEvent) GetSide() string {
	return e.Side
}

func NewDepositEvent(
	side string, depositID uint64, sender, receiver, amount string, timestamp int64,
) DepositEvent {
	return DepositEvent{
		EventType: DepositEventType,
		Side:      side,
		DepositID: depositID,
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Timestamp: timestamp,
	}
}

type ExecuteBridgeEvent struct {
	EventType   EventType `json:"event_type"` // always 2
	Side        string    `json:"side"`
	DepositID   uint64    `json:"deposit_id"`
	Relayer     string    `json:"relayer"`
	Receiver    string    `json:"receiver"`
	Amount      string    `json:"amount"`
	Payout      string    `json:"payout"`
	Fee         string    `json:"fee"`
	LockedUntil int64     `json:"locked_until"`
	Timestamp   int64     `json:"timestamp"`
}

func (e ExecuteBridgeEvent) GetEventType() EventType {
	return ExecuteBridgeEventType
}

func (e ExecuteBridgeEvent) GetSide() string {
	return e.Side
}

func NewExecuteBridgeEvent(
	side string, depositID uint64, relayer, receiver, amount, payout, fee string,
	lockedUntil, timestamp int64,
) ExecuteBridgeEvent {
	return ExecuteBridgeEvent{
		EventType:   ExecuteBridgeEventType,
		Side:        side,
		DepositID:   depositID,
		Relayer:     relayer,
		Receiver:    receiver,
		Amount:      amount,
		Payout:      payout,
		Fee:         fee,
		LockedUntil: lockedUntil,
		Timestamp:   timestamp,
	}
}
