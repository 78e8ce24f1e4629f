package handlers

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type DepositRequestPayload struct {
	Caller   string `json:"caller"`
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
}

type ExecuteBridgeRequestPayload struct {
	Caller    string `json:"caller"`
	DepositID uint64 `json:"deposit_id"`
	Receiver  string `json:"receiver"`
	Amount    string `json:"amount"`
}

// Deposit godoc
// @Summary Deposit tokens for the other side
// @Description Locks amount from the caller in the pool and registers a deposit for receiver on the other side.
// @Accept json
// @Produce json
// @Param payload body DepositRequestPayload true "Deposit Request Payload"
// @Success 200 {object} PublicResponse[services.DepositResultPublic] "Registered deposit"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 422 {object} types.Error "Error: Transfer failed"
// @Router /v1/deposit [post]
func (h *Handler) Deposit(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRequestPayload[DepositRequestPayload](request)
	if err != nil {
		return nil, err
	}
	caller, err := parseAddress("caller", payload.Caller)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddress("receiver", payload.Receiver)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount)
	if err != nil {
		return nil, err
	}

	result, err := h.services.Deposit(request.Context(), caller, amount, receiver)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// ExecuteBridge godoc
// @Summary Execute a deposit of the other side
// @Description Pays out a remote deposit: 95% to the receiver and 5% to the caller, who must be staked.
// @Description A deposit id can only be executed once and the caller enters a cooldown.
// @Accept json
// @Produce json
// @Param payload body ExecuteBridgeRequestPayload true "Execute Bridge Request Payload"
// @Success 200 {object} PublicResponse[services.ExecuteBridgeResultPublic] "Payout"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Stake is locked"
// @Failure 409 {object} types.Error "Error: Deposit already executed"
// @Router /v1/execute-bridge [post]
func (h *Handler) ExecuteBridge(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRequestPayload[ExecuteBridgeRequestPayload](request)
	if err != nil {
		return nil, err
	}
	caller, err := parseAddress("caller", payload.Caller)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddress("receiver", payload.Receiver)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount)
	if err != nil {
		return nil, err
	}

	result, err := h.services.ExecuteBridge(request.Context(), caller, payload.DepositID, receiver, amount)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// GetDeposit godoc
// @Summary Get deposit
// @Description Returns a deposit made on this side.
// @Produce json
// @Param deposit_id query integer true "Deposit id"
// @Success 200 {object} PublicResponse[services.DepositPublic] "Deposit"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Router /v1/deposit [get]
func (h *Handler) GetDeposit(request *http.Request) (*Result, *types.Error) {
	depositID, err := parseDepositIDQuery(request)
	if err != nil {
		return nil, err
	}
	deposit, err := h.services.GetDeposit(request.Context(), depositID)
	if err != nil {
		return nil, err
	}
	return NewResult(deposit), nil
}

// GetDepositsBySender godoc
// @Summary Get deposits by sender
// @Description Lists the indexed deposits of a sender, ordered by deposit id.
// @Produce json
// @Param sender query string true "Sender address"
// @Param pagination_key query string false "Pagination key to fetch the next page of deposits"
// @Success 200 {object} PublicResponse[[]services.IndexedDepositPublic]{array} "List of deposits and pagination token"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/deposits [get]
func (h *Handler) GetDepositsBySender(request *http.Request) (*Result, *types.Error) {
	sender, err := parseAddressQuery(request, "sender")
	if err != nil {
		return nil, err
	}
	paginationKey := request.URL.Query().Get("pagination_key")

	deposits, newPaginationKey, err := h.services.GetDepositsBySender(request.Context(), sender, paginationKey)
	if err != nil {
		return nil, err
	}
	return NewResultWithPagination(deposits, newPaginationKey), nil
}

// GetExecuted godoc
// @Summary Check whether a deposit was executed
// @Description Tells whether the given deposit id of the other side was paid out by this side.
// @Produce json
// @Param deposit_id query integer true "Deposit id"
// @Success 200 {object} PublicResponse[services.DepositExecutionPublic] "Execution flag"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/executed [get]
func (h *Handler) GetExecuted(request *http.Request) (*Result, *types.Error) {
	depositID, err := parseDepositIDQuery(request)
	if err != nil {
		return nil, err
	}
	return NewResult(h.services.IsExecuted(request.Context(), depositID)), nil
}

// GetExecution godoc
// @Summary Get execution
// @Description Returns the indexed payout of a deposit of the other side.
// @Produce json
// @Param deposit_id query integer true "Deposit id"
// @Success 200 {object} PublicResponse[services.ExecuteBridgeResultPublic] "Execution"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Router /v1/execution [get]
func (h *Handler) GetExecution(request *http.Request) (*Result, *types.Error) {
	depositID, err := parseDepositIDQuery(request)
	if err != nil {
		return nil, err
	}
	execution, err := h.services.GetExecution(request.Context(), depositID)
	if err != nil {
		return nil, err
	}
	return NewResult(execution), nil
}
