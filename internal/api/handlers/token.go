package handlers

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type ApproveRequestPayload struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type TransferRequestPayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Approve godoc
// @Summary Approve a spender
// @Description Sets the amount spender may move from owner. Staking and deposits spend through the pool address.
// @Accept json
// @Produce json
// @Param payload body ApproveRequestPayload true "Approve Request Payload"
// @Success 200 {object} PublicResponse[services.AllowancePublic] "Allowance"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Forbidden"
// @Router /v1/token/approve [post]
func (h *Handler) Approve(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRequestPayload[ApproveRequestPayload](request)
	if err != nil {
		return nil, err
	}
	owner, err := parseAddress("owner", payload.Owner)
	if err != nil {
		return nil, err
	}
	spender, err := parseAddress("spender", payload.Spender)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount)
	if err != nil {
		return nil, err
	}

	result, err := h.services.Approve(request.Context(), owner, spender, amount)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// Transfer godoc
// @Summary Transfer tokens
// @Accept json
// @Produce json
// @Param payload body TransferRequestPayload true "Transfer Request Payload"
// @Success 200 {object} PublicResponse[services.TokenBalancePublic] "Balance of the sender"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Forbidden"
// @Failure 422 {object} types.Error "Error: Transfer failed"
// @Router /v1/token/transfer [post]
func (h *Handler) Transfer(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRequestPayload[TransferRequestPayload](request)
	if err != nil {
		return nil, err
	}
	from, err := parseAddress("from", payload.From)
	if err != nil {
		return nil, err
	}
	to, err := parseAddress("to", payload.To)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount)
	if err != nil {
		return nil, err
	}

	result, err := h.services.Transfer(request.Context(), from, to, amount)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// GetTokenBalance godoc
// @Summary Get token balance
// @Produce json
// @Param address query string true "Holder address"
// @Success 200 {object} PublicResponse[services.TokenBalancePublic] "Balance"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/token/balance [get]
func (h *Handler) GetTokenBalance(request *http.Request) (*Result, *types.Error) {
	owner, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	return NewResult(h.services.GetTokenBalance(request.Context(), owner)), nil
}

// GetAllowance godoc
// @Summary Get allowance
// @Produce json
// @Param owner query string true "Owner address"
// @Param spender query string true "Spender address"
// @Success 200 {object} PublicResponse[services.AllowancePublic] "Allowance"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/token/allowance [get]
func (h *Handler) GetAllowance(request *http.Request) (*Result, *types.Error) {
	owner, err := parseAddressQuery(request, "owner")
	if err != nil {
		return nil, err
	}
	spender, err := parseAddressQuery(request, "spender")
	if err != nil {
		return nil, err
	}
	return NewResult(h.services.GetAllowance(request.Context(), owner, spender)), nil
}
