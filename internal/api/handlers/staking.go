package handlers

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type StakeRequestPayload struct {
	Caller string `json:"caller"`
	Amount string `json:"amount"`
}

// Stake godoc
// @Summary Stake tokens
// @Description Moves amount from the caller into the pool as collateral. The pool must be approved first.
// @Accept json
// @Produce json
// @Param payload body StakeRequestPayload true "Stake Request Payload"
// @Success 200 {object} PublicResponse[services.StakeResultPublic] "Updated stake"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 422 {object} types.Error "Error: Transfer failed"
// @Router /v1/stake [post]
func (h *Handler) Stake(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRequestPayload[StakeRequestPayload](request)
	if err != nil {
		return nil, err
	}
	caller, err := parseAddress("caller", payload.Caller)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount)
	if err != nil {
		return nil, err
	}

	result, err := h.services.Stake(request.Context(), caller, amount)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// Unstake godoc
// @Summary Unstake tokens
// @Description Returns amount of the caller's collateral. Fails while the caller is in cooldown.
// @Accept json
// @Produce json
// @Param payload body StakeRequestPayload true "Unstake Request Payload"
// @Success 200 {object} PublicResponse[services.StakeResultPublic] "Updated stake"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Stake is locked"
// @Router /v1/unstake [post]
func (h *Handler) Unstake(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRequestPayload[StakeRequestPayload](request)
	if err != nil {
		return nil, err
	}
	caller, err := parseAddress("caller", payload.Caller)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(payload.Amount)
	if err != nil {
		return nil, err
	}

	result, err := h.services.Unstake(request.Context(), caller, amount)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// GetStaker godoc
// @Summary Get staker
// @Description Returns the collateral, cooldown and blacklist votes of a staker.
// @Produce json
// @Param address query string true "Staker address"
// @Success 200 {object} PublicResponse[services.StakerPublic] "Staker"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/staker [get]
func (h *Handler) GetStaker(request *http.Request) (*Result, *types.Error) {
	staker, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	return NewResult(h.services.GetStaker(request.Context(), staker)), nil
}
