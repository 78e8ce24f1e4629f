package handlers

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

type BlacklistVoteRequestPayload struct {
	Caller string `json:"caller"`
	Target string `json:"target"`
}

// VoteToBlacklistNode godoc
// @Summary Vote to blacklist a staker
// @Description Adds the caller's stake to the votes against target. Once the votes reach half of
// @Description the total stake, the target's collateral is forfeited to the pool.
// @Accept json
// @Produce json
// @Param payload body BlacklistVoteRequestPayload true "Blacklist Vote Request Payload"
// @Success 200 {object} PublicResponse[services.BlacklistVotePublic] "Vote result"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/blacklist/vote [post]
func (h *Handler) VoteToBlacklistNode(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRequestPayload[BlacklistVoteRequestPayload](request)
	if err != nil {
		return nil, err
	}
	caller, err := parseAddress("caller", payload.Caller)
	if err != nil {
		return nil, err
	}
	target, err := parseAddress("target", payload.Target)
	if err != nil {
		return nil, err
	}

	result, err := h.services.VoteToBlacklistNode(request.Context(), caller, target)
	if err != nil {
		return nil, err
	}
	return NewResult(result), nil
}

// GetBlacklistVotes godoc
// @Summary Get blacklist votes
// @Description Returns the accumulated votes against a staker.
// @Produce json
// @Param address query string true "Staker address"
// @Success 200 {object} PublicResponse[services.BlacklistTallyPublic] "Votes"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/blacklist/votes [get]
func (h *Handler) GetBlacklistVotes(request *http.Request) (*Result, *types.Error) {
	target, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	return NewResult(h.services.GetBlacklistTally(request.Context(), target)), nil
}
