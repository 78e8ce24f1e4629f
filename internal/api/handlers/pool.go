package handlers

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

// GetPoolInfo godoc
// @Summary Get pool info
// @Description Returns the pool of this side: balances, stake totals and the protocol parameters.
// @Produce json
// @Success 200 {object} PublicResponse[services.PoolInfoPublic] "Pool info"
// @Router /v1/pool [get]
func (h *Handler) GetPoolInfo(request *http.Request) (*Result, *types.Error) {
	return NewResult(h.services.GetPoolInfo(request.Context())), nil
}
