package handlers

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/types"
)

// GetRelayerStats godoc
// @Summary Get relayer stats
// @Description Returns the number of executions, the executed volume and the fees earned by a relayer on this side.
// @Produce json
// @Param address query string true "Relayer address"
// @Success 200 {object} PublicResponse[services.RelayerStatsPublic] "Relayer stats"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Router /v1/relayer/stats [get]
func (h *Handler) GetRelayerStats(request *http.Request) (*Result, *types.Error) {
	relayer, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	stats, err := h.services.GetRelayerStats(request.Context(), relayer.Hex())
	if err != nil {
		return nil, err
	}
	return NewResult(stats), nil
}
