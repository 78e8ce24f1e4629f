package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/babylonchain/bridge-pool-service/internal/types"
	"github.com/babylonchain/bridge-pool-service/internal/utils"
)

func parseRequestPayload[T any](request *http.Request) (*T, *types.Error) {
	payload := new(T)
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	return payload, nil
}

func parseAddress(field, value string) (common.Address, *types.Error) {
	if value == "" {
		return common.Address{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, fmt.Sprintf("%s is required", field),
		)
	}
	addr, err := utils.ParseAddress(value)
	if err != nil {
		return common.Address{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, fmt.Sprintf("invalid %s: %s", field, err),
		)
	}
	return addr, nil
}

func parseAddressQuery(request *http.Request, queryName string) (common.Address, *types.Error) {
	return parseAddress(queryName, request.URL.Query().Get(queryName))
}

func parseAmount(value string) (*uint256.Int, *types.Error) {
	amount, err := utils.ParseAmount(value)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, err.Error())
	}
	return amount, nil
}

func parseDepositIDQuery(request *http.Request) (uint64, *types.Error) {
	value := request.URL.Query().Get("deposit_id")
	if value == "" {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "deposit_id is required")
	}
	id, err := utils.ParseDepositID(value)
	if err != nil {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, err.Error())
	}
	return id, nil
}
