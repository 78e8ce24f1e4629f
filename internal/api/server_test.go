package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/bridge-pool-service/internal/api"
	"github.com/babylonchain/bridge-pool-service/internal/config"
	"github.com/babylonchain/bridge-pool-service/internal/db"
	"github.com/babylonchain/bridge-pool-service/internal/db/model"
	"github.com/babylonchain/bridge-pool-service/internal/mocks"
	"github.com/babylonchain/bridge-pool-service/internal/services"
	"github.com/babylonchain/bridge-pool-service/internal/token"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

const (
	poolAddress  = "0x00000000000000000000000000000000000b0001"
	aliceAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	bobAddress   = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	receiverAddr = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
)

type testServer struct {
	server  *httptest.Server
	db      *mocks.DBClient
	emitter *mocks.EventEmitter
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:                "127.0.0.1",
			Port:                8090,
			WriteTimeout:        time.Minute,
			ReadTimeout:         time.Minute,
			IdleTimeout:         time.Minute,
			AllowedOrigins:      []string{"*"},
			LogLevel:            "error",
			MaxContentLength:    4096,
			HealthCheckInterval: 2,
		},
		Pool: config.PoolConfig{
			Side:        "ethereum",
			PoolAddress: common.HexToAddress(poolAddress),
			MinStake:    token.FromTokens(1000),
			Cooldown:    time.Hour,
		},
	}
	genesis := &types.TokenGenesis{
		Allocations: map[common.Address]*uint256.Int{
			common.HexToAddress(aliceAddress): token.FromTokens(10_000),
			common.HexToAddress(bobAddress):   token.FromTokens(10_000),
		},
		Liquidity: token.FromTokens(100),
	}

	dbClient := mocks.NewDBClient(t)
	dbClient.On("FindPoolState", mock.Anything, "ethereum").
		Return(nil, &db.NotFoundError{Message: "not found"}).Once()
	dbClient.On("SavePoolState", mock.Anything, mock.Anything).Return(nil).Maybe()
	emitter := mocks.NewEventEmitter(t)

	service, err := services.New(context.Background(), cfg, genesis, dbClient, emitter)
	require.NoError(t, err)
	apiServer, err := api.New(context.Background(), cfg, service)
	require.NoError(t, err)

	server := httptest.NewServer(apiServer.Handler())
	t.Cleanup(server.Close)
	return &testServer{server: server, db: dbClient, emitter: emitter}
}

func (s *testServer) get(t *testing.T, path string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(s.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func (s *testServer) post(t *testing.T, path string, payload any) (int, []byte) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decodeData[T any](t *testing.T, body []byte) T {
	t.Helper()
	var response struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &response), string(body))
	return response.Data
}

func decodeError(t *testing.T, body []byte) api.ErrorResponse {
	t.Helper()
	var response api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &response), string(body))
	return response
}

func TestHealthCheck(t *testing.T) {
	s := setupTestServer(t)
	s.db.On("Ping", mock.Anything).Return(nil).Once()

	status, body := s.get(t, "/healthcheck")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Server is up and running", decodeData[string](t, body))
}

func TestSecurityAndTraceHeaders(t *testing.T) {
	s := setupTestServer(t)

	resp, err := http.Get(s.server.URL + "/v1/pool")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))
}

func TestStakeDepositExecuteFlow(t *testing.T) {
	s := setupTestServer(t)
	stakeAmount := token.FromTokens(1000).Dec()

	status, body := s.post(t, "/v1/token/approve", map[string]string{
		"owner": aliceAddress, "spender": poolAddress, "amount": stakeAmount,
	})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.post(t, "/v1/stake", map[string]string{"caller": aliceAddress, "amount": stakeAmount})
	require.Equal(t, http.StatusOK, status, string(body))
	stake := decodeData[services.StakeResultPublic](t, body)
	assert.Equal(t, stakeAmount, stake.TotalStaked)

	s.emitter.On("EmitDepositEvent", mock.Anything, mock.Anything).Return(nil).Once()
	status, body = s.post(t, "/v1/token/approve", map[string]string{
		"owner": bobAddress, "spender": poolAddress, "amount": "100",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	status, body = s.post(t, "/v1/deposit", map[string]string{
		"caller": bobAddress, "receiver": receiverAddr, "amount": "100",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, uint64(0), decodeData[services.DepositResultPublic](t, body).DepositID)

	status, body = s.get(t, "/v1/deposit?deposit_id=0")
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "100", decodeData[services.DepositPublic](t, body).Amount)

	s.emitter.On("EmitExecuteBridgeEvent", mock.Anything, mock.Anything).Return(nil).Once()
	execute := map[string]any{
		"caller": aliceAddress, "deposit_id": 12, "receiver": receiverAddr, "amount": "1000",
	}
	status, body = s.post(t, "/v1/execute-bridge", execute)
	require.Equal(t, http.StatusOK, status, string(body))
	result := decodeData[services.ExecuteBridgeResultPublic](t, body)
	assert.Equal(t, "950", result.Payout)
	assert.Equal(t, "50", result.Fee)

	status, body = s.post(t, "/v1/execute-bridge", execute)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, types.Conflict.String(), decodeError(t, body).ErrorCode)

	status, body = s.get(t, "/v1/executed?deposit_id=12")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decodeData[services.DepositExecutionPublic](t, body).Executed)

	execute["deposit_id"] = 13
	status, body = s.post(t, "/v1/execute-bridge", execute)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, types.Forbidden.String(), decodeError(t, body).ErrorCode)

	status, body = s.get(t, "/v1/staker?address="+aliceAddress)
	require.Equal(t, http.StatusOK, status)
	staker := decodeData[services.StakerPublic](t, body)
	assert.True(t, staker.Locked)
	assert.Equal(t, token.FromTokens(100).Dec(), staker.ExecutionCap)
}

func TestBlacklistVoteEndpoint(t *testing.T) {
	s := setupTestServer(t)
	amount := token.FromTokens(1000).Dec()
	for _, addr := range []string{aliceAddress, bobAddress} {
		status, body := s.post(t, "/v1/token/approve", map[string]string{"owner": addr, "spender": poolAddress, "amount": amount})
		require.Equal(t, http.StatusOK, status, string(body))
		status, body = s.post(t, "/v1/stake", map[string]string{"caller": addr, "amount": amount})
		require.Equal(t, http.StatusOK, status, string(body))
	}

	status, body := s.post(t, "/v1/blacklist/vote", map[string]string{"caller": bobAddress, "target": aliceAddress})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.True(t, decodeData[services.BlacklistVotePublic](t, body).Removed)

	status, body = s.get(t, "/v1/blacklist/votes?address="+aliceAddress)
	require.Equal(t, http.StatusOK, status)
	votes := decodeData[services.BlacklistTallyPublic](t, body)
	assert.Equal(t, amount, votes.Tally)
	assert.Equal(t, "0", votes.TargetStake)
}

func TestValidationErrors(t *testing.T) {
	s := setupTestServer(t)

	status, body := s.post(t, "/v1/stake", map[string]string{"caller": "0x1234", "amount": "1"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, types.BadRequest.String(), decodeError(t, body).ErrorCode)

	status, _ = s.post(t, "/v1/stake", map[string]string{"caller": aliceAddress, "amount": "-5"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.post(t, "/v1/stake", map[string]string{"caller": aliceAddress, "amount": "1", "extra": "x"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.post(t, "/v1/deposit", map[string]string{"caller": aliceAddress, "receiver": receiverAddr, "amount": "0"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, types.ValidationError.String(), decodeError(t, body).ErrorCode)

	status, _ = s.get(t, "/v1/deposit?deposit_id=abc")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.get(t, "/v1/deposit?deposit_id=5")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, types.NotFound.String(), decodeError(t, body).ErrorCode)

	status, _ = s.get(t, "/v1/staker")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTransferWithoutBalance(t *testing.T) {
	s := setupTestServer(t)
	status, body := s.post(t, "/v1/token/transfer", map[string]string{
		"from": receiverAddr, "to": aliceAddress, "amount": "1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, types.TransferFailed.String(), decodeError(t, body).ErrorCode)
}

func TestRequestTooLarge(t *testing.T) {
	s := setupTestServer(t)
	payload := strings.Repeat("a", 5000)
	status, _ := s.post(t, "/v1/stake", map[string]string{"caller": payload, "amount": "1"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestGetDepositsBySender(t *testing.T) {
	s := setupTestServer(t)
	s.db.On("FindDepositsBySender", mock.Anything, common.HexToAddress(bobAddress).Hex(), "next").
		Return(&db.DbResultMap[model.DepositDocument]{
			Data: []model.DepositDocument{
				{DepositID: 4, Sender: bobAddress, Receiver: receiverAddr, Amount: "7", Timestamp: 1_700_000_000},
			},
			PaginationToken: "token",
		}, nil).Once()

	status, body := s.get(t, "/v1/deposits?sender="+bobAddress+"&pagination_key=next")
	require.Equal(t, http.StatusOK, status, string(body))

	var response struct {
		Data       []services.IndexedDepositPublic `json:"data"`
		Pagination struct {
			NextKey string `json:"next_key"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, uint64(4), response.Data[0].DepositID)
	assert.Equal(t, "token", response.Pagination.NextKey)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	s := setupTestServer(t)
	s.db.On("FindRelayerStats", mock.Anything, common.HexToAddress(aliceAddress).Hex()).
		Return(nil, assert.AnError).Once()

	status, body := s.get(t, "/v1/relayer/stats?address="+aliceAddress)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal service error", decodeError(t, body).Message)
}
