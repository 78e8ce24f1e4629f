package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/babylonchain/bridge-pool-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Get("/v1/pool", registerHandler(handlers.GetPoolInfo))

	r.Post("/v1/stake", registerHandler(handlers.Stake))
	r.Post("/v1/unstake", registerHandler(handlers.Unstake))
	r.Get("/v1/staker", registerHandler(handlers.GetStaker))

	r.Post("/v1/deposit", registerHandler(handlers.Deposit))
	r.Get("/v1/deposit", registerHandler(handlers.GetDeposit))
	r.Get("/v1/deposits", registerHandler(handlers.GetDepositsBySender))
	r.Post("/v1/execute-bridge", registerHandler(handlers.ExecuteBridge))
	r.Get("/v1/executed", registerHandler(handlers.GetExecuted))
	r.Get("/v1/execution", registerHandler(handlers.GetExecution))

	r.Post("/v1/blacklist/vote", registerHandler(handlers.VoteToBlacklistNode))
	r.Get("/v1/blacklist/votes", registerHandler(handlers.GetBlacklistVotes))

	r.Post("/v1/token/approve", registerHandler(handlers.Approve))
	r.Post("/v1/token/transfer", registerHandler(handlers.Transfer))
	r.Get("/v1/token/balance", registerHandler(handlers.GetTokenBalance))
	r.Get("/v1/token/allowance", registerHandler(handlers.GetAllowance))

	r.Get("/v1/relayer/stats", registerHandler(handlers.GetRelayerStats))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
