package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/cmd/bridge-pool-service/cli"
	"github.com/babylonchain/bridge-pool-service/cmd/bridge-pool-service/scripts"
	"github.com/babylonchain/bridge-pool-service/internal/api"
	"github.com/babylonchain/bridge-pool-service/internal/config"
	"github.com/babylonchain/bridge-pool-service/internal/db"
	"github.com/babylonchain/bridge-pool-service/internal/db/model"
	"github.com/babylonchain/bridge-pool-service/internal/observability/healthcheck"
	"github.com/babylonchain/bridge-pool-service/internal/observability/metrics"
	"github.com/babylonchain/bridge-pool-service/internal/queue"
	"github.com/babylonchain/bridge-pool-service/internal/services"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// the genesis file is only required when there is no stored pool state yet
	genesisPath := cli.GetGenesisPath()
	genesis, err := types.NewTokenGenesis(genesisPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", genesisPath).Msg("token genesis file not found")
		genesis = nil
	} else if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading token genesis file: %s", genesisPath))
	}

	// initialize metrics with the metrics address from config
	metrics.Init(cfg.Metrics.GetMetricsAddress())

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up bridge pool db model")
	}
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while connecting to the database")
	}

	queues, err := queue.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up the event queues")
	}
	defer queues.StopReceivingMessages()

	services, err := services.New(ctx, cfg, genesis, dbClient, queues)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up bridge pool services layer")
	}

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		if err := scripts.ReplayUnprocessableMessages(ctx, queues, services.DbClient); err != nil {
			log.Error().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	if err := queues.StartReceivingMessages(services); err != nil {
		log.Fatal().Err(err).Msg("error while starting queue consumers")
	}

	if err := healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting the health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up bridge pool api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting bridge pool api service")
	}
}
