package healthcheck

import (
	"context"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger zerolog.Logger = log.Logger

// terminate is replaced in tests.
var terminate = func() { os.Exit(1) }

func SetLogger(customLogger zerolog.Logger) {
	logger = customLogger
}

// QueueHealthChecker is implemented by *queue.Queues.
type QueueHealthChecker interface {
	IsConnectionHealthy() error
}

func StartHealthCheckCron(ctx context.Context, queues QueueHealthChecker, cronTime int) error {
	c := cron.New()
	logger.Info().Msg("Initiated Health Check Cron")

	if cronTime == 0 {
		cronTime = 60
	}

	cronSpec := fmt.Sprintf("@every %ds", cronTime)

	_, err := c.AddFunc(cronSpec, func() {
		queueHealthCheck(queues)
	})

	if err != nil {
		return err
	}

	c.Start()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Stopping Health Check Cron")
		c.Stop()
	}()

	return nil
}

func queueHealthCheck(queues QueueHealthChecker) {
	if err := queues.IsConnectionHealthy(); err != nil {
		logger.Error().Err(err).Msg("One or more queue connections are not healthy.")
		terminateService()
	}
}

func terminateService() {
	logger.Error().Msg("Terminating service due to health check failure.")
	terminate()
}
