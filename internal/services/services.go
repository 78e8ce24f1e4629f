package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/config"
	"github.com/babylonchain/bridge-pool-service/internal/db"
	"github.com/babylonchain/bridge-pool-service/internal/observability/metrics"
	"github.com/babylonchain/bridge-pool-service/internal/pool"
	"github.com/babylonchain/bridge-pool-service/internal/queue/client"
	"github.com/babylonchain/bridge-pool-service/internal/token"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

// EventEmitter publishes pool events to the other services of the bridge.
type EventEmitter interface {
	EmitDepositEvent(ctx context.Context, ev *client.DepositEvent) error
	EmitExecuteBridgeEvent(ctx context.Context, ev *client.ExecuteBridgeEvent) error
}

// Service layer contains the business logic and is used to interact with
// the database and other external clients (if any).
type Services struct {
	DbClient db.DBClient
	cfg      *config.Config
	pool     *pool.Pool
	ledger   *token.MemoryLedger
	emitter  EventEmitter

	// mu makes an operation, the persistence of its state and the
	// publication of its events one step
	mu      sync.Mutex
	pending []pool.Event
}

// New builds the pool of the configured side. The state is loaded from the
// database, or seeded from genesis on the first start.
func New(
	ctx context.Context, cfg *config.Config, genesis *types.TokenGenesis,
	dbClient db.DBClient, emitter EventEmitter, opts ...pool.Option,
) (*Services, error) {
	s := &Services{
		DbClient: dbClient,
		cfg:      cfg,
		ledger:   token.NewMemoryLedger(),
		emitter:  emitter,
	}

	params := pool.Params{
		MinStakeAmount: cfg.Pool.MinStake,
		Cooldown:       cfg.Pool.Cooldown,
	}
	opts = append(opts, pool.WithEventSink(pool.EventSinkFunc(s.collectEvent)))
	p, err := pool.New(cfg.Pool.PoolAddress, params, s.ledger, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid pool params: %w", err)
	}
	s.pool = p

	if err := s.loadState(ctx, genesis); err != nil {
		return nil, err
	}
	metrics.UpdatePoolGauges(s.pool.TotalStaked(), s.pool.Balance())
	return s, nil
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}

// apply runs one pool operation. On success the new state is persisted and
// the events it produced are published, in that order. An operation whose
// state cannot be persisted is rolled back and its events are dropped.
func (s *Services) apply(ctx context.Context, operation string, fn func() error) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	poolBefore, ledgerBefore := s.pool.Snapshot(), s.ledger.Snapshot()
	s.pending = nil
	err := fn()
	if err != nil {
		s.pending = nil
		metrics.RecordPoolOperation(operation, err)
		return mapPoolError(ctx, operation, err)
	}

	events := s.pending
	s.pending = nil
	if err := s.persistState(ctx); err != nil {
		metrics.RecordPoolOperation(operation, err)
		s.rollback(ctx, operation, poolBefore, ledgerBefore)
		return types.NewInternalServiceError(fmt.Errorf("%s was not applied: %w", operation, err))
	}
	metrics.RecordPoolOperation(operation, nil)
	s.publishEvents(ctx, events)
	metrics.UpdatePoolGauges(s.pool.TotalStaked(), s.pool.Balance())
	return nil
}

func (s *Services) rollback(ctx context.Context, operation string, p *pool.State, l *token.Snapshot) {
	if err := s.ledger.Restore(l); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("operation", operation).Msg("error while rolling back the ledger")
	}
	if err := s.pool.Restore(p); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("operation", operation).Msg("error while rolling back the pool")
	}
}

// collectEvent is only reached from inside apply, with mu held.
func (s *Services) collectEvent(e pool.Event) {
	s.pending = append(s.pending, e)
}
