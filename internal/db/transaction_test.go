package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/babylonchain/bridge-pool-service/internal/db"
	"github.com/babylonchain/bridge-pool-service/internal/mocks"
	"github.com/babylonchain/bridge-pool-service/internal/utils"
)

func writeConflictError() *mongo.CommandError {
	return &mongo.CommandError{
		Code:    112,
		Message: "write conflict",
		Name:    "WriteConflict",
	}
}

func recordSleeps(t *testing.T) *[]time.Duration {
	sleepDurations := []time.Duration{}
	utils.SetSleepFunc(func(_ context.Context, d time.Duration) error {
		sleepDurations = append(sleepDurations, d)
		return nil
	})
	t.Cleanup(utils.ResetSleepFunc)
	return &sleepDurations
}

func noopTxn(sessCtx mongo.SessionContext) (interface{}, error) {
	return nil, nil
}

func TestTxWithRetries_ExponentialBackoff(t *testing.T) {
	mockDBClient := mocks.NewDBTransactionClient(t)
	mockSession := mocks.NewDBSession(t)

	mockDBClient.On("StartSession").Return(mockSession, nil)
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).Return(nil, writeConflictError()).Twice()
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).Return("success", nil).Once()
	mockSession.On("EndSession", mock.Anything).Return()

	sleepDurations := recordSleeps(t)

	result, err := db.TxWithRetries(context.Background(), mockDBClient, noopTxn)

	require.NoError(t, err)
	require.Equal(t, "success", result)
	mockSession.AssertNumberOfCalls(t, "EndSession", 3)

	expectedBackoffDurations := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
	}
	require.Equal(t, expectedBackoffDurations, *sleepDurations)
}

func TestTxWithRetries_MaxRetries(t *testing.T) {
	mockDBClient := mocks.NewDBTransactionClient(t)
	mockSession := mocks.NewDBSession(t)

	mockDBClient.On("StartSession").Return(mockSession, nil)
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).Return(nil, writeConflictError()).Times(db.DefaultMaxAttempts)
	mockSession.On("EndSession", mock.Anything).Return()

	sleepDurations := recordSleeps(t)

	result, err := db.TxWithRetries(context.Background(), mockDBClient, noopTxn)

	require.Error(t, err)
	assert.True(t, db.IsWriteConflictError(err))
	require.Nil(t, result)
	require.Len(t, *sleepDurations, db.DefaultMaxAttempts-1)
}

func TestTxWithRetries_NonRetryableError(t *testing.T) {
	mockDBClient := mocks.NewDBTransactionClient(t)
	mockSession := mocks.NewDBSession(t)

	nonRetryableError := &mongo.CommandError{
		Code:    403,
		Message: "Forbidden",
		Name:    "NonRetryableError",
	}

	mockDBClient.On("StartSession").Return(mockSession, nil)
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).Return(nil, nonRetryableError).Once()
	mockSession.On("EndSession", mock.Anything).Return()

	sleepDurations := recordSleeps(t)

	result, err := db.TxWithRetries(context.Background(), mockDBClient, noopTxn)

	require.Error(t, err)
	require.Nil(t, result)
	require.Empty(t, *sleepDurations)
	require.IsType(t, nonRetryableError, err)
}

func TestTxWithRetries_SessionError(t *testing.T) {
	mockDBClient := mocks.NewDBTransactionClient(t)
	sessionErr := errors.New("no session")
	mockDBClient.On("StartSession").Return(nil, sessionErr)

	_, err := db.TxWithRetries(context.Background(), mockDBClient, noopTxn)
	require.ErrorIs(t, err, sessionErr)
}

func TestTxWithRetries_StopsWhenContextIsDone(t *testing.T) {
	mockDBClient := mocks.NewDBTransactionClient(t)
	mockSession := mocks.NewDBSession(t)

	mockDBClient.On("StartSession").Return(mockSession, nil).Once()
	mockSession.On("WithTransaction", mock.Anything, mock.Anything).Return(nil, writeConflictError()).Once()
	mockSession.On("EndSession", mock.Anything).Return().Once()

	utils.SetSleepFunc(func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	})
	t.Cleanup(utils.ResetSleepFunc)

	_, err := db.TxWithRetries(context.Background(), mockDBClient, noopTxn)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, db.IsWriteConflictError(err))
}

func TestErrorHelpers(t *testing.T) {
	dup := &db.DuplicateKeyError{Key: "1", Message: "Deposit already exists"}
	assert.True(t, db.IsDuplicateKeyError(dup))
	assert.False(t, db.IsNotFoundError(dup))

	wrapped := errors.Join(errors.New("context"), &db.NotFoundError{Key: "1", Message: "Deposit not found"})
	assert.True(t, db.IsNotFoundError(wrapped))

	assert.True(t, db.IsInvalidPaginationTokenError(&db.InvalidPaginationTokenError{Message: "bad"}))

	assert.True(t, db.IsTransactionAbortedError(mongo.CommandError{Code: 251}))
	assert.False(t, db.IsWriteConflictError(errors.New("plain")))
	assert.False(t, db.IsWriteConflictError(nil))
}
