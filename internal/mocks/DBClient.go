// Package mocks holds testify mocks of the service interfaces.
package mocks

import (
	context "context"

	db "github.com/babylonchain/bridge-pool-service/internal/db"
	mock "github.com/stretchr/testify/mock"
	primitive "go.mongodb.org/mongo-driver/bson/primitive"

	model "github.com/babylonchain/bridge-pool-service/internal/db/model"
)

// DBClient is a mock type for the DBClient type
type DBClient struct {
	mock.Mock
}

// DeleteUnprocessableMessage provides a mock function with given fields: ctx, id
func (_m *DBClient) DeleteUnprocessableMessage(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindDepositByID provides a mock function with given fields: ctx, depositID
func (_m *DBClient) FindDepositByID(ctx context.Context, depositID uint64) (*model.DepositDocument, error) {
	ret := _m.Called(ctx, depositID)

	var r0 *model.DepositDocument
	if rf, ok := ret.Get(0).(func(context.Context, uint64) *model.DepositDocument); ok {
		r0 = rf(ctx, depositID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.DepositDocument)
	}

	return r0, ret.Error(1)
}

// FindDepositsBySender provides a mock function with given fields: ctx, sender, paginationToken
func (_m *DBClient) FindDepositsBySender(ctx context.Context, sender string, paginationToken string) (*db.DbResultMap[model.DepositDocument], error) {
	ret := _m.Called(ctx, sender, paginationToken)

	var r0 *db.DbResultMap[model.DepositDocument]
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *db.DbResultMap[model.DepositDocument]); ok {
		r0 = rf(ctx, sender, paginationToken)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*db.DbResultMap[model.DepositDocument])
	}

	return r0, ret.Error(1)
}

// FindExecutionByDepositID provides a mock function with given fields: ctx, depositID
func (_m *DBClient) FindExecutionByDepositID(ctx context.Context, depositID uint64) (*model.ExecutionDocument, error) {
	ret := _m.Called(ctx, depositID)

	var r0 *model.ExecutionDocument
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ExecutionDocument)
	}

	return r0, ret.Error(1)
}

// FindPoolState provides a mock function with given fields: ctx, side
func (_m *DBClient) FindPoolState(ctx context.Context, side string) (*model.PoolStateDocument, error) {
	ret := _m.Called(ctx, side)

	var r0 *model.PoolStateDocument
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.PoolStateDocument)
	}

	return r0, ret.Error(1)
}

// FindRelayerStats provides a mock function with given fields: ctx, relayer
func (_m *DBClient) FindRelayerStats(ctx context.Context, relayer string) (*model.RelayerStatsDocument, error) {
	ret := _m.Called(ctx, relayer)

	var r0 *model.RelayerStatsDocument
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.RelayerStatsDocument)
	}

	return r0, ret.Error(1)
}

// FindUnprocessableMessages provides a mock function with given fields: ctx
func (_m *DBClient) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	ret := _m.Called(ctx)

	var r0 []model.UnprocessableMessageDocument
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.UnprocessableMessageDocument)
	}

	return r0, ret.Error(1)
}

// Ping provides a mock function with given fields: ctx
func (_m *DBClient) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// SaveDeposit provides a mock function with given fields: ctx, deposit
func (_m *DBClient) SaveDeposit(ctx context.Context, deposit *model.DepositDocument) error {
	ret := _m.Called(ctx, deposit)
	return ret.Error(0)
}

// SaveExecution provides a mock function with given fields: ctx, execution
func (_m *DBClient) SaveExecution(ctx context.Context, execution *model.ExecutionDocument) error {
	ret := _m.Called(ctx, execution)
	return ret.Error(0)
}

// SavePoolState provides a mock function with given fields: ctx, state
func (_m *DBClient) SavePoolState(ctx context.Context, state *model.PoolStateDocument) error {
	ret := _m.Called(ctx, state)
	return ret.Error(0)
}

// SaveUnprocessableMessage provides a mock function with given fields: ctx, messageBody, receipt
func (_m *DBClient) SaveUnprocessableMessage(ctx context.Context, messageBody string, receipt string) error {
	ret := _m.Called(ctx, messageBody, receipt)
	return ret.Error(0)
}

// NewDBClient creates a new instance of DBClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDBClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBClient {
	mock := &DBClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
