package mocks

import (
	context "context"

	db "github.com/babylonchain/bridge-pool-service/internal/db"
	mock "github.com/stretchr/testify/mock"
	mongo "go.mongodb.org/mongo-driver/mongo"
	options "go.mongodb.org/mongo-driver/mongo/options"
)

// DBTransactionClient is a mock type for the DBTransactionClient type
type DBTransactionClient struct {
	mock.Mock
}

// StartSession provides a mock function with given fields: opts
func (_m *DBTransactionClient) StartSession(opts ...*options.SessionOptions) (db.DBSession, error) {
	_va := make([]interface{}, len(opts))
	for _i := range opts {
		_va[_i] = opts[_i]
	}
	ret := _m.Called(_va...)

	var r0 db.DBSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(db.DBSession)
	}

	return r0, ret.Error(1)
}

// NewDBTransactionClient creates a new instance of DBTransactionClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDBTransactionClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBTransactionClient {
	mock := &DBTransactionClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// DBSession is a mock type for the DBSession type
type DBSession struct {
	mock.Mock
}

// EndSession provides a mock function with given fields: ctx
func (_m *DBSession) EndSession(ctx context.Context) {
	_m.Called(ctx)
}

// WithTransaction provides a mock function with given fields: ctx, fn, opts
func (_m *DBSession) WithTransaction(ctx context.Context, fn func(mongo.SessionContext) (interface{}, error), opts ...*options.TransactionOptions) (interface{}, error) {
	_va := make([]interface{}, len(opts))
	for _i := range opts {
		_va[_i] = opts[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, ctx, fn)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	return ret.Get(0), ret.Error(1)
}

// NewDBSession creates a new instance of DBSession. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDBSession(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBSession {
	mock := &DBSession{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
