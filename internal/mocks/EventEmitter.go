package mocks

import (
	context "context"

	client "github.com/babylonchain/bridge-pool-service/internal/queue/client"

	mock "github.com/stretchr/testify/mock"
)

// EventEmitter is an autogenerated mock type for the EventEmitter type
type EventEmitter struct {
	mock.Mock
}

// EmitDepositEvent provides a mock function with given fields: ctx, ev
func (_m *EventEmitter) EmitDepositEvent(ctx context.Context, ev *client.DepositEvent) error {
	ret := _m.Called(ctx, ev)
	return ret.Error(0)
}

// EmitExecuteBridgeEvent provides a mock function with given fields: ctx, ev
func (_m *EventEmitter) EmitExecuteBridgeEvent(ctx context.Context, ev *client.ExecuteBridgeEvent) error {
	ret := _m.Called(ctx, ev)
	return ret.Error(0)
}

// NewEventEmitter creates a new instance of EventEmitter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEventEmitter(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventEmitter {
	mock := &EventEmitter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
