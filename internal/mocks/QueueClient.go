package mocks

import (
	context "context"

	client "github.com/babylonchain/bridge-pool-service/internal/queue/client"

	mock "github.com/stretchr/testify/mock"
)

// QueueClient is a mock type for the QueueClient type
type QueueClient struct {
	mock.Mock
}

// DeleteMessage provides a mock function with given fields: receipt
func (_m *QueueClient) DeleteMessage(receipt string) error {
	ret := _m.Called(receipt)
	return ret.Error(0)
}

// GetQueueName provides a mock function with given fields:
func (_m *QueueClient) GetQueueName() string {
	ret := _m.Called()
	return ret.String(0)
}

// Ping provides a mock function with given fields:
func (_m *QueueClient) Ping() error {
	ret := _m.Called()
	return ret.Error(0)
}

// ReceiveMessages provides a mock function with given fields:
func (_m *QueueClient) ReceiveMessages() (<-chan client.QueueMessage, error) {
	ret := _m.Called()

	var r0 <-chan client.QueueMessage
	switch v := ret.Get(0).(type) {
	case chan client.QueueMessage:
		r0 = v
	case <-chan client.QueueMessage:
		r0 = v
	}

	return r0, ret.Error(1)
}

// SendMessage provides a mock function with given fields: ctx, messageBody
func (_m *QueueClient) SendMessage(ctx context.Context, messageBody string) error {
	ret := _m.Called(ctx, messageBody)
	return ret.Error(0)
}

// Stop provides a mock function with given fields:
func (_m *QueueClient) Stop() error {
	ret := _m.Called()
	return ret.Error(0)
}

// NewQueueClient creates a new instance of QueueClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewQueueClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *QueueClient {
	mock := &QueueClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
