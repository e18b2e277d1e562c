// Package mock_client provides a testify mock of client.TransactionsClient.
// Regenerate with go generate in internal/core/domain/client (mockery).
package mock_client

import (
	context "context"

	domain "ledgerui/internal/core/domain"

	decimal "github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// TransactionsClient is a mock type for the TransactionsClient type
type TransactionsClient struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, name, amount
func (_m *TransactionsClient) Create(ctx context.Context, name string, amount decimal.Decimal) (domain.Transaction, error) {
	ret := _m.Called(ctx, name, amount)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 domain.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, decimal.Decimal) (domain.Transaction, error)); ok {
		return rf(ctx, name, amount)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, decimal.Decimal) domain.Transaction); ok {
		r0 = rf(ctx, name, amount)
	} else {
		r0 = ret.Get(0).(domain.Transaction)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, decimal.Decimal) error); ok {
		r1 = rf(ctx, name, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// List provides a mock function with given fields: ctx
func (_m *TransactionsClient) List(ctx context.Context) ([]domain.Transaction, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Transaction, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Transaction); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Transaction)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Remove provides a mock function with given fields: ctx, id
func (_m *TransactionsClient) Remove(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Remove")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields: ctx, id, name, amount
func (_m *TransactionsClient) Update(ctx context.Context, id string, name string, amount decimal.Decimal) (domain.Transaction, error) {
	ret := _m.Called(ctx, id, name, amount)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 domain.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, decimal.Decimal) (domain.Transaction, error)); ok {
		return rf(ctx, id, name, amount)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, decimal.Decimal) domain.Transaction); ok {
		r0 = rf(ctx, id, name, amount)
	} else {
		r0 = ret.Get(0).(domain.Transaction)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, decimal.Decimal) error); ok {
		r1 = rf(ctx, id, name, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTransactionsClient creates a new instance of TransactionsClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTransactionsClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *TransactionsClient {
	mock := &TransactionsClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
