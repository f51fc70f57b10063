package tx

import (
	"context"
	"github.com/jmoiron/sqlx"

	mock "github.com/stretchr/testify/mock"
)

// TxRepository is a mock type for the TxRepository type
type TxRepository struct {
	mock.Mock
}

// BeginTx provides a mock function with given fields: ctx
func (_m *TxRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	ret := _m.Called(ctx)

	var r0 *sqlx.Tx
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sqlx.Tx)
	}

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CommitTx provides a mock function with given fields: tx
func (_m *TxRepository) CommitTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// RollbackTx provides a mock function with given fields: tx
func (_m *TxRepository) RollbackTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// WithTx provides a mock function with given fields: ctx, fn
func (_m *TxRepository) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	ret := _m.Called(ctx, fn)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// NewTxRepository creates a new instance of TxRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTxRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TxRepository {
	mock := &TxRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
