package redis

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"
)

// RedisRepository is a mock type for the RedisRepository type
type RedisRepository struct {
	mock.Mock
}

// SetSession provides a mock function with given fields: ctx, sessionID, accountID, ttl
func (_m *RedisRepository) SetSession(ctx context.Context, sessionID string, accountID uint64, ttl time.Duration) error {
	ret := _m.Called(ctx, sessionID, accountID, ttl)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// GetSession provides a mock function with given fields: ctx, sessionID
func (_m *RedisRepository) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	ret := _m.Called(ctx, sessionID)

	r0 := ret.Get(0).(uint64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteSession provides a mock function with given fields: ctx, sessionID
func (_m *RedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// SetConfirmationToken provides a mock function with given fields: ctx, token, accountID, ttl
func (_m *RedisRepository) SetConfirmationToken(ctx context.Context, token string, accountID uint64, ttl time.Duration) error {
	ret := _m.Called(ctx, token, accountID, ttl)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// GetConfirmationToken provides a mock function with given fields: ctx, token
func (_m *RedisRepository) GetConfirmationToken(ctx context.Context, token string) (uint64, error) {
	ret := _m.Called(ctx, token)

	r0 := ret.Get(0).(uint64)

	var r1 error
	if ret.Get(1) != nil {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteConfirmationToken provides a mock function with given fields: ctx, token
func (_m *RedisRepository) DeleteConfirmationToken(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)

	var r0 error
	if ret.Get(0) != nil {
		r0 = ret.Error(0)
	}

	return r0
}

// NewRedisRepository creates a new instance of RedisRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRedisRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RedisRepository {
	mock := &RedisRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
