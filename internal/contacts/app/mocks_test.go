package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"contactbook/internal/contacts/domain/entities"
)

// mockContactRepository - мок repositories.ContactRepository.
type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) ListAll(ctx context.Context) ([]*entities.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contact), args.Error(1)
}

func (m *mockContactRepository) FindByID(ctx context.Context, id int) (*entities.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contact), args.Error(1)
}

func (m *mockContactRepository) Insert(ctx context.Context, contact *entities.Contact) (int, error) {
	args := m.Called(ctx, contact)
	return args.Int(0), args.Error(1)
}

func (m *mockContactRepository) Update(ctx context.Context, contact *entities.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockCache - мок cache.Cache.
type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
