package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// SlotRepository is a mock for repository.SlotRepository.
type SlotRepository struct {
	mock.Mock
}

func (m *SlotRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *SlotRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
