package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEnumLabelRepository struct {
	mock.Mock
}

func (m *MockEnumLabelRepository) ListEnumLabels(ctx context.Context, pgTypes []string) (map[string][]string, error) {
	args := m.Called(ctx, pgTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}
