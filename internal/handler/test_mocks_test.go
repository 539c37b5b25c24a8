package handler_test

import (
	"context"

	"github.com/saransh1220/storefront-vocabulary/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockVocabularyService struct {
	mock.Mock
}

func (m *mockVocabularyService) List() []domain.Enumeration {
	args := m.Called()
	return args.Get(0).([]domain.Enumeration)
}

func (m *mockVocabularyService) Describe(name string) (domain.Enumeration, error) {
	args := m.Called(name)
	return args.Get(0).(domain.Enumeration), args.Error(1)
}

func (m *mockVocabularyService) Parse(name, token string) (string, error) {
	args := m.Called(name, token)
	return args.String(0), args.Error(1)
}

func (m *mockVocabularyService) CheckDrift(ctx context.Context) (*domain.DriftReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriftReport), args.Error(1)
}
