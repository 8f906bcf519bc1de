package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dncommerce/config"
	"dncommerce/internal/domain/repository"
	mockRepo "dncommerce/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Inventory: config.InventoryConfig{
			DefaultMinimum:  5,
			DefaultLocation: "Estoque Principal",
		},
	}
}

// expectTransaction makes txManager run the callback against a fresh factory mock
// prepared by setup, returning whatever the callback returns.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func ptr[T any](v T) *T {
	return &v
}
