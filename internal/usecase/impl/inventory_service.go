package impl

import (
	"context"
	"log/slog"

	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/domain/service"
	"dncommerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager     repository.TransactionManager
	inventoryRepo repository.InventoryRepository
	cache         service.ProductCache
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	InventoryRepo repository.InventoryRepository
	Cache         service.ProductCache
	Logger        *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:     params.TxManager,
		inventoryRepo: params.InventoryRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetInventory retrieves the record of an active product
func (srv *inventoryService) GetInventory(ctx context.Context, productID int64) (*entity.InventoryRecord, error) {
	record, err := srv.inventoryRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory")
	}

	return record, nil
}

// ListInventory lists the records of active products ordered by name
func (srv *inventoryService) ListInventory(ctx context.Context) ([]*entity.InventoryRecord, error) {
	records, err := srv.inventoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return records, nil
}

// ListLowStock lists records at or below their minimum, lowest first
func (srv *inventoryService) ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error) {
	records, err := srv.inventoryRepo.ListLowStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock")
	}

	return records, nil
}

// Restock adds quantity units to a product
func (srv *inventoryService) Restock(ctx context.Context, productID int64, quantity int) (*entity.InventoryRecord, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	record, err := srv.mutate(ctx, productID, func(inventoryRepo repository.InventoryRepository) error {
		return inventoryRepo.Restock(ctx, productID, quantity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to restock")
	}

	srv.log(ctx).Info("Stock added",
		slog.Int64("productID", productID),
		slog.Int("quantity", quantity),
		slog.Int("available", record.AvailableQuantity),
	)

	return record, nil
}

// Remove takes quantity units out of a product through the same conditional
// decrement used by orders.
func (srv *inventoryService) Remove(ctx context.Context, productID int64, quantity int) (*entity.InventoryRecord, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	record, err := srv.mutate(ctx, productID, func(inventoryRepo repository.InventoryRepository) error {
		return inventoryRepo.Reserve(ctx, productID, quantity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove stock")
	}

	srv.log(ctx).Info("Stock removed",
		slog.Int64("productID", productID),
		slog.Int("quantity", quantity),
		slog.Int("available", record.AvailableQuantity),
	)

	return record, nil
}

// Adjust overwrites available, minimum or location
func (srv *inventoryService) Adjust(ctx context.Context, productID int64, adjustment *entity.InventoryAdjustment) (*entity.InventoryRecord, error) {
	if adjustment == nil {
		return nil, domainerrors.NewValidationError("Nenhum campo para atualizar", nil)
	}
	if adjustment.AvailableQuantity != nil && *adjustment.AvailableQuantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails(map[string]string{"field": "availableQuantity"})
	}
	if adjustment.MinimumQuantity != nil && *adjustment.MinimumQuantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails(map[string]string{"field": "minimumQuantity"})
	}

	record, err := srv.mutate(ctx, productID, func(inventoryRepo repository.InventoryRepository) error {
		return inventoryRepo.Adjust(ctx, productID, adjustment)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust inventory")
	}

	srv.log(ctx).Info("Inventory adjusted", slog.Int64("productID", productID), slog.Int("available", record.AvailableQuantity))

	return record, nil
}

// mutate applies change to the record of an active product and re-reads it, all in one transaction.
func (srv *inventoryService) mutate(
	ctx context.Context,
	productID int64,
	change func(inventoryRepo repository.InventoryRepository) error,
) (*entity.InventoryRecord, error) {
	var record *entity.InventoryRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		inventoryRepo := repoFactory.InventoryRepo()

		if _, err := inventoryRepo.FindByProductID(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to find inventory")
		}
		if err := change(inventoryRepo); err != nil {
			return err
		}

		updated, err := inventoryRepo.FindByProductID(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to reload inventory")
		}
		record = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.cache.Invalidate(ctx, productID)

	return record, nil
}
