package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// salesService implements the SalesUsecase interface.
type salesService struct {
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportRepository
	logger     *slog.Logger
}

// SalesServiceParams holds dependencies for SalesService, injected by Fx.
type SalesServiceParams struct {
	fx.In

	SaleRepo   repository.SaleRepository
	ReportRepo repository.ReportRepository
	Logger     *slog.Logger
}

// NewSalesService creates a new sales service instance
func NewSalesService(params SalesServiceParams) usecase.SalesUsecase {
	return &salesService{
		saleRepo:   params.SaleRepo,
		reportRepo: params.ReportRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *salesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSales lists every sale, newest first
func (srv *salesService) ListSales(ctx context.Context) ([]*entity.OrderLine, error) {
	sales, err := srv.saleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// GetSale retrieves a sale by ID
func (srv *salesService) GetSale(ctx context.Context, id int64) (*entity.OrderLine, error) {
	sale, err := srv.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sale")
	}

	return sale, nil
}

// ListSalesByProduct lists the sales of a product, newest first
func (srv *salesService) ListSalesByProduct(ctx context.Context, productID int64) ([]*entity.OrderLine, error) {
	sales, err := srv.saleRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales by product")
	}

	return sales, nil
}

// ListSalesByOrder lists the sales of an order
func (srv *salesService) ListSalesByOrder(ctx context.Context, orderID int64) ([]*entity.OrderLine, error) {
	sales, err := srv.saleRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales by order")
	}

	return sales, nil
}

// SalesByPeriod aggregates sales per day between start and end inclusive
func (srv *salesService) SalesByPeriod(ctx context.Context, start, end time.Time) ([]*entity.DailySales, error) {
	if start.IsZero() || end.IsZero() {
		return nil, domainerrors.ErrInvalidDateRange
	}
	if start.After(end) {
		return nil, domainerrors.ErrInvalidDateRange.WithMessage("Data inicial deve ser anterior ou igual à data final")
	}

	report, err := srv.reportRepo.SalesByPeriod(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sales by period report")
	}

	srv.log(ctx).Debug("Sales by period report built",
		slog.String("start", start.Format(time.DateOnly)),
		slog.String("end", end.Format(time.DateOnly)),
		slog.Int("days", len(report)),
	)

	return report, nil
}

// TopProducts lists the best-selling products by units
func (srv *salesService) TopProducts(ctx context.Context, limit int) ([]*entity.ProductSales, error) {
	if limit == 0 {
		limit = usecase.DefaultTopProductsLimit
	}
	if limit < 1 || limit > usecase.MaxTopProductsLimit {
		return nil, domainerrors.NewValidationError("Limite deve estar entre 1 e 100", map[string]int{"received": limit})
	}

	report, err := srv.reportRepo.TopProducts(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build top products report")
	}

	return report, nil
}

// SalesByCategory aggregates revenue per category, highest first
func (srv *salesService) SalesByCategory(ctx context.Context) ([]*entity.CategorySales, error) {
	report, err := srv.reportRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sales by category report")
	}

	return report, nil
}
