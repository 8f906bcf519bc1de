package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/entity"
	domainerrors "dncommerce/internal/domain/errors"
	"dncommerce/internal/domain/repository"
	"dncommerce/internal/domain/service"
	"dncommerce/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const (
	tracerName          = "dncommerce/usecase"
	eventPublishTimeout = 5 * time.Second
	maxPaymentMethodLen = 50
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	publisher    service.EventPublisher
	qrCode       service.QRCodeService
	cache        service.ProductCache
	tracer       trace.Tracer
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	CustomerRepo repository.CustomerRepository
	SaleRepo     repository.SaleRepository
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Cache        service.ProductCache
	Logger       *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		customerRepo: params.CustomerRepo,
		saleRepo:     params.SaleRepo,
		publisher:    params.Publisher,
		qrCode:       params.QRCode,
		cache:        params.Cache,
		tracer:       otel.Tracer(tracerName),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder runs the order workflow. Stock is checked for every line before anything
// is written; the header, the lines and the reservations then commit together.
func (srv *orderService) PlaceOrder(ctx context.Context, newOrder *entity.NewOrder) (_ *entity.Order, err error) {
	ctx, span := srv.tracer.Start(ctx, "order.place", trace.WithAttributes(
		attribute.Int64("customer.id", newOrder.CustomerID),
		attribute.Int("order.items", len(newOrder.Items)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if _, err := srv.customerRepo.FindByID(ctx, newOrder.CustomerID); err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	if err := validateOrderShape(newOrder); err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerID:      newOrder.CustomerID,
		DeliveryAddress: strings.TrimSpace(newOrder.DeliveryAddress),
		PaymentMethod:   strings.TrimSpace(newOrder.PaymentMethod),
		Status:          entity.OrderStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		snapshot, err := repoFactory.InventoryRepo().SnapshotForProducts(ctx, distinctProductIDs(newOrder.Items))
		if err != nil {
			return errors.Wrap(err, "failed to read stock snapshot")
		}

		requested := requestedQuantities(newOrder.Items)
		if failures := checkLines(newOrder.Items, requested, snapshot); len(failures) > 0 {
			return domainerrors.NewOrderRejectedError(failures)
		}

		lines := priceLines(newOrder.Items, snapshot)
		order.Total = sumSubtotals(lines)
		if order.Total.GreaterThan(entity.MaxOrderTotal) {
			return domainerrors.NewValidationError("O valor total do pedido excede o limite permitido", map[string]string{
				"field": "total",
				"total": order.Total.StringFixed(2),
				"max":   entity.MaxOrderTotal.StringFixed(2),
			})
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range lines {
			line.OrderID = order.ID
			if err := repoFactory.SaleRepo().Create(ctx, line); err != nil {
				return errors.Wrap(err, "failed to create order line")
			}
		}

		// Rows are locked in ascending product id so concurrent orders sharing
		// products cannot deadlock. Stock may have moved since the snapshot; a
		// short reservation rolls the order back.
		for _, productID := range sortedProductIDs(requested) {
			if err := repoFactory.InventoryRepo().Reserve(ctx, productID, requested[productID]); err != nil {
				return errors.Wrap(err, "failed to reserve stock")
			}
		}

		order.Lines = dereferenceLines(lines)
		order.ItemCount = len(lines)

		return nil
	})
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindInternal {
			srv.log(ctx).Error("Failed to place order", slog.Int64("customerID", newOrder.CustomerID), slog.Any("error", err))
		} else {
			srv.log(ctx).Warn("Order rejected", slog.Int64("customerID", newOrder.CustomerID), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	span.SetAttributes(attribute.Int64("order.id", order.ID), attribute.String("order.total", order.Total.StringFixed(2)))
	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", order.ID),
		slog.Int64("customerID", order.CustomerID),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", order.ItemCount),
	)

	for _, line := range order.Lines {
		srv.cache.Invalidate(ctx, line.ProductID)
	}
	srv.publishOrderPlaced(ctx, order, newOrder.Items)

	return order, nil
}

// publishOrderPlaced is best effort: the order is already committed.
func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order, items []entity.LineItem) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	event := &entity.OrderPlacedEvent{
		Type:       constants.EventTypeOrderPlaced,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total.StringFixed(2),
		Items:      items,
		PlacedAt:   order.CreatedAt,
	}

	if err := srv.publisher.PublishOrderPlaced(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order placed event", slog.Int64("orderID", order.ID), slog.Any("error", err))
	}
}

// GetOrder retrieves an order with its lines
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	lines, err := srv.saleRepo.ListByOrder(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines")
	}
	order.Lines = dereferenceLines(lines)

	return order, nil
}

// ListOrders lists all orders, newest first
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListOrdersByCustomer lists the orders of a customer, newest first
func (srv *orderService) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	if _, err := srv.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order to any of the five statuses
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(map[string]string{"received": status.String()})
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	srv.log(ctx).Info("Order status updated", slog.Int64("orderID", id), slog.String("status", status.String()))

	return order, nil
}

// GenerateOrderLabel renders the PNG QR label of an existing order
func (srv *orderService) GenerateOrderLabel(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.orderRepo.FindByID(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	png, err := srv.qrCode.GenerateOrderLabel(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order label")
	}

	return png, nil
}

// validateOrderShape rejects empty orders and non-positive ids or quantities before any stock is read.
func validateOrderShape(newOrder *entity.NewOrder) error {
	if len(newOrder.Items) == 0 {
		return domainerrors.ErrInvalidLineItem.WithMessage("O pedido deve conter pelo menos um item")
	}

	var invalid []map[string]any
	for i, item := range newOrder.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 || item.Quantity > entity.MaxLineQuantity {
			invalid = append(invalid, map[string]any{
				"index":     i,
				"productId": item.ProductID,
				"quantity":  item.Quantity,
			})
		}
	}
	if len(invalid) > 0 {
		return domainerrors.ErrInvalidLineItem.
			WithMessage(fmt.Sprintf("Cada item deve ter productId maior que zero e quantity entre 1 e %d", entity.MaxLineQuantity)).
			WithDetails(invalid)
	}

	if strings.TrimSpace(newOrder.DeliveryAddress) == "" {
		return domainerrors.NewValidationError("Endereço de entrega é obrigatório", map[string]string{"field": "deliveryAddress"})
	}
	paymentMethod := strings.TrimSpace(newOrder.PaymentMethod)
	if paymentMethod == "" || len(paymentMethod) > maxPaymentMethodLen {
		return domainerrors.NewValidationError("Forma de pagamento é obrigatória", map[string]string{"field": "paymentMethod"})
	}

	return nil
}

func distinctProductIDs(items []entity.LineItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}

// requestedQuantities sums the quantity of every product across its lines.
// Line quantities are bounded by MaxLineQuantity, so the sum cannot wrap a 64-bit int.
func requestedQuantities(items []entity.LineItem) map[int64]int {
	requested := make(map[int64]int, len(items))
	for _, item := range items {
		requested[item.ProductID] += item.Quantity
	}

	return requested
}

func sortedProductIDs(requested map[int64]int) []int64 {
	ids := slices.Collect(maps.Keys(requested))
	slices.Sort(ids)

	return ids
}

// checkLines reports every product that is missing, inactive or short of stock.
// Repeated products are checked against their cumulative quantity.
func checkLines(items []entity.LineItem, requested map[int64]int, snapshot map[int64]*entity.ProductStock) []domainerrors.LineFailure {
	var failures []domainerrors.LineFailure
	for _, productID := range distinctProductIDs(items) {
		stock, ok := snapshot[productID]
		if !ok || !stock.Active {
			failures = append(failures, domainerrors.LineFailure{
				ProductID: productID,
				Reason:    domainerrors.LineFailureProductNotFound,
				Message:   fmt.Sprintf("Produto %d não encontrado ou inativo", productID),
			})

			continue
		}

		quantity := requested[productID]
		if stock.Available < quantity {
			available := stock.Available
			failures = append(failures, domainerrors.LineFailure{
				ProductID: productID,
				Reason:    domainerrors.LineFailureInsufficientStock,
				Message: fmt.Sprintf("Estoque insuficiente para %s. Disponível: %d, Solicitado: %d",
					stock.Name, available, quantity),
				Available: &available,
				Requested: &quantity,
			})
		}
	}

	return failures
}

// priceLines builds one line per requested item using the snapshot price.
func priceLines(items []entity.LineItem, snapshot map[int64]*entity.ProductStock) []*entity.OrderLine {
	lines := make([]*entity.OrderLine, 0, len(items))
	for _, item := range items {
		stock := snapshot[item.ProductID]
		lines = append(lines, &entity.OrderLine{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   stock.Price,
			Subtotal:    stock.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			ProductName: stock.Name,
		})
	}

	return lines
}

func sumSubtotals(lines []*entity.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}

	return total.Round(2)
}

func dereferenceLines(lines []*entity.OrderLine) []entity.OrderLine {
	result := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, *line)
	}

	return result
}
