package handler

import (
	"log/slog"
	"net/http"

	"dncommerce/internal/delivery/api/response"
	"dncommerce/internal/domain/entity"
	"dncommerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=2,max=255"`
	Description string           `json:"description" validate:"max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    string           `json:"category" validate:"required,category"`
	Brand       string           `json:"brand" validate:"max=100"`
}

// UpdateProductRequest represents the request body for a partial product update
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" validate:"omitempty,category"`
	Brand       *string          `json:"brand" validate:"omitempty,max=100"`
	Active      *bool            `json:"active"`
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    entity.Category(req.Category),
		Brand:       req.Brand,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Produto criado com sucesso", product)
}

// ListProducts handles listing active products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, products)
}

// ListProductsByCategory handles listing active products of a category
func (h *ProductHandler) ListProductsByCategory(c echo.Context) error {
	category := entity.Category(c.Param("category"))

	products, err := h.catalogUC.ListProductsByCategory(c.Request().Context(), category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, products)
}

// GetProduct handles retrieving an active product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UpdateProduct handles partial product updates
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req UpdateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	update := &entity.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Brand:       req.Brand,
		Active:      req.Active,
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		update.Category = &category
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Produto atualizado com sucesso", product)
}

// DeleteProduct handles product deactivation
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Produto desativado com sucesso", map[string]any{
		"id":     id,
		"active": false,
	})
}
