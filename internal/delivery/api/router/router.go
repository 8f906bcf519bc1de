// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dncommerce/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler    *handler.HealthHandler
	ProductHandler   *handler.ProductHandler
	CustomerHandler  *handler.CustomerHandler
	InventoryHandler *handler.InventoryHandler
	OrderHandler     *handler.OrderHandler
	SalesHandler     *handler.SalesHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler    *handler.HealthHandler
	productHandler   *handler.ProductHandler
	customerHandler  *handler.CustomerHandler
	inventoryHandler *handler.InventoryHandler
	orderHandler     *handler.OrderHandler
	salesHandler     *handler.SalesHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:    params.HealthHandler,
		productHandler:   params.ProductHandler,
		customerHandler:  params.CustomerHandler,
		inventoryHandler: params.InventoryHandler,
		orderHandler:     params.OrderHandler,
		salesHandler:     params.SalesHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	api := e.Group("/api")

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/category/:category", r.productHandler.ListProductsByCategory)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	customersGroup := api.Group("/customers")
	{
		customersGroup.GET("", r.customerHandler.ListCustomers)
		customersGroup.POST("", r.customerHandler.CreateCustomer)
		customersGroup.GET("/email/:email", r.customerHandler.GetCustomerByEmail)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
		customersGroup.PUT("/:id", r.customerHandler.UpdateCustomer)
		customersGroup.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}

	inventoryGroup := api.Group("/inventory")
	{
		inventoryGroup.GET("", r.inventoryHandler.ListInventory)
		inventoryGroup.GET("/low-stock", r.inventoryHandler.ListLowStock)
		inventoryGroup.GET("/products/:productId", r.inventoryHandler.GetInventory)
		inventoryGroup.PUT("/products/:productId", r.inventoryHandler.AdjustInventory)
		inventoryGroup.POST("/products/:productId/add", r.inventoryHandler.Restock)
		inventoryGroup.POST("/products/:productId/remove", r.inventoryHandler.Remove)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/customer/:customerId", r.orderHandler.ListOrdersByCustomer)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/label", r.orderHandler.GetOrderLabel)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	salesGroup := api.Group("/sales")
	{
		salesGroup.GET("", r.salesHandler.ListSales)
		salesGroup.GET("/product/:productId", r.salesHandler.ListSalesByProduct)
		salesGroup.GET("/order/:orderId", r.salesHandler.ListSalesByOrder)
		salesGroup.GET("/reports/period", r.salesHandler.SalesByPeriod)
		salesGroup.GET("/reports/top-products", r.salesHandler.TopProducts)
		salesGroup.GET("/reports/categories", r.salesHandler.SalesByCategory)
		salesGroup.GET("/:id", r.salesHandler.GetSale)
	}
}
