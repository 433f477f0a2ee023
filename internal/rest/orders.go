package rest

import (
	"context"
	"net/http"
	"strconv"

	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error)
		GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error)
		GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error)
	}

	OrdersInput struct {
		ProductID int `json:"product_id" validate:"required"`
		Quantity  int `json:"quantity" validate:"required,gt=0"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
	}
}

func (h *OrdersHandler) CreateOrderItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request OrdersInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	orderItem, err := h.ordersService.CreateOrder(c.Request().Context(), domain.Orders{
		UserID:    int(userID),
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(orderItem))
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	orders, err := h.ordersService.GetAllOrders(c.Request().Context(), int(userID))
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	id := c.Param("id")
	orderID, _ := strconv.Atoi(id)

	userID := c.Get("user_id").(uint)
	order, err := h.ordersService.GetOrder(c.Request().Context(), orderID, int(userID))
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}
