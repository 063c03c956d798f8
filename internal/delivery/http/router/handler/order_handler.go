package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"renteasy/internal/delivery/http/response"
	"renteasy/internal/domain/entity"
	"renteasy/internal/domain/service"
	"renteasy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	CatalogUC usecase.CatalogUsecase
	Payment   service.PaymentService
	Logger    *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	catalogUC usecase.CatalogUsecase
	payment   service.PaymentService
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		catalogUC: params.CatalogUC,
		payment:   params.Payment,
		logger:    params.Logger,
	}
}

// SubmitOrderRequest represents the checkout form. Street address, city and
// pincode arrive separately and are composed into a single address line on
// the stored order.
type SubmitOrderRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	Days          int    `json:"days" validate:"required,min=1"`
	StartDate     string `json:"startDate" validate:"required,notpast"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required,inphone"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	Pincode       string `json:"pincode" validate:"required,pincode"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=razorpay card upi"`
}

// SubmitOrder handles checkout: it charges the renter and records the order
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.ProductByID(req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	total := product.Price * float64(req.Days)

	charge, err := h.payment.Charge(ctx, service.ChargeRequest{
		Method:       req.PaymentMethod,
		Amount:       total,
		ProductName:  product.Name,
		CustomerName: req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.SubmitOrder(ctx, entity.OrderDraft{
		Product: entity.OrderProduct{
			ID:    product.ID,
			Name:  product.Name,
			Image: product.Image,
			Price: product.Price,
		},
		Customer: entity.Customer{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: fmt.Sprintf("%s, %s, %s", req.Address, req.City, req.Pincode),
		},
		Rental: entity.Rental{
			Days:       req.Days,
			StartDate:  req.StartDate,
			TotalPrice: total,
		},
		Payment: entity.Payment{
			Method:    req.PaymentMethod,
			PaymentID: charge.PaymentID,
			Status:    charge.Status,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// CurrentOrder handles retrieving the most recently placed order
func (h *OrderHandler) CurrentOrder(c echo.Context) error {
	order, err := h.orderUC.CurrentOrder()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetOrder handles retrieving a single order by id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.OrderByID(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// OrderQR handles rendering an order's confirmation QR code as a PNG
func (h *OrderHandler) OrderQR(c echo.Context) error {
	png, err := h.orderUC.ConfirmationQR(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
