package handler

import (
	"log/slog"
	"net/http"

	"renteasy/internal/delivery/http/response"
	"renteasy/internal/domain/entity"
	"renteasy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog-related handlers
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

// ProductRequest represents the request body for creating or replacing a
// product. The same shape serves create and update: an update replaces the
// stored record with exactly these fields.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description string   `json:"description"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Available   bool     `json:"available"`
	Features    []string `json:"features"`
}

func (r ProductRequest) toDraft() entity.ProductDraft {
	return entity.ProductDraft{
		Name:        r.Name,
		Category:    entity.Category(r.Category),
		Price:       r.Price,
		Description: r.Description,
		Image:       r.Image,
		Available:   r.Available,
		Features:    r.Features,
	}
}

// ProductMutationResponse carries the mutated product plus the persistence
// receipt, so clients can tell degraded writes apart.
type ProductMutationResponse struct {
	Product      entity.Product `json:"product"`
	UsedFallback bool           `json:"usedFallback"`
}

// ListProducts handles retrieving the full catalog
func (h *ProductHandler) ListProducts(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"products": h.catalogUC.Products(),
		"loading":  h.catalogUC.Loading(),
	}, "Products retrieved successfully")
}

// GetProduct handles retrieving a single product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.ProductByID(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct handles adding a product to the catalog
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, receipt, err := h.catalogUC.AddProduct(c.Request().Context(), req.toDraft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ProductMutationResponse{
		Product:      product,
		UsedFallback: receipt.UsedFallback,
	}, "Product added successfully")
}

// UpdateProduct handles replacing a product's field set
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, receipt, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, req.toDraft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProductMutationResponse{
		Product:      product,
		UsedFallback: receipt.UsedFallback,
	}, "Product updated successfully")
}

// DeleteProduct handles removing a product from the catalog
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	receipt, err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"usedFallback": receipt.UsedFallback,
	}, "Product deleted successfully")
}
