package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wardrobe/internal/delivery/http/response"
	"wardrobe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog browsing handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of the catalog, optionally narrowed by query filters.
func (h *ProductHandler) List(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Gender:   c.QueryParam("gender"),
		Page:     queryInt(c, "page", 0),
		Limit:    queryInt(c, "limit", 0),
	}
	if raw := c.QueryParam("isLuxury"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			input.IsLuxury = &v
		}
	}
	if raw := c.QueryParam("isEconomic"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			input.IsEconomic = &v
		}
	}

	page, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pageView{
		Items:      toProductViews(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, "Products retrieved successfully")
}

// Search runs a free-text catalog search.
func (h *ProductHandler) Search(c echo.Context) error {
	input := &usecase.SearchProductsInput{
		Query: c.QueryParam("q"),
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			input.MinPrice = &v
		}
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			input.MaxPrice = &v
		}
	}

	products, err := h.uc.SearchProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}

// Categories lists the distinct catalog categories.
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// Brands lists the distinct catalog brands.
func (h *ProductHandler) Brands(c echo.Context) error {
	brands, err := h.uc.Brands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brands, "Brands retrieved successfully")
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product retrieved successfully")
}
