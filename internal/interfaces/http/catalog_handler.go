package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cafe-sang/internal/application/catalog"
	"github.com/tu-usuario/cafe-sang/internal/application/dto"
	"github.com/tu-usuario/cafe-sang/internal/domain"
)

// CatalogHandler expone categorías y productos del catálogo remoto a la vista.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(cats)
}

// Products godoc
// @Summary      Listar productos presentables (status active)
// @Tags         catalog
// @Produce      json
// @Param        categoryId  query  int  false  "filtrar por categoría"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	var categoryID *int
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoryId debe ser numérico"})
		}
		categoryID = &id
	}
	products, err := h.uc.ListProducts(c.Context(), categoryID)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(products)
}

// upstreamError traduce el APIError normalizado del catálogo a una respuesta
// 502 con el mensaje original; la vista pinta el estado de error localizado y
// ofrece el reintento manual (aquí no se reintenta).
func upstreamError(c *fiber.Ctx, err error) error {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
