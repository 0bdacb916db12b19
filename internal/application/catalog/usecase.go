package catalog

import (
	"context"

	"github.com/tu-usuario/cafe-sang/internal/application/dto"
	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
	"github.com/tu-usuario/cafe-sang/pkg/logger"
)

// UseCase casos de uso del catálogo: listar categorías y productos presentables.
// Cada llamada es un fetch sin estado; no se cachea ninguna respuesta, así que
// una selección de categoría superada nunca puede ser pisada por una respuesta
// tardía de la selección anterior.
type UseCase struct {
	client Client
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(client Client, log *logger.Logger) *UseCase {
	return &UseCase{client: client, log: log}
}

// ListCategories devuelve las categorías en el orden que entrega la API.
// No hay reintento automático: ante fallo el llamador decide cuándo volver a pedir.
func (uc *UseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := uc.client.Categories(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar categorías")
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListProducts devuelve los productos presentables, opcionalmente filtrados por
// categoría en el servidor. El filtro por status es responsabilidad del cliente:
// la API puede devolver ítems inactivos y aquí se descartan antes de la vista.
func (uc *UseCase) ListProducts(ctx context.Context, categoryID *int) ([]dto.ProductResponse, error) {
	products, err := uc.client.Products(ctx, categoryID)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar productos")
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if !p.IsActive() {
			continue
		}
		out = append(out, toProductResponse(p, uc.client.ResolveImageURL(p.Image)))
	}
	return out, nil
}

// ResolveImageURL expone la resolución de URLs de imagen a la capa de vista.
func (uc *UseCase) ResolveImageURL(path string) string {
	return uc.client.ResolveImageURL(path)
}

func toProductResponse(p entity.Product, imageURL string) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    dto.CategoryResponse{ID: p.Category.ID, Name: p.Category.Name},
		Image:       imageURL,
	}
}
