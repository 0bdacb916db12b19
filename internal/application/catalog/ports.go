package catalog

import (
	"context"

	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
)

// Client es el puerto hacia la API remota de catálogo. Lo implementa
// infrastructure/catalogapi; la interfaz permite sustituirlo en tests.
type Client interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	Products(ctx context.Context, categoryID *int) ([]entity.Product, error)
	ResolveImageURL(path string) string
}
