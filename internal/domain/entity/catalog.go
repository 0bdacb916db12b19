package entity

import "github.com/shopspring/decimal"

// ProductStatusActive único estado presentable en la vista.
const ProductStatusActive = "active"

// Category categoría del catálogo remoto. Solo lectura: sirve para filtrar
// productos y pintar los controles de filtro.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product ítem del catálogo remoto. Price se modela con decimal porque el
// transporte puede entregarlo como número o como texto.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image,omitempty"`
	Status      string          `json:"status"`
}

// IsActive indica si el producto es presentable (status == "active").
func (p Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
