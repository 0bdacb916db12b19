package dto

import "github.com/shopspring/decimal"

// CategoryResponse categoría tal como la consume la vista.
type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductResponse producto presentable: solo ítems activos, con la URL de
// imagen ya resuelta a absoluta.
type ProductResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	Category    CategoryResponse `json:"category"`
	Image       string           `json:"image,omitempty"`
}
