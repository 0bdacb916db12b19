package entity

// Reward recompensa canjeable por puntos del programa de fidelidad.
// Name/Description en vietnamita; NameEn/DescriptionEn en inglés.
type Reward struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NameEn         string `json:"nameEn"`
	Description    string `json:"description"`
	DescriptionEn  string `json:"descriptionEn"`
	PointsRequired int    `json:"pointsRequired"`
	Image          string `json:"image"`
	Available      bool   `json:"available"`
}
