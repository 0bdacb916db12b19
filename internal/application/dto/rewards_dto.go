package dto

// RewardResponse recompensa del programa de fidelidad.
type RewardResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NameEn         string `json:"nameEn"`
	Description    string `json:"description"`
	DescriptionEn  string `json:"descriptionEn"`
	PointsRequired int    `json:"pointsRequired"`
	Image          string `json:"image"`
	Available      bool   `json:"available"`
}

// RedeemResponse resultado de un canje: puntos restantes del usuario.
type RedeemResponse struct {
	RewardID        string `json:"rewardId"`
	RemainingPoints int    `json:"remainingPoints"`
}
