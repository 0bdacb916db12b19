package dto

// LoginRequest entrada del login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest entrada del registro de cliente nuevo.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// SwitchRequest entrada del cambio de rol demo.
type SwitchRequest struct {
	Role string `json:"role"` // customer, staff, admin
}

// UpdatePointsRequest entrada de la actualización de puntos.
// El llamador garantiza points >= 0; el gestor no recorta.
type UpdatePointsRequest struct {
	Points int `json:"points"`
}

// UserResponse proyección de solo lectura del usuario actual.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Points    int    `json:"points"`
	IsInStore bool   `json:"isInStore"`
	Role      string `json:"role"`
}

// SessionResponse respuesta de login/register/switch: token de la capa de
// vista más el usuario materializado.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
