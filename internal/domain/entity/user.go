package entity

// Roles válidos para User.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// User representa la identidad autenticada y sus derechos (puntos, rol, presencia).
// Es el único registro durable de la sesión: se persiste completo bajo la clave
// "currentUser" y se restaura tal cual al arrancar el proceso.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Points    int    `json:"points"`
	IsInStore bool   `json:"isInStore"`
	Role      string `json:"role"` // customer, staff, admin — inmutable durante la sesión
}

// ValidRole indica si el rol es uno de los tres conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
