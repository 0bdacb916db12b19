package session

import "github.com/tu-usuario/cafe-sang/internal/domain/entity"

// credential entrada de la tabla estática de acceso demo. Solo se usa en el
// login (el registro nunca la consulta). Comparación exacta, case-sensitive.
type credential struct {
	Email    string
	Password string
	Role     string
}

// demoCredentials tabla fija de credenciales. Es data, no control de flujo:
// sustituirla por un servicio de identidad real solo toca este archivo.
var demoCredentials = []credential{
	{Email: "demo@cafe.com", Password: "demo", Role: entity.RoleCustomer},
	{Email: "customer@cafe.com", Password: "customer", Role: entity.RoleCustomer},
	{Email: "staff@cafe.com", Password: "staff", Role: entity.RoleStaff},
	{Email: "admin@cafe.com", Password: "admin", Role: entity.RoleAdmin},
}

// rolePrototypes plantilla fija de usuario por rol. El login y el cambio demo
// materializan la sesión copiando la plantilla del rol correspondiente.
var rolePrototypes = map[string]entity.User{
	entity.RoleCustomer: {
		ID:        "1",
		Name:      "Nguyễn Văn An",
		Email:     "customer@cafe.com",
		Phone:     "0123456789",
		Points:    150,
		IsInStore: true,
		Role:      entity.RoleCustomer,
	},
	entity.RoleStaff: {
		ID:        "2",
		Name:      "Trần Thị Bình",
		Email:     "staff@cafe.com",
		Phone:     "0987654321",
		Points:    50,
		IsInStore: true,
		Role:      entity.RoleStaff,
	},
	entity.RoleAdmin: {
		ID:        "3",
		Name:      "Lê Văn Cường",
		Email:     "admin@cafe.com",
		Phone:     "0555666777",
		Points:    500,
		IsInStore: false,
		Role:      entity.RoleAdmin,
	},
}

// findCredential busca el par (email, password) en la tabla.
func findCredential(email, password string) (credential, bool) {
	for _, c := range demoCredentials {
		if c.Email == email && c.Password == password {
			return c, true
		}
	}
	return credential{}, false
}
