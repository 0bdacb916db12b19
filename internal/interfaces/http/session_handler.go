package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cafe-sang/internal/application/dto"
	"github.com/tu-usuario/cafe-sang/internal/application/session"
	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
	"github.com/tu-usuario/cafe-sang/pkg/jwt"
)

// SessionHandler expone el contrato de sesión a la capa de vista:
// login, register, logout, switch demo, puntos y proyección del usuario actual.
type SessionHandler struct {
	uc     *session.UseCase
	jwtCfg JWTConfig
}

// JWTConfig datos para emitir tokens de la capa de vista.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(uc *session.UseCase, jwtCfg JWTConfig) *SessionHandler {
	return &SessionHandler{uc: uc, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión demo
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	// Credencial sin match es un false del caso de uso, no una excepción;
	// la vista muestra el mensaje localizado que le corresponda.
	if !h.uc.Login(in.Email, in.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	}
	return c.JSON(h.sessionResponse())
}

// Register godoc
// @Summary      Registrar cliente nuevo
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, fullName, phone"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/session/register [post]
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y fullName son requeridos"})
	}
	if !h.uc.Register(c.Context(), in.Email, in.Password, in.FullName, in.Phone) {
		// Falla interna capturada por el caso de uso; el formulario de la vista
		// conserva lo escrito y puede reintentar
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REGISTER_FAILED", Message: "no se pudo completar el registro"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.sessionResponse())
}

// Logout godoc
// @Summary      Cerrar sesión (idempotente)
// @Tags         session
// @Success      204
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Current godoc
// @Summary      Usuario actual
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	user := h.uc.Current()
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_LOGGED_IN", Message: "no hay sesión activa"})
	}
	return c.JSON(toUserResponse(user))
}

// Switch godoc
// @Summary      Cambio de rol demo (sin credenciales)
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchRequest  true  "role"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/switch [post]
func (h *SessionHandler) Switch(c *fiber.Ctx) error {
	var in dto.SwitchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.uc.SwitchUser(in.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role debe ser customer, staff o admin"})
	}
	return c.JSON(h.sessionResponse())
}

// UpdatePoints godoc
// @Summary      Reemplazar los puntos del usuario actual
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePointsRequest  true  "points"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/session/points [put]
func (h *SessionHandler) UpdatePoints(c *fiber.Ctx) error {
	var in dto.UpdatePointsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Points < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "points debe ser >= 0"})
	}
	if !h.uc.UpdateUserPoints(in.Points) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_LOGGED_IN", Message: "no hay sesión activa"})
	}
	return c.JSON(toUserResponse(h.uc.Current()))
}

// sessionResponse arma token + usuario tras login/register/switch.
func (h *SessionHandler) sessionResponse() dto.SessionResponse {
	user := h.uc.Current()
	token, err := jwt.Generate(h.jwtCfg.Secret, user.ID, user.Role, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		// Sin secret configurado la sesión sigue funcionando; solo los
		// endpoints protegidos quedan fuera de alcance
		token = ""
	}
	return dto.SessionResponse{Token: token, User: toUserResponse(user)}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	if u == nil {
		return dto.UserResponse{}
	}
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Points:    u.Points,
		IsInStore: u.IsInStore,
		Role:      u.Role,
	}
}
