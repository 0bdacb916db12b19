package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cafe-sang/internal/application/dto"
	"github.com/tu-usuario/cafe-sang/internal/application/i18n"
)

// I18nHandler expone el idioma activo y la tabla de mensajes a la vista.
type I18nHandler struct {
	resolver *i18n.Resolver
}

// NewI18nHandler construye el handler de localización.
func NewI18nHandler(resolver *i18n.Resolver) *I18nHandler {
	return &I18nHandler{resolver: resolver}
}

// languageResponse idioma activo más su tabla completa de mensajes.
type languageResponse struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}

// Messages godoc
// @Summary      Tabla de mensajes localizados
// @Tags         i18n
// @Produce      json
// @Param        lang  query  string  false  "vi o en (por defecto el activo)"
// @Success      200  {object}  languageResponse
// @Router       /api/i18n [get]
func (h *I18nHandler) Messages(c *fiber.Ctx) error {
	lang := c.Query("lang")
	msgs := h.resolver.Messages(lang)
	active := h.resolver.Language()
	if lang == "" {
		lang = active
	}
	return c.JSON(languageResponse{Language: active, Messages: msgs})
}

// SetLanguage godoc
// @Summary      Fijar el idioma activo (persistido)
// @Tags         i18n
// @Accept       json
// @Produce      json
// @Param        body  body  object{language=string}  true  "vi o en"
// @Success      200   {object}  languageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/i18n [put]
func (h *I18nHandler) SetLanguage(c *fiber.Ctx) error {
	var in struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.resolver.SetLanguage(in.Language); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "language debe ser vi o en"})
	}
	return c.JSON(languageResponse{Language: h.resolver.Language(), Messages: h.resolver.Messages("")})
}

// Toggle godoc
// @Summary      Alternar vi/en (persistido)
// @Tags         i18n
// @Produce      json
// @Success      200  {object}  languageResponse
// @Router       /api/i18n/toggle [post]
func (h *I18nHandler) Toggle(c *fiber.Ctx) error {
	lang := h.resolver.Toggle()
	return c.JSON(languageResponse{Language: lang, Messages: h.resolver.Messages("")})
}
