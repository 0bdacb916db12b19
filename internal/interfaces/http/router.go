package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cafe-sang/internal/application/catalog"
	"github.com/tu-usuario/cafe-sang/internal/application/i18n"
	"github.com/tu-usuario/cafe-sang/internal/application/rewards"
	"github.com/tu-usuario/cafe-sang/internal/application/session"
	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC *session.UseCase
	CatalogUC *catalog.UseCase
	RewardsUC *rewards.UseCase
	I18n      *i18n.Resolver
	JWT       JWTConfig
}

// Router registra las rutas que consume la capa de vista. Los componentes
// presentacionales deben pasar por estos endpoints: son la única fuente de
// verdad sobre sesión, catálogo e idioma.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (login/register/switch públicos; logout idempotente)
	sess := api.Group("/session")
	sessionHandler := NewSessionHandler(deps.SessionUC, deps.JWT)
	sess.Post("/login", sessionHandler.Login)
	sess.Post("/register", sessionHandler.Register)
	sess.Post("/logout", sessionHandler.Logout)
	sess.Post("/switch", sessionHandler.Switch)
	sess.Get("/", sessionHandler.Current)

	// Puntos (protegido: requiere Bearer Token emitido en el login)
	sess.Put("/points", AuthMiddleware(deps.JWT.Secret), sessionHandler.UpdatePoints)

	// Catálogo (público: la vista lo consulta sin sesión)
	cat := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	cat.Get("/categories", catalogHandler.Categories)
	cat.Get("/products", catalogHandler.Products)

	// Localización
	loc := api.Group("/i18n")
	i18nHandler := NewI18nHandler(deps.I18n)
	loc.Get("/", i18nHandler.Messages)
	loc.Put("/", i18nHandler.SetLanguage)
	loc.Post("/toggle", i18nHandler.Toggle)

	// Recompensas (el canje es del programa de clientes)
	rw := api.Group("/rewards")
	rewardsHandler := NewRewardsHandler(deps.RewardsUC)
	rw.Get("/", rewardsHandler.List)
	rw.Post("/:id/redeem",
		AuthMiddleware(deps.JWT.Secret),
		RequireRole(entity.RoleCustomer),
		rewardsHandler.Redeem,
	)
}
