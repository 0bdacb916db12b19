package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/cafe-sang/internal/application/catalog"
	"github.com/tu-usuario/cafe-sang/internal/application/i18n"
	"github.com/tu-usuario/cafe-sang/internal/application/rewards"
	"github.com/tu-usuario/cafe-sang/internal/application/session"
	"github.com/tu-usuario/cafe-sang/internal/infrastructure/catalogapi"
	"github.com/tu-usuario/cafe-sang/internal/infrastructure/localstore"
	httpRouter "github.com/tu-usuario/cafe-sang/internal/interfaces/http"
	"github.com/tu-usuario/cafe-sang/pkg/config"
	"github.com/tu-usuario/cafe-sang/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado local durable (análogo a localStorage del SPA)
	store, err := localstore.Open(cfg.State.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir estado local")
	}

	// Localización y sesión restauran su estado persistido al construirse
	i18nResolver := i18n.New(store, log)
	sessionUC := session.New(store, log, session.Options{
		PresenceInterval: cfg.Session.PresenceInterval,
		RegisterDelay:    cfg.Session.RegisterDelay,
	})
	defer sessionUC.Close()

	catalogClient := catalogapi.NewClient(cfg.Catalog)
	catalogUC := catalog.NewUseCase(catalogClient, log)
	rewardsUC := rewards.NewUseCase(sessionUC, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// La vista corre en otro origen (dev server del SPA)
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cà Phê Sáng API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC: sessionUC,
		CatalogUC: catalogUC,
		RewardsUC: rewardsUC,
		I18n:      i18nResolver,
		JWT: httpRouter.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
