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
	_ "github.com/tu-usuario/identity-api/docs" // registro del spec generado por swag
	"github.com/tu-usuario/identity-api/internal/application/seed"
	"github.com/tu-usuario/identity-api/internal/application/usecase"
	"github.com/tu-usuario/identity-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/identity-api/internal/interfaces/http"
	"github.com/tu-usuario/identity-api/pkg/config"
	"github.com/tu-usuario/identity-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)

	// Sembrado idempotente, SIEMPRE antes de atender peticiones. Cualquier fallo
	// aborta el arranque: la transacción única garantiza que no queda un store
	// sembrado a medias.
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(txRunner, log)
		if err := seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("sembrado inicial")
		}
		log.Info().Msg("sembrado inicial completado")
	}

	userUC := usecase.NewUserUseCase(txRunner, usecase.Options{
		StrictPersonUpdate: cfg.Users.StrictPersonUpdate,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New()) // recurso consumido desde frontends en otros orígenes
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Identity API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC: userUC,
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
