// seed ejecuta solo el sembrado idempotente de roles y cuentas base y termina.
// Útil para preparar una base de datos sin levantar el servidor HTTP.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/tu-usuario/identity-api/internal/application/seed"
	"github.com/tu-usuario/identity-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/identity-api/pkg/config"
	"github.com/tu-usuario/identity-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeder := seed.NewSeeder(postgres.NewTxRunner(pool), log)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrado")
	}
	log.Info().Msg("sembrado completado")
}
