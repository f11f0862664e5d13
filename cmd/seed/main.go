// seed carga datos iniciales de control de acceso y catálogo (roles, módulos, formularios,
// permisos y categorías) desde un archivo YAML.
//
// Uso: go run ./cmd/seed -file seed.yaml [-charset windows-1252]
// Todo se inserta en una sola transacción: si un registro no valida no queda nada escrito.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/mercado-api/internal/application/validation"
	"github.com/jhoicas/mercado-api/internal/infrastructure/database"
	"github.com/jhoicas/mercado-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/mercado-api/pkg/config"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

func main() {
	file := flag.String("file", "seed.yaml", "archivo YAML con los datos iniciales")
	charset := flag.String("charset", "utf-8", "codificación del archivo: utf-8, windows-1252, iso-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir archivo de semillas")
	}
	defer f.Close()

	data, err := readSeed(f, *charset)
	if err != nil {
		log.Fatal().Err(err).Msg("leer archivo de semillas")
	}

	ctx := context.Background()
	db, closeDB, err := database.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer closeDB()

	runner := sqlstore.NewTxRunner(db, nil)
	res, err := apply(ctx, runner, validation.New(), log, data)
	if err != nil {
		log.Error().Err(err).Msg("semillas no aplicadas")
		closeDB()
		os.Exit(1)
	}
	log.Info().
		Int("categories", res.Categories).
		Int("modules", res.Modules).
		Int("forms", res.Forms).
		Int("permissions", res.Permissions).
		Int("roles", res.Roles).
		Int("grants", res.Grants).
		Msg("semillas aplicadas")
}
