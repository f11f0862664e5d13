package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/mercado-api/internal/infrastructure/migration"
	"github.com/jhoicas/mercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mercado-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/mercado-api/pkg/config"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

// Open abre la base de datos del driver configurado, aplica migraciones si DB_AUTO_MIGRATE está activo
// y devuelve la conexión junto con su función de cierre.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*sql.DB, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		host, name := postgres.Describe(cfg)
		log.Info().Str("driver", cfg.Driver).Str("host", host).Str("db", name).Msg("base de datos conectada")

		if cfg.AutoMigrate {
			// Conexión propia: el migrador la cierra al terminar sin tocar el pool.
			if err := migrate(postgres.OpenDB(pool), cfg.Driver, log); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		db := postgres.OpenDB(pool)
		return db, func() {
			_ = db.Close()
			pool.Close()
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a SQLite: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.SQLitePath).Msg("base de datos conectada")

		if cfg.AutoMigrate {
			if err := migrate(db, cfg.Driver, log); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		return db, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("driver %q no soportado", cfg.Driver)
	}
}

func migrate(db *sql.DB, driver string, log *logger.Logger) error {
	m, err := migration.New(db, driver, log)
	if err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	defer func() { _ = m.Close() }()

	if err := m.Up(); err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	return nil
}
