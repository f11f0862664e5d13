package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/mercado-api/pkg/config"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

//go:embed sql/postgres/*.sql sql/sqlite/*.sql
var files embed.FS

// Migrator aplica las migraciones embebidas del dialecto configurado usando golang-migrate.
type Migrator struct {
	migrate *migrate.Migrate
	driver  string
	log     *logger.Logger
}

// New crea el Migrator sobre db para el driver indicado (postgres | sqlite).
//
// En PostgreSQL el driver de migraciones retiene una conexión dedicada y Close cierra db:
// el llamador debe pasar un *sql.DB propio para migrar. En SQLite Close no cierra db.
func New(db *sql.DB, driver string, log *logger.Logger) (*Migrator, error) {
	var (
		dbDriver database.Driver
		name     string
		err      error
	)
	switch driver {
	case config.DriverPostgres:
		name = "pgx5"
		dbDriver, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	case config.DriverSQLite:
		name = "sqlite"
		dbDriver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("migraciones: driver %q no soportado", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", name, err)
	}

	src, err := iofs.New(files, "sql/"+driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, dbDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return &Migrator{migrate: m, driver: driver, log: log.Named("migration")}, nil
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up() error {
	m.log.Info().Str("driver", m.driver).Msg("aplicando migraciones")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Info().Msg("sin migraciones pendientes")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	m.log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
	return nil
}

// Down revierte todas las migraciones.
func (m *Migrator) Down() error {
	m.log.Warn().Str("driver", m.driver).Msg("revirtiendo migraciones")

	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// Version devuelve la versión actual; 0 si nunca se migró.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Close libera el driver de migraciones. En SQLite es un no-op para no cerrar la conexión compartida.
func (m *Migrator) Close() error {
	if m.driver == config.DriverSQLite {
		return nil
	}
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("failed to close source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close database: %w", dbErr)
	}
	return nil
}
