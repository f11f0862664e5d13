// Package testutil arma dependencias reales (SQLite en memoria migrada) para pruebas de integración.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/application/validation"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
	"github.com/jhoicas/mercado-api/internal/infrastructure/migration"
	"github.com/jhoicas/mercado-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/mercado-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/mercado-api/pkg/config"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

// NewDB abre una base SQLite en memoria con las migraciones aplicadas. Se cierra al terminar el test.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err, "abrir SQLite en memoria")
	t.Cleanup(func() { _ = db.Close() })

	m, err := migration.New(db, config.DriverSQLite, logger.Nop())
	require.NoError(t, err, "crear migrador")
	require.NoError(t, m.Up(), "aplicar migraciones")
	return db
}

// NewStores stores SQL reales sobre una base nueva.
func NewStores(t testing.TB) (*sql.DB, repository.Stores) {
	t.Helper()
	db := NewDB(t)
	return db, sqlstore.NewStores(db, nil)
}

// NewCatalog servicios completos sobre una base nueva.
func NewCatalog(t testing.TB) (*sql.DB, *usecase.Catalog) {
	t.Helper()
	db, stores := NewStores(t)
	return db, usecase.NewCatalog(stores, validation.New(), nil, logger.Nop())
}
