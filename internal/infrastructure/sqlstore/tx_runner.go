package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción SQL.
type TxRunner struct {
	db  *sql.DB
	obs Observer
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *sql.DB, obs Observer) *TxRunner {
	return &TxRunner{db: db, obs: obs}
}

// Run inicia una transacción, ejecuta fn con stores atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(stores repository.Stores) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewStores(tx, r.obs)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
