package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// DBTX lo cumplen *sql.DB y *sql.Tx; permite usar el mismo Store dentro o fuera de una transacción.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Observer recibe la duración y el resultado de cada sentencia (métricas).
type Observer interface {
	ObserveStatement(table, op string, elapsed time.Duration, err error)
}

// Store implementa repository.Store[T] para cualquier entidad descrita por un Schema.
type Store[T any] struct {
	db      DBTX
	schema  Schema[T]
	q       queries
	mutable []int
	obs     Observer
}

// NewStore construye el store validando el schema. obs puede ser nil.
func NewStore[T any](db DBTX, schema Schema[T], obs Observer) (*Store[T], error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}
	return &Store[T]{
		db:      db,
		schema:  schema,
		q:       schema.build(),
		mutable: schema.mutableIndexes(),
		obs:     obs,
	}, nil
}

// MustStore como NewStore pero entra en pánico si el schema es inválido (schemas estáticos del paquete).
func MustStore[T any](db DBTX, schema Schema[T], obs Observer) *Store[T] {
	s, err := NewStore(db, schema, obs)
	if err != nil {
		panic(err)
	}
	return s
}

var _ repository.Store[struct{}] = (*Store[struct{}])(nil)

// SoftDeletable indica si la tabla tiene columna de borrado lógico.
func (s *Store[T]) SoftDeletable() bool { return s.schema.SoftDelete != "" }

// FindAll lista los registros activos ordenados por clave.
func (s *Store[T]) FindAll(ctx context.Context) (out []*T, err error) {
	defer s.observe("select_all", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, s.q.selectAll)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.schema.Table, err)
	}
	defer rows.Close()

	out = make([]*T, 0)
	for rows.Next() {
		rec := new(T)
		if err := rows.Scan(s.schema.Fields(rec)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.schema.Table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", s.schema.Table, err)
	}
	return out, nil
}

// FindByID devuelve el registro activo con esa clave, o (nil, nil) si no existe.
func (s *Store[T]) FindByID(ctx context.Context, key domain.Key) (rec *T, err error) {
	defer s.observe("select_by_key", time.Now(), &err)

	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	rec = new(T)
	err = s.db.QueryRowContext(ctx, s.q.selectByKey, keyArgs(key)...).Scan(s.schema.Fields(rec)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select %s by key: %w", s.schema.Table, err)
	}
	return rec, nil
}

// Insert persiste el registro. Con clave generada asigna el id devuelto por RETURNING.
func (s *Store[T]) Insert(ctx context.Context, rec *T) (_ *T, err error) {
	defer s.observe("insert", time.Now(), &err)

	fields := s.schema.Fields(rec)
	if s.schema.Generated {
		args := values(fields[len(s.schema.Key):])
		if err := s.db.QueryRowContext(ctx, s.q.insert, args...).Scan(fields[0]); err != nil {
			return nil, s.wrapWrite("insert", err)
		}
		return rec, nil
	}
	if _, err := s.db.ExecContext(ctx, s.q.insert, values(fields)...); err != nil {
		return nil, s.wrapWrite("insert", err)
	}
	return rec, nil
}

// Update reescribe las columnas mutables del registro activo identificado por su clave.
func (s *Store[T]) Update(ctx context.Context, rec *T) (ok bool, err error) {
	defer s.observe("update", time.Now(), &err)

	fields := s.schema.Fields(rec)
	args := make([]any, 0, len(s.mutable)+len(s.schema.Key))
	for _, i := range s.mutable {
		args = append(args, deref(fields[i]))
	}
	args = append(args, values(fields[:len(s.schema.Key)])...)

	res, err := s.db.ExecContext(ctx, s.q.update, args...)
	if err != nil {
		return false, s.wrapWrite("update", err)
	}
	return affected(res, "update", s.schema.Table)
}

// SoftDelete marca el registro como eliminado con el instante at. No aplica a registros ya eliminados.
func (s *Store[T]) SoftDelete(ctx context.Context, key domain.Key, at time.Time) (ok bool, err error) {
	defer s.observe("soft_delete", time.Now(), &err)

	if !s.SoftDeletable() {
		return false, domain.ErrSoftDeleteUnsupported
	}
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	args := append([]any{at}, keyArgs(key)...)
	res, err := s.db.ExecContext(ctx, s.q.softDelete, args...)
	if err != nil {
		return false, fmt.Errorf("soft delete %s: %w", s.schema.Table, err)
	}
	return affected(res, "soft delete", s.schema.Table)
}

// HardDelete elimina físicamente la fila, esté activa o no.
func (s *Store[T]) HardDelete(ctx context.Context, key domain.Key) (ok bool, err error) {
	defer s.observe("hard_delete", time.Now(), &err)

	if err := s.checkKey(key); err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, s.q.hardDelete, keyArgs(key)...)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", s.schema.Table, err)
	}
	return affected(res, "delete", s.schema.Table)
}

func (s *Store[T]) checkKey(key domain.Key) error {
	if key.Len() != len(s.schema.Key) {
		return fmt.Errorf("%s: clave con %d componentes, se esperaban %d", s.schema.Table, key.Len(), len(s.schema.Key))
	}
	return nil
}

func (s *Store[T]) wrapWrite(op string, err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return fmt.Errorf("%s %s: %w", op, s.schema.Table, err)
}

func (s *Store[T]) observe(op string, start time.Time, err *error) {
	if s.obs == nil {
		return
	}
	s.obs.ObserveStatement(s.schema.Table, op, time.Since(start), *err)
}

func affected(res sql.Result, op, table string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s %s rows affected: %w", op, table, err)
	}
	return n > 0, nil
}

func keyArgs(key domain.Key) []any {
	vals := key.Values()
	args := make([]any, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	return args
}

// values convierte los punteros de Fields en valores para usarlos como argumentos.
func values(ptrs []any) []any {
	out := make([]any, len(ptrs))
	for i, p := range ptrs {
		out[i] = deref(p)
	}
	return out
}

func deref(p any) any {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return p
	}
	return v.Elem().Interface()
}
