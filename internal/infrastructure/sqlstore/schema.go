package sqlstore

import (
	"fmt"
	"strings"
)

// Column columna no clave de una tabla. Mutable indica si Update la reescribe.
type Column struct {
	Name    string
	Mutable bool
}

// Schema metadatos declarativos de una entidad: con esto el Store genera todo su SQL.
type Schema[T any] struct {
	Entity     string   // nombre de la entidad en mensajes y métricas ("Category")
	Table      string   // tabla física
	Key        []string // columnas de la clave primaria, en orden
	Generated  bool     // la clave es autoincremental (un solo campo) y se lee con RETURNING
	Columns    []Column // columnas no clave en orden de inserción
	SoftDelete string   // columna de borrado lógico (timestamp nullable); "" = sin borrado lógico

	// Fields devuelve punteros a los campos del registro: primero las columnas de Key
	// y luego las de Columns, en el mismo orden. Se usa tanto para Scan como para argumentos.
	Fields func(*T) []any
}

// queries SQL precalculado a partir del Schema.
type queries struct {
	selectAll   string
	selectByKey string
	insert      string
	update      string
	softDelete  string
	hardDelete  string
}

func (s Schema[T]) validate() error {
	if s.Table == "" || len(s.Key) == 0 || s.Fields == nil {
		return fmt.Errorf("sqlstore: schema %q incompleto", s.Entity)
	}
	if s.Generated && len(s.Key) != 1 {
		return fmt.Errorf("sqlstore: schema %q: clave generada debe ser de una columna", s.Entity)
	}
	var probe T
	if got, want := len(s.Fields(&probe)), len(s.Key)+len(s.Columns); got != want {
		return fmt.Errorf("sqlstore: schema %q: Fields devuelve %d punteros, se esperaban %d", s.Entity, got, want)
	}
	return nil
}

// mutableIndexes posiciones (dentro de Fields) de las columnas que Update reescribe.
func (s Schema[T]) mutableIndexes() []int {
	var idx []int
	for i, c := range s.Columns {
		if c.Mutable {
			idx = append(idx, len(s.Key)+i)
		}
	}
	return idx
}

func (s Schema[T]) build() queries {
	cols := make([]string, 0, len(s.Key)+len(s.Columns))
	cols = append(cols, s.Key...)
	for _, c := range s.Columns {
		cols = append(cols, c.Name)
	}
	selectList := strings.Join(cols, ", ")

	active := ""
	if s.SoftDelete != "" {
		active = s.SoftDelete + " IS NULL"
	}

	var q queries

	q.selectAll = fmt.Sprintf("SELECT %s FROM %s", selectList, s.Table)
	if active != "" {
		q.selectAll += " WHERE " + active
	}
	q.selectAll += " ORDER BY " + strings.Join(s.Key, ", ")

	q.selectByKey = fmt.Sprintf("SELECT %s FROM %s WHERE %s", selectList, s.Table, keyPredicate(s.Key, 1))
	if active != "" {
		q.selectByKey += " AND " + active
	}

	insertCols := cols
	if s.Generated {
		insertCols = cols[len(s.Key):]
	}
	q.insert = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.Table, strings.Join(insertCols, ", "), placeholders(1, len(insertCols)))
	if s.Generated {
		q.insert += " RETURNING " + s.Key[0]
	}

	var sets []string
	for _, c := range s.Columns {
		if c.Mutable {
			sets = append(sets, fmt.Sprintf("%s = $%d", c.Name, len(sets)+1))
		}
	}
	q.update = fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		s.Table, strings.Join(sets, ", "), keyPredicate(s.Key, len(sets)+1))
	if active != "" {
		q.update += " AND " + active
	}

	if s.SoftDelete != "" {
		q.softDelete = fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s AND %s",
			s.Table, s.SoftDelete, keyPredicate(s.Key, 2), active)
	}

	q.hardDelete = fmt.Sprintf("DELETE FROM %s WHERE %s", s.Table, keyPredicate(s.Key, 1))
	// Una clave natural puede repetirse entre filas archivadas; solo se borra la activa.
	if !s.Generated && active != "" {
		q.hardDelete += " AND " + active
	}
	return q
}

// keyPredicate "id = $1" o "consumer_id = $2 AND product_id = $3".
func keyPredicate(key []string, start int) string {
	parts := make([]string, len(key))
	for i, k := range key {
		parts[i] = fmt.Sprintf("%s = $%d", k, start+i)
	}
	return strings.Join(parts, " AND ")
}

func placeholders(start, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ph, ", ")
}
