package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/mercado-api/internal/application/validation"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/mercado-api/internal/testutil"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

const sample = `
categories:
  - Lácteos
modules:
  - name: Seguridad
forms:
  - name: Usuarios
    url: /seguridad/usuarios
    module: Seguridad
permissions:
  - name: Crear
roles:
  - name: Administrador
    code: ADMIN
    grants:
      - { form: Usuarios, permission: Crear }
`

func TestReadSeed_Windows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String(sample)
	require.NoError(t, err)
	require.NotEqual(t, sample, encoded)

	data, err := readSeed(bytes.NewReader([]byte(encoded)), "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lácteos"}, data.Categories)
	require.Len(t, data.Forms, 1)
	assert.Equal(t, "Seguridad", data.Forms[0].Module)
	require.Len(t, data.Roles, 1)
	assert.Equal(t, []grantItem{{Form: "Usuarios", Permission: "Crear"}}, data.Roles[0].Grants)
}

func TestReadSeed_CharsetNoSoportado(t *testing.T) {
	_, err := readSeed(strings.NewReader(sample), "ebcdic")
	assert.Error(t, err)
}

func TestApply_InsertaTodo(t *testing.T) {
	db := testutil.NewDB(t)
	data, err := readSeed(strings.NewReader(sample), "utf-8")
	require.NoError(t, err)

	res, err := apply(context.Background(), sqlstore.NewTxRunner(db, nil), validation.New(), logger.Nop(), data)
	require.NoError(t, err)
	assert.Equal(t, result{Categories: 1, Modules: 1, Forms: 1, Permissions: 1, Roles: 1, Grants: 1}, res)

	stores := sqlstore.NewStores(db, nil)
	fms, err := stores.FormModule.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, fms, 1)
	grants, err := stores.RolFormPermission.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, grants, 1)
}

func TestApply_RegistroInvalidoNoDejaNada(t *testing.T) {
	db := testutil.NewDB(t)
	data := &seedFile{
		Modules:    []namedItem{{Name: "Seguridad"}},
		Categories: []string{"Frutas", "  "},
	}

	_, err := apply(context.Background(), sqlstore.NewTxRunner(db, nil), validation.New(), logger.Nop(), data)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stores := sqlstore.NewStores(db, nil)
	cats, err := stores.Category.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestApply_ReferenciaNoDeclarada(t *testing.T) {
	db := testutil.NewDB(t)
	data := &seedFile{
		Forms: []formItem{{Name: "Usuarios", Module: "Inexistente"}},
	}

	_, err := apply(context.Background(), sqlstore.NewTxRunner(db, nil), validation.New(), logger.Nop(), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Inexistente")

	forms, err := sqlstore.NewStores(db, nil).Form.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, forms)
}
