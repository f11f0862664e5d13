package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mercado-api/internal/domain"
)

func TestKey_Surrogate(t *testing.T) {
	k := domain.SurrogateKey(5)

	assert.True(t, k.Valid())
	assert.False(t, k.IsComposite())
	assert.Equal(t, "Id", k.Field())
	assert.Equal(t, "ID 5", k.String())
	assert.Equal(t, []int64{5}, k.Values())
}

func TestKey_Composite(t *testing.T) {
	k := domain.CompositeKey(5, 9)

	assert.True(t, k.Valid())
	assert.True(t, k.IsComposite())
	assert.Equal(t, "ConsumerId/ProductId", k.Field())
	assert.Equal(t, "ConsumerId=5, ProductId=9", k.String())
}

func TestKey_Valid(t *testing.T) {
	assert.False(t, domain.SurrogateKey(0).Valid())
	assert.False(t, domain.SurrogateKey(-3).Valid())
	assert.False(t, domain.CompositeKey(5, 0).Valid())
	assert.False(t, domain.Key{}.Valid())
}

func TestErrores_IsYAs(t *testing.T) {
	nf := fmt.Errorf("envuelto: %w", &domain.NotFoundError{Entity: "Category", Key: domain.SurrogateKey(7)})
	assert.ErrorIs(t, nf, domain.ErrNotFound)
	assert.EqualError(t, errors.Unwrap(nf), "Category con ID 7 no encontrado")

	ve := &domain.ValidationError{Field: "Name", Message: "El campo Name es obligatorio"}
	assert.ErrorIs(t, ve, domain.ErrInvalidInput)
	assert.NotErrorIs(t, ve, domain.ErrNotFound)

	cause := errors.New("connection refused")
	ext := &domain.ExternalServiceError{Service: "Base de datos", Message: "Error al crear la categoría", Err: cause}
	assert.ErrorIs(t, ext, domain.ErrExternalService)
	assert.ErrorIs(t, ext, cause)
}
