package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/validation"
	"github.com/jhoicas/mercado-api/internal/domain"
)

func validationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return verr
}

func TestStruct_NombreEnBlanco(t *testing.T) {
	v := validation.New()

	verr := validationError(t, v.Struct(&dto.Category{Name: "   "}))
	assert.Equal(t, "Name", verr.Field)

	assert.NoError(t, v.Struct(&dto.Category{Name: "Lácteos"}))
}

func TestStruct_ClavesForaneasPositivas(t *testing.T) {
	v := validation.New()

	verr := validationError(t, v.Struct(&dto.Favorite{ConsumerID: 0, ProducerID: 3, ProductID: 7}))
	assert.Equal(t, "ConsumerId", verr.Field)
	assert.Equal(t, "debe ser mayor que 0", verr.Message)

	verr = validationError(t, v.Struct(&dto.Product{CategoryID: 1, FavoriteID: -2}))
	assert.Equal(t, "FavoriteId", verr.Field)
}

func TestStruct_RatingFueraDeRango(t *testing.T) {
	v := validation.New()

	for _, rating := range []int{0, 6} {
		verr := validationError(t, v.Struct(&dto.Review{ConsumerID: 5, ProductID: 9, Rating: rating, Comment: "ok"}))
		assert.Equal(t, "Rating", verr.Field)
	}
	for _, rating := range []int{1, 5} {
		assert.NoError(t, v.Struct(&dto.Review{ConsumerID: 5, ProductID: 9, Rating: rating, Comment: "ok"}))
	}
}

func TestStruct_PrecioNegativo(t *testing.T) {
	v := validation.New()
	in := &dto.ProducerProduct{ProducerID: 1, ProductID: 1, Name: "Queso", Price: decimal.NewFromFloat(-0.5)}

	verr := validationError(t, v.Struct(in))
	assert.Equal(t, "Price", verr.Field)

	in.Price = decimal.Zero
	assert.NoError(t, v.Struct(in))
}

func TestStruct_PersonaPrimerCampoInvalido(t *testing.T) {
	v := validation.New()

	verr := validationError(t, v.Struct(&dto.Persona{Name: "Ana", Email: "", PhoneNumber: ""}))
	assert.Equal(t, "Email", verr.Field)
}

func TestStruct_ConsumerSinReglas(t *testing.T) {
	assert.NoError(t, validation.New().Struct(&dto.Consumer{}))
}
