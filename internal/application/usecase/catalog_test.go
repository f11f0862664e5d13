package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/testutil"
)

func TestCatalog_EscenarioCategory(t *testing.T) {
	_, cat := testutil.NewCatalog(t)

	_, err := cat.Category.Create(ctx, &dto.Category{Name: ""})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name", verr.Field)

	dairy, err := cat.Category.Create(ctx, &dto.Category{Name: "Dairy"})
	require.NoError(t, err)
	assert.Positive(t, dairy.ID)

	list, err := cat.Category.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dairy", list[0].Name)

	require.NoError(t, cat.Category.DeleteLogic(ctx, dairy.Key()))
	_, err = cat.Category.Get(ctx, dairy.Key())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_EscenarioReview(t *testing.T) {
	_, cat := testutil.NewCatalog(t)

	_, err := cat.Review.Create(ctx, &dto.Review{ConsumerID: 5, ProductID: 9, Rating: 4, Comment: "ok"})
	require.NoError(t, err)

	got, err := cat.Review.Get(ctx, domain.CompositeKey(5, 9))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "ok", got.Comment)

	_, err = cat.Review.Create(ctx, &dto.Review{ConsumerID: 5, ProductID: 9, Rating: 6, Comment: "ok"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Rating", verr.Field)

	_, err = cat.Review.Create(ctx, &dto.Review{ConsumerID: 5, ProductID: 9, Rating: 3, Comment: "repetida"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = cat.Review.Get(ctx, domain.CompositeKey(5, 10))
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Review con ConsumerId=5, ProductId=10 no encontrado", nf.Error())
}

func TestCatalog_EscenarioFavorite(t *testing.T) {
	_, cat := testutil.NewCatalog(t)

	_, err := cat.Favorite.Create(ctx, &dto.Favorite{ConsumerID: 0, ProducerID: 3, ProductID: 7})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ConsumerId", verr.Field)

	fav, err := cat.Favorite.Create(ctx, &dto.Favorite{ConsumerID: 1, ProducerID: 3, ProductID: 7})
	require.NoError(t, err)
	assert.NotNil(t, fav.DateAdded, "dateAdded se asigna al crear")
}

func TestCatalog_ListExcluyeEliminadosLogicamente(t *testing.T) {
	_, cat := testutil.NewCatalog(t)

	const n, m = 5, 2
	var created []*dto.Order
	for i := 0; i < n; i++ {
		o, err := cat.Order.Create(ctx, &dto.Order{ConsumerID: int64(i + 1), Status: "pendiente"})
		require.NoError(t, err)
		created = append(created, o)
	}
	for _, o := range created[:m] {
		require.NoError(t, cat.Order.DeleteLogic(ctx, o.Key()))
	}

	list, err := cat.Order.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n-m)
}

func TestCatalog_DeletePersistenceDosVeces(t *testing.T) {
	_, cat := testutil.NewCatalog(t)

	mod, err := cat.Module.Create(ctx, &dto.Module{Name: "Seguridad"})
	require.NoError(t, err)

	require.NoError(t, cat.Module.DeletePersistence(ctx, mod.Key()))
	err = cat.Module.DeletePersistence(ctx, mod.Key())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrExternalService)
}

func TestCatalog_CreateGetRoundTrip(t *testing.T) {
	_, cat := testutil.NewCatalog(t)

	pp, err := cat.ProducerProduct.Create(ctx, &dto.ProducerProduct{
		ProducerID: 2, ProductID: 4, Name: "Café de origen", Price: decimal.RequireFromString("32000.00"),
		Production: "orgánica", Availability: "disponible",
	})
	require.NoError(t, err)
	got, err := cat.ProducerProduct.Get(ctx, pp.Key())
	require.NoError(t, err)
	assert.Equal(t, pp.Name, got.Name)
	assert.True(t, pp.Price.Equal(got.Price))
	assert.Equal(t, "orgánica", got.Production)

	per, err := cat.Persona.Create(ctx, &dto.Persona{Name: "Ana", Email: "ana@example.com", PhoneNumber: "3001234567"})
	require.NoError(t, err)
	gotPer, err := cat.Persona.Get(ctx, per.Key())
	require.NoError(t, err)
	assert.Equal(t, *per, *gotPer)

	ru, err := cat.RolFormPermission.Create(ctx, &dto.RolFormPermission{RolID: 1, FormID: 2, PermissionID: 3})
	require.NoError(t, err)
	gotRu, err := cat.RolFormPermission.Get(ctx, ru.Key())
	require.NoError(t, err)
	assert.Equal(t, ru.PermissionID, gotRu.PermissionID)
}

func TestCatalog_UpdateEntidadEliminadaEsNotFound(t *testing.T) {
	_, cat := testutil.NewCatalog(t)

	u, err := cat.User.Create(ctx, &dto.User{UserName: "ana", Active: true})
	require.NoError(t, err)
	require.NoError(t, cat.User.DeleteLogic(ctx, u.Key()))

	_, err = cat.User.Update(ctx, u.Key(), &dto.User{UserName: "ana2"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_ReviewDeletePersistenceConservaArchivadas(t *testing.T) {
	db, cat := testutil.NewCatalog(t)
	key := domain.CompositeKey(5, 9)

	_, err := cat.Review.Create(ctx, &dto.Review{ConsumerID: 5, ProductID: 9, Rating: 2, Comment: "primera"})
	require.NoError(t, err)
	require.NoError(t, cat.Review.DeleteLogic(ctx, key))
	_, err = cat.Review.Create(ctx, &dto.Review{ConsumerID: 5, ProductID: 9, Rating: 5, Comment: "segunda"})
	require.NoError(t, err)

	require.NoError(t, cat.Review.DeletePersistence(ctx, key))

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM review WHERE consumer_id = 5 AND product_id = 9").Scan(&rows))
	assert.Equal(t, 1, rows, "la reseña archivada sigue en la tabla")

	var comment string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT comment FROM review WHERE consumer_id = 5 AND product_id = 9 AND deleted_at IS NOT NULL").Scan(&comment))
	assert.Equal(t, "primera", comment)

	_, err = cat.Review.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
