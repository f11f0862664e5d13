package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/mercado-api/internal/interfaces/http"
	"github.com/jhoicas/mercado-api/internal/testutil"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp aplicación completa sobre SQLite en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, cat := testutil.NewCatalog(t)
	deps := apphttp.RouterDeps{
		Catalog: cat,
		Log:     logger.Nop(),
		Metrics: metrics.New("test"),
		DB:      db,
		AppName: "mercado-api-test",
	}
	app := apphttp.NewApp(deps)
	apphttp.Router(app, deps)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			r = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_CicloCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/category", map[string]any{"name": "Lácteos"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.Category](t, resp)
	assert.Positive(t, created.ID)
	assert.Equal(t, "/api/category/1", resp.Header.Get("Location"))

	resp = doRequest(t, app, http.MethodGet, "/api/category/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Lácteos", decode[dto.Category](t, resp).Name)

	resp = doRequest(t, app, http.MethodPut, "/api/category/1", map[string]any{"name": "Lácteos y quesos"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Lácteos y quesos", decode[dto.Category](t, resp).Name)

	resp = doRequest(t, app, http.MethodPatch, "/api/category/eliminar-logico/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category con ID 1 eliminado lógicamente", decode[dto.MessageResponse](t, resp).Message)

	resp = doRequest(t, app, http.MethodGet, "/api/category/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/category", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.Category](t, resp))
}

func TestCreate_ValidacionDevuelve400ConCampo(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/favorite", map[string]any{"consumerId": 0, "producerId": 3, "productId": 7})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Equal(t, "ConsumerId", body.Field)
	assert.NotEmpty(t, body.Message)
}

func TestCreate_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/category", "{no es json")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, decode[dto.ErrorResponse](t, resp).Code)
}

func TestGet_IDNoEnteroDevuelve400(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/category/abc", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Equal(t, "Id", body.Field)
}

func TestGet_IDNoPositivoDevuelve400(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/product/0", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDelete_Persistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/module", map[string]any{"name": "Seguridad"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/module/1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/module/1", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, decode[dto.ErrorResponse](t, resp).Code)
}

func TestEliminarLogico_NoRegistradoSinBorradoLogico(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPatch, "/api/persona/eliminar-logico/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Review: clave compuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestReview_RutaCompuesta(t *testing.T) {
	app := buildTestApp(t)

	review := map[string]any{"consumerId": 5, "productId": 9, "rating": 4, "comment": "ok"}
	resp := doRequest(t, app, http.MethodPost, "/api/review", review)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/review/5/9", resp.Header.Get("Location"))

	resp = doRequest(t, app, http.MethodGet, "/api/review/5/9", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.Review](t, resp)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "ok", got.Comment)

	resp = doRequest(t, app, http.MethodPost, "/api/review", review)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, apphttp.CodeDuplicate, decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodPost, "/api/review", map[string]any{"consumerId": 5, "productId": 10, "rating": 6, "comment": "ok"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Rating", decode[dto.ErrorResponse](t, resp).Field)

	// La clave de la ruta prevalece sobre la del cuerpo.
	resp = doRequest(t, app, http.MethodPut, "/api/review/5/9", map[string]any{"consumerId": 1, "productId": 1, "rating": 5, "comment": "mejor"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.Review](t, resp)
	assert.Equal(t, int64(5), updated.ConsumerID)
	assert.Equal(t, 5, updated.Rating)

	resp = doRequest(t, app, http.MethodPatch, "/api/review/eliminar-logico/5/9", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/review/5/9", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Review con ConsumerId=5, ProductId=9 no encontrado", decode[dto.ErrorResponse](t, resp).Message)
}

func TestReview_CrearPorRutaCompuesta(t *testing.T) {
	app := buildTestApp(t)

	// Sin clave en el cuerpo: la toma de la ruta.
	resp := doRequest(t, app, http.MethodPost, "/api/review/5/9", map[string]any{"rating": 4, "comment": "ok"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/review/5/9", resp.Header.Get("Location"))
	created := decode[dto.Review](t, resp)
	assert.Equal(t, int64(5), created.ConsumerID)
	assert.Equal(t, int64(9), created.ProductID)

	resp = doRequest(t, app, http.MethodGet, "/api/review/5/9", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.Review](t, resp)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "ok", got.Comment)

	// La ruta prevalece sobre el cuerpo.
	resp = doRequest(t, app, http.MethodPost, "/api/review/6/9", map[string]any{"consumerId": 1, "productId": 1, "rating": 3, "comment": "otra"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/review/6/9", resp.Header.Get("Location"))

	resp = doRequest(t, app, http.MethodGet, "/api/review/1/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/review/5/9", map[string]any{"rating": 5, "comment": "repetida"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/review/x/9", map[string]any{"rating": 5, "comment": "ok"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ConsumerId", decode[dto.ErrorResponse](t, resp).Field)
}

func TestCategory_PostConIDEnRutaNoExiste(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/category/3", map[string]any{"name": "Frutas"})
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura: health, metrics, request id, rutas desconocidas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
}

func TestMetrics_ExponeContadorDePeticiones(t *testing.T) {
	app := buildTestApp(t)

	doRequest(t, app, http.MethodGet, "/api/category", nil)
	resp := doRequest(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "test_http_requests_total")
}

func TestRequestID_SeGeneraOSeRespeta(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", nil)
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRutaInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/noexiste", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, decode[dto.ErrorResponse](t, resp).Code)
}
