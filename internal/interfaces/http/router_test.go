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
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
	"github.com/jhoicas/restaurant-menu-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/restaurant-menu-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/restaurant-menu-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la API completa sobre un almacén en memoria nuevo.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	repos := memory.NewRepos(store)
	tx := memory.NewTxRunner(store)
	orderUC := usecase.NewOrderUseCase(repos, tx, usecase.WriteModeAtomic)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:   usecase.NewCategoryUseCase(repos.Categories),
		IngredientUC: usecase.NewIngredientUseCase(repos.Ingredients),
		MenuItemUC:   usecase.NewMenuItemUseCase(repos, tx, usecase.WriteModeAtomic),
		OrderUC:      orderUC,
		ReceiptUC:    usecase.NewReceiptUseCase(orderUC, infrapdf.NewMarotoReceiptGenerator("Test Kitchen")),
	})
	return app
}

// doRequest lanza la petición y devuelve estado y cuerpo.
func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: categoría Drinks, ítem Cola y un pedido de 2 unidades.
func TestScenario_DrinksColaOrder(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doRequest(t, app, http.MethodPost, "/categories", `{"name":"Drinks"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	category := decode[map[string]any](t, raw)
	assert.EqualValues(t, 1, category["id"])
	assert.Nil(t, category["description"])

	resp, raw = doRequest(t, app, http.MethodPost, "/menu-items", `{"name":"Cola","price":2.5,"category_id":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	item := decode[map[string]any](t, raw)
	assert.EqualValues(t, 1, item["id"])
	assert.EqualValues(t, 2.5, item["price"], "el precio viaja como número")
	assert.Equal(t, true, item["is_available"])
	assert.Equal(t, []any{}, item["ingredients"])
	assert.Equal(t, "Drinks", item["category"].(map[string]any)["name"])

	resp, raw = doRequest(t, app, http.MethodPost, "/orders", `{"table_number":5,"items":[{"menu_item_id":1,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	order := decode[map[string]any](t, raw)
	assert.Equal(t, "pending", order["status"])
	assert.NotEmpty(t, order["created_at"])
	lines := order["items"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.EqualValues(t, 2, line["quantity"])
	assert.Equal(t, "Cola", line["menu_item"].(map[string]any)["name"])

	resp, raw = doRequest(t, app, http.MethodGet, "/orders?status=pending", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, raw), 1)

	resp, raw = doRequest(t, app, http.MethodGet, "/orders/1/receipt", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "order-1.pdf")
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestDeleteMissing_Returns404(t *testing.T) {
	app := buildTestApp(t)
	for _, path := range []string{"/categories/9", "/ingredients/9", "/menu-items/9", "/orders/9"} {
		resp, raw := doRequest(t, app, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, "NOT_FOUND", decode[errorBody](t, raw).Code, path)
	}
}

func TestDelete_NoContent(t *testing.T) {
	app := buildTestApp(t)
	resp, _ := doRequest(t, app, http.MethodPost, "/ingredients", `{"name":"Salt"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := doRequest(t, app, http.MethodDelete, "/ingredients/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, raw)

	resp, _ = doRequest(t, app, http.MethodGet, "/ingredients/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMenuItem_UnknownCategoryIs400(t *testing.T) {
	app := buildTestApp(t)
	resp, raw := doRequest(t, app, http.MethodPost, "/menu-items", `{"name":"Cola","price":2.5,"category_id":7}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errorBody](t, raw)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Category not found", body.Message)

	resp, raw = doRequest(t, app, http.MethodGet, "/menu-items", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestMenuItem_RepeatedIngredientIDsIs400(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/categories", `{"name":"Drinks"}`)
	doRequest(t, app, http.MethodPost, "/ingredients", `{"name":"Ice"}`)

	resp, raw := doRequest(t, app, http.MethodPost, "/menu-items",
		`{"name":"Cola","price":3.5,"category_id":1,"ingredient_ids":[1,1]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errorBody](t, raw)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "One or more ingredients not found", body.Message)

	resp, raw = doRequest(t, app, http.MethodGet, "/menu-items", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestMenuItem_PartialUpdateOverHTTP(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/categories", `{"name":"Mains"}`)
	resp, raw := doRequest(t, app, http.MethodPost, "/menu-items",
		`{"name":"Pizza","description":"Hot","price":10,"category_id":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	resp, raw = doRequest(t, app, http.MethodPut, "/menu-items/1", `{"price":9.99}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	item := decode[map[string]any](t, raw)
	assert.EqualValues(t, 9.99, item["price"])
	assert.Equal(t, "Pizza", item["name"])
	assert.Equal(t, "Hot", item["description"])

	resp, raw = doRequest(t, app, http.MethodPut, "/menu-items/1", `{"description":null}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Nil(t, decode[map[string]any](t, raw)["description"])

	resp, raw = doRequest(t, app, http.MethodPut, "/menu-items/1", `{"price":null}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))
}

func TestMenuItem_ListQueryValidation(t *testing.T) {
	app := buildTestApp(t)
	resp, _ := doRequest(t, app, http.MethodGet, "/menu-items?category_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doRequest(t, app, http.MethodGet, "/menu-items?available_only=maybe", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doRequest(t, app, http.MethodGet, "/menu-items?available_only=true&category_id=1&skip=0&limit=5", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOrder_UnavailableItemIs400(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/categories", `{"name":"Drinks"}`)
	doRequest(t, app, http.MethodPost, "/menu-items", `{"name":"Juice","price":3,"category_id":1,"is_available":false}`)

	resp, raw := doRequest(t, app, http.MethodPost, "/orders", `{"items":[{"menu_item_id":1}]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Menu item 'Juice' is not available", decode[errorBody](t, raw).Message)

	resp, raw = doRequest(t, app, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestOrder_InvalidStatusFilter(t *testing.T) {
	app := buildTestApp(t)
	resp, raw := doRequest(t, app, http.MethodGet, "/orders?status=lost", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[errorBody](t, raw).Code)
}

func TestCategory_DuplicateAndConflict(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/categories", `{"name":"Drinks"}`)

	resp, raw := doRequest(t, app, http.MethodPost, "/categories", `{"name":"Drinks"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[errorBody](t, raw).Code)

	doRequest(t, app, http.MethodPost, "/menu-items", `{"name":"Cola","price":2.5,"category_id":1}`)
	resp, raw = doRequest(t, app, http.MethodDelete, "/categories/1", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode[errorBody](t, raw).Code)
}

func TestBadInput(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/categories/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode[errorBody](t, raw).Code)

	resp, raw = doRequest(t, app, http.MethodPost, "/categories", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[errorBody](t, raw).Code)

	resp, raw = doRequest(t, app, http.MethodPost, "/categories", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[errorBody](t, raw).Code)

	resp, _ = doRequest(t, app, http.MethodGet, "/categories?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWelcomeAndRequestID(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, raw)
	assert.Equal(t, "/docs", body["docs"])
	assert.Equal(t, "/menu-items", body["endpoints"].(map[string]any)["menu_items"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "abc-123", resp2.Header.Get("X-Request-ID"))
}
