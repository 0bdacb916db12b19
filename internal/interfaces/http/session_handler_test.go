package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-sang/internal/application/catalog"
	"github.com/tu-usuario/cafe-sang/internal/application/dto"
	"github.com/tu-usuario/cafe-sang/internal/application/i18n"
	"github.com/tu-usuario/cafe-sang/internal/application/rewards"
	"github.com/tu-usuario/cafe-sang/internal/application/session"
	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
	"github.com/tu-usuario/cafe-sang/internal/infrastructure/localstore"
	apphttp "github.com/tu-usuario/cafe-sang/internal/interfaces/http"
	"github.com/tu-usuario/cafe-sang/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubCatalog puerto de catálogo en memoria para no depender de la API remota.
type stubCatalog struct {
	categories []entity.Category
	products   []entity.Product
}

func (s *stubCatalog) Categories(context.Context) ([]entity.Category, error) {
	return s.categories, nil
}

func (s *stubCatalog) Products(_ context.Context, categoryID *int) ([]entity.Product, error) {
	if categoryID == nil {
		return s.products, nil
	}
	var out []entity.Product
	for _, p := range s.products {
		if p.Category.ID == *categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubCatalog) ResolveImageURL(path string) string {
	if path == "" {
		return ""
	}
	return "http://catalogo/" + path
}

// newServerApp monta el router completo sobre un estado temporal.
func newServerApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	log := logger.Nop()

	sessionUC := session.New(store, log, session.Options{
		PresenceChance: func() float64 { return 1.0 }, // nunca en tienda
	})
	t.Cleanup(sessionUC.Close)

	stub := &stubCatalog{
		categories: []entity.Category{{ID: 1, Name: "Cà phê"}},
		products: []entity.Product{
			{ID: 1, Name: "Cà phê sữa đá", Category: entity.Category{ID: 1, Name: "Cà phê"}, Status: entity.ProductStatusActive},
		},
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionUC: sessionUC,
		CatalogUC: catalog.NewUseCase(stub, log),
		RewardsUC: rewards.NewUseCase(sessionUC, log),
		I18n:      i18n.New(store, log),
		JWT:       apphttp.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeSession(t *testing.T, resp *http.Response) dto.SessionResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de flujo de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialValida(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/session/login",
		dto.LoginRequest{Email: "admin@cafe.com", Password: "admin"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeSession(t, resp)
	assert.NotEmpty(t, out.Token, "el login emite un token")
	assert.Equal(t, "admin", out.User.Role)
	assert.Equal(t, "Lê Văn Cường", out.User.Name)
	assert.Equal(t, 500, out.User.Points)
}

func TestLogin_CredencialInvalida(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/session/login",
		dto.LoginRequest{Email: "admin@cafe.com", Password: "mala"}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_CREDENTIALS", out.Code)
}

func TestLogin_CuerpoIncompleto(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/session/login",
		dto.LoginRequest{Email: "admin@cafe.com"}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_ClienteNuevo(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/session/register", dto.RegisterRequest{
		Email:    "nuevo@cafe.com",
		Password: "secreto",
		FullName: "Phạm Thị Dung",
		Phone:    "0900000000",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeSession(t, resp)
	assert.Equal(t, "customer", out.User.Role, "todo registro entra como customer")
	assert.Equal(t, 0, out.User.Points, "un cliente nuevo arranca sin puntos")
	assert.False(t, out.User.IsInStore)
	assert.NotEmpty(t, out.User.ID)
}

func TestLogout_LimpiaLaSesion(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/session/login",
		dto.LoginRequest{Email: "customer@cafe.com", Password: "customer"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/session/logout", nil, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/session/", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "tras el logout no hay usuario actual")

	// Logout repetido sigue siendo 204
	resp2 := doJSON(t, app, http.MethodPost, "/api/session/logout", nil, "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)
}

func TestSwitch_RolDemo(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/session/switch",
		dto.SwitchRequest{Role: "staff"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeSession(t, resp)
	assert.Equal(t, "staff", out.User.Role)
	assert.Equal(t, "Trần Thị Bình", out.User.Name)

	resp = doJSON(t, app, http.MethodPost, "/api/session/switch",
		dto.SwitchRequest{Role: "gerente"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rol desconocido se rechaza")
}

func TestUpdatePoints_RequiereToken(t *testing.T) {
	app := newServerApp(t)

	login := doJSON(t, app, http.MethodPost, "/api/session/login",
		dto.LoginRequest{Email: "customer@cafe.com", Password: "customer"}, "")
	require.Equal(t, http.StatusOK, login.StatusCode)
	sess := decodeSession(t, login)

	// Sin token → 401
	resp := doJSON(t, app, http.MethodPut, "/api/session/points",
		dto.UpdatePointsRequest{Points: 10}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Con token → 200 y la proyección refleja el nuevo saldo
	resp = doJSON(t, app, http.MethodPut, "/api/session/points",
		dto.UpdatePointsRequest{Points: 10}, sess.Token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, 10, user.Points)

	// Negativo → 400
	resp = doJSON(t, app, http.MethodPut, "/api/session/points",
		dto.UpdatePointsRequest{Points: -1}, sess.Token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de canje (RBAC sobre el programa de clientes)
// ──────────────────────────────────────────────────────────────────────────────

func TestRedeem_SoloClientes(t *testing.T) {
	app := newServerApp(t)

	// admin autenticado pero sin acceso al canje
	login := doJSON(t, app, http.MethodPost, "/api/session/login",
		dto.LoginRequest{Email: "admin@cafe.com", Password: "admin"}, "")
	require.Equal(t, http.StatusOK, login.StatusCode)
	adminSess := decodeSession(t, login)

	resp := doJSON(t, app, http.MethodPost, "/api/rewards/1/redeem", nil, adminSess.Token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el canje es solo para customer")

	// customer con 150 puntos canjea la recompensa de 100
	login = doJSON(t, app, http.MethodPost, "/api/session/login",
		dto.LoginRequest{Email: "customer@cafe.com", Password: "customer"}, "")
	require.Equal(t, http.StatusOK, login.StatusCode)
	custSess := decodeSession(t, login)

	resp = doJSON(t, app, http.MethodPost, "/api/rewards/1/redeem", nil, custSess.Token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.RedeemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "1", out.RewardID)
	assert.Equal(t, 50, out.RemainingPoints, "150 - 100")

	// Un segundo canje ya no alcanza
	resp = doJSON(t, app, http.MethodPost, "/api/rewards/1/redeem", nil, custSess.Token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de catálogo e idioma vía router
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_RutasPublicas(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/catalog/categories", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cats []dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cats))
	require.Len(t, cats, 1)
	assert.Equal(t, "Cà phê", cats[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/api/catalog/products?categoryId=1", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Cà phê sữa đá", products[0].Name)
}

func TestI18n_ToggleViaRouter(t *testing.T) {
	app := newServerApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/i18n/toggle", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Language string            `json:"language"`
		Messages map[string]string `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "en", out.Language, "el default vi conmuta a en")
	assert.Equal(t, "Menu", out.Messages["nav.menu"])
}
