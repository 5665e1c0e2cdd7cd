package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiallo/papistock-api/internal/domain/entity"
	apphttp "github.com/tdiallo/papistock-api/internal/interfaces/http"
	pkgjwt "github.com/tdiallo/papistock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "secret-de-test-pour-tests-unitaires"
	testUserID    = uint(7)
	testIssuer    = "papistock-test"
	testExpMin    = 60
)

// buildTestApp construit une application Fiber minimale :
//   - AuthMiddleware pour parser le JWT et poser les locals ;
//   - RequireAdmin en option ;
//   - un handler factice qui renvoie 200 si les middlewares passent.
func buildTestApp(adminOnly bool) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if adminOnly {
		handlers = append(handlers, apphttp.RequireAdmin())
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":      true,
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenForRole génère un JWT portant le rôle indiqué.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "un JWT valide doit se générer")
	return "Bearer " + tok
}

// doRequest lance une requête GET /protected et renvoie la réponse.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraitLesClaims(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testUserID), body["user_id"])
	assert.Equal(t, entity.RoleStaff, body["role"])
}

func TestRequireAdmin_AdminPasse(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un admin doit accéder à une route restreinte admin")
}

func TestRequireAdmin_StaffBloque(t *testing.T) {
	app := buildTestApp(true)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un membre staff ne doit pas accéder à une route admin")
}

func TestAuthMiddleware_SansHeader_Retourne401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalide_Retourne401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "Bearer jeton.invalide.ici")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MauvaisSchema_Retourne401(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "Basic abcdef")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt — intégrité du generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateEtParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestJWT_TokenExpire_RetourneErreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "un jeton expiré doit être rejeté")
}

func TestJWT_MauvaisSecret_RetourneErreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("un-tout-autre-secret", tok)
	assert.Error(t, err, "un mauvais secret doit invalider le jeton")
}
