package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiallo/papistock-api/internal/application/analytics"
	"github.com/tdiallo/papistock-api/internal/application/auth"
	"github.com/tdiallo/papistock-api/internal/application/dto"
	appdocs "github.com/tdiallo/papistock-api/internal/application/documents"
	appstock "github.com/tdiallo/papistock-api/internal/application/stock"
	"github.com/tdiallo/papistock-api/internal/application/transfer"
	"github.com/tdiallo/papistock-api/internal/application/usecase"
	infrapdf "github.com/tdiallo/papistock-api/internal/infrastructure/pdf"
	"github.com/tdiallo/papistock-api/internal/infrastructure/sqlite"
	apphttp "github.com/tdiallo/papistock-api/internal/interfaces/http"
	"github.com/tdiallo/papistock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Application de test complète : base en mémoire + routeur réel
// ──────────────────────────────────────────────────────────────────────────────

type apiFixture struct {
	app    *fiber.App
	userUC *usecase.UserUseCase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sqlite.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	supplierRepo := sqlite.NewSupplierRepository(db)
	locationRepo := sqlite.NewLocationRepository(db)
	typeRepo := sqlite.NewTypeRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	movementRepo := sqlite.NewMovementRepository(db)
	transactionRepo := sqlite.NewTransactionRepository(db)
	txRunner := sqlite.NewTxRunner(db)
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:      usecase.NewUserUseCase(userRepo, movementRepo),
		SupplierUC:  usecase.NewSupplierUseCase(supplierRepo),
		LocationUC:  usecase.NewLocationUseCase(locationRepo),
		TypeUC:      usecase.NewTypeUseCase(typeRepo),
		ItemUC:      usecase.NewItemUseCase(itemRepo, txRunner),
		MovementUC:  appstock.NewMovementUseCase(movementRepo),
		BatchUC:     appstock.NewBatchUseCase(txRunner, transactionRepo, itemRepo),
		ExportUC:    transfer.NewExportUseCase(itemRepo, supplierRepo, locationRepo, typeRepo, movementRepo, log),
		ImportUC:    transfer.NewImportUseCase(itemRepo, supplierRepo, locationRepo, typeRepo, movementRepo, log),
		BackupUC:    transfer.NewBackupUseCase(db.Path(), log),
		SheetUC:     transfer.NewSheetUseCase(itemRepo, movementRepo),
		DashboardUC: analytics.NewDashboardUseCase(itemRepo, supplierRepo, locationRepo, movementRepo),
		PDFUC:       appdocs.NewPDFUseCase(itemRepo, movementRepo, infrapdf.NewMarotoPDFGenerator()),
		JWTSecret:   testJWTSecret,
	})

	return &apiFixture{app: app, userUC: usecase.NewUserUseCase(userRepo, movementRepo)}
}

func mustCreateUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "Aïssata",
		Role:     "admin",
		Email:    "aissata@papistock.fr",
		Password: "motdepasse",
	}
}

// envelope miroir de dto.Envelope pour le décodage des réponses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, envelope) {
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
		req.Header.Set("Authorization", token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	resp.Body.Close()
	return resp, env
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrat d'enveloppe : succès et échecs traversent le même format
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CreationEtLectureArticle_EnveloppeDeSucces(t *testing.T) {
	f := newAPIFixture(t)
	token := tokenForRole(t, "staff")

	resp, env := f.do(t, http.MethodPost, "/api/items", token, map[string]interface{}{
		"name": "Kraft écru 120", "sku": "KR-120-90", "laise": 120, "grammage": "90",
		"initial_quantity": 30,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success, "la création renvoie success:true — erreur: %s", env.Error)

	var created struct {
		ID              uint `json:"id"`
		CurrentQuantity int  `json:"current_quantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 30, created.CurrentQuantity,
		"la quantité initiale semée ressort en solde dérivé")

	resp, env = f.do(t, http.MethodGet, fmt.Sprintf("/api/items/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestAPI_ArticleInconnu_EnveloppeDechec(t *testing.T) {
	f := newAPIFixture(t)
	token := tokenForRole(t, "staff")

	resp, env := f.do(t, http.MethodGet, "/api/items/4242", token, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "introuvable",
		"l'échec est un message dans l'enveloppe, pas une faute")
}

func TestAPI_SKUEnDouble_Conflit(t *testing.T) {
	f := newAPIFixture(t)
	token := tokenForRole(t, "staff")

	body := map[string]interface{}{"name": "Kraft", "sku": "KR-120-90", "laise": 120, "grammage": "90"}
	resp, _ := f.do(t, http.MethodPost, "/api/items", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := f.do(t, http.MethodPost, "/api/items", token, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestAPI_SansJeton_Retourne401(t *testing.T) {
	f := newAPIFixture(t)

	resp, env := f.do(t, http.MethodGet, "/api/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// Connexion
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Login_EmetUnJeton(t *testing.T) {
	f := newAPIFixture(t)

	_, err := f.userUC.Create(mustCreateUser())
	require.NoError(t, err)

	resp, env := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "aissata@papistock.fr", "password": "motdepasse",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success, "erreur: %s", env.Error)

	var out struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.Role)
}

func TestAPI_Login_MauvaisMotDePasse_401(t *testing.T) {
	f := newAPIFixture(t)

	_, err := f.userUC.Create(mustCreateUser())
	require.NoError(t, err)

	resp, env := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "aissata@papistock.fr", "password": "incorrect",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lots via l'API : création atomique et enveloppe
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Reception_LotInvalide_RienNestPersiste(t *testing.T) {
	f := newAPIFixture(t)
	token := tokenForRole(t, "staff")

	_, env := f.do(t, http.MethodPost, "/api/items", token, map[string]interface{}{
		"name": "Kraft", "sku": "KR-120-90", "laise": 120, "grammage": "90",
	})
	require.True(t, env.Success)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env := f.do(t, http.MethodPost, "/api/receptions", token, map[string]interface{}{
		"lines": []map[string]interface{}{
			{"item_id": created.ID, "quantity": 40},
			{"item_id": 999999, "quantity": 5},
		},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)

	resp, env = f.do(t, http.MethodGet, "/api/transactions", token, nil)
	require.True(t, env.Success)
	var batches []interface{}
	require.NoError(t, json.Unmarshal(env.Data, &batches))
	assert.Empty(t, batches, "le lot raté ne doit laisser aucune trace")
}
