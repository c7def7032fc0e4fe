package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Horas-api/internal/application/auth"
	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/bootstrap"
	apphttp "github.com/jhoicas/Horas-api/internal/interfaces/http"
	"github.com/jhoicas/Horas-api/pkg/config"
	"github.com/jhoicas/Horas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "clave-del-operador"
)

// buildTestApp arma la API completa sobre SQLite en un directorio temporal.
func buildTestApp(t *testing.T, authEnabled bool) *fiber.App {
	t.Helper()
	ctx := context.Background()
	store, err := bootstrap.OpenSQLite(ctx, filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	_, err = store.Migrate(ctx)
	require.NoError(t, err)

	seq, _, err := bootstrap.NumberSequence(ctx, config.RedisConfig{}, store, logger.Nop())
	require.NoError(t, err)
	svc := bootstrap.NewServices(store, seq, "")

	hash := ""
	if authEnabled {
		hash, err = auth.HashPassword(testPassword)
		require.NoError(t, err)
	}

	app := apphttp.NewApp("horas-test", logger.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:     svc.Company,
		ClientUC:      svc.Clients,
		JobUC:         svc.Jobs,
		TimeEntryUC:   svc.TimeEntries,
		DashboardUC:   svc.Dashboard,
		CreateInvoice: svc.CreateInvoice,
		InvoiceUC:     svc.Invoices,
		RenderUC:      svc.Render,
		AuthUC:        auth.NewAuthUseCase(hash, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "horas-test"}),
		AuthEnabled:   authEnabled,
		JWTSecret:     testJWTSecret,
	})
	return app
}

type apiResponse struct {
	status      int
	contentType string
	body        []byte
}

func (r apiResponse) json(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.body, &out), string(r.body))
	return out
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) apiResponse {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{status: resp.StatusCode, contentType: resp.Header.Get("Content-Type"), body: raw}
}

// dec lee un decimal de la respuesta JSON (número o string).
func dec(v any) decimal.Decimal {
	return decimal.RequireFromString(fmt.Sprint(v))
}

// seed crea empresa, cliente, trabajo y tres registros de horas de enero 2024.
func seed(t *testing.T, app *fiber.App, token string) (clientID, jobID string) {
	t.Helper()
	r := doJSON(t, app, http.MethodPut, "/api/company", token, map[string]any{"name": "Taller Horas", "taxId": "900-1"})
	require.Equal(t, http.StatusOK, r.status, string(r.body))

	r = doJSON(t, app, http.MethodPost, "/api/clients", token, map[string]any{"name": "Acme", "hourlyRate": 50})
	require.Equal(t, http.StatusCreated, r.status, string(r.body))
	clientID = r.json(t)["id"].(string)

	r = doJSON(t, app, http.MethodPost, "/api/jobs", token, map[string]any{"clientId": clientID, "name": "Sitio web", "jobNumber": "PO-77"})
	require.Equal(t, http.StatusCreated, r.status, string(r.body))
	jobID = r.json(t)["id"].(string)

	for _, e := range []struct{ hours, date string }{{"2", "2024-01-01"}, {"1.5", "2024-01-02"}, {"4", "2024-02-10"}} {
		r = doJSON(t, app, http.MethodPost, "/api/time-entries", token, map[string]any{
			"clientId": clientID, "jobId": jobID, "hours": e.hours, "date": e.date, "description": "trabajo " + e.date,
		})
		require.Equal(t, http.StatusCreated, r.status, string(r.body))
	}
	return clientID, jobID
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DashboardYFactura(t *testing.T) {
	app := buildTestApp(t, false)
	clientID, jobID := seed(t, app, "")

	r := doJSON(t, app, http.MethodGet, "/api/dashboard/stats?startDate=2024-01-01&endDate=2024-01-31", "", nil)
	require.Equal(t, http.StatusOK, r.status, string(r.body))
	stats := r.json(t)
	assert.True(t, dec(stats["totalHours"]).Equal(decimal.RequireFromString("3.5")))
	assert.True(t, dec(stats["totalEarnings"]).Equal(decimal.NewFromInt(175)))
	assert.EqualValues(t, 2, stats["entryCount"])
	byClient := stats["byClient"].([]any)
	require.Len(t, byClient, 1)
	assert.Equal(t, "Acme", byClient[0].(map[string]any)["clientName"])

	r = doJSON(t, app, http.MethodPost, "/api/invoices", "", map[string]any{
		"clientId": clientID, "jobId": jobID, "startDate": "2024-01-01", "endDate": "2024-01-31",
	})
	require.Equal(t, http.StatusCreated, r.status, string(r.body))
	inv := r.json(t)
	invoiceID := inv["id"].(string)
	assert.Regexp(t, `^INV-\d{4}-0001$`, inv["invoiceNumber"])
	assert.Equal(t, "unpaid", inv["status"])
	assert.Nil(t, inv["paidAt"])
	assert.Len(t, inv["lineItems"], 2)
	assert.True(t, dec(inv["totalAmount"]).Equal(decimal.NewFromInt(175)))

	r = doJSON(t, app, http.MethodPatch, "/api/invoices/"+invoiceID+"/status", "", map[string]any{"status": "paid"})
	require.Equal(t, http.StatusOK, r.status, string(r.body))
	assert.NotNil(t, r.json(t)["paidAt"])

	r = doJSON(t, app, http.MethodGet, "/api/invoices?status=paid", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.EqualValues(t, 1, r.json(t)["total"])

	r = doJSON(t, app, http.MethodGet, "/api/invoices/"+invoiceID+"/html", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Contains(t, r.contentType, "text/html")
	assert.Contains(t, string(r.body), inv["invoiceNumber"].(string))
	assert.Contains(t, string(r.body), "175.00")
	assert.Contains(t, string(r.body), "PAID")

	r = doJSON(t, app, http.MethodGet, "/api/invoices/"+invoiceID+"/pdf?download=1", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, "application/pdf", r.contentType)
	assert.True(t, bytes.HasPrefix(r.body, []byte("%PDF")))

	r = doJSON(t, app, http.MethodGet, "/api/invoices/"+invoiceID+"/xml", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Contains(t, string(r.body), "<cbc:PayableAmount>0.00</cbc:PayableAmount>")
}

func TestAPI_BorradoEnCascadaDeCliente(t *testing.T) {
	app := buildTestApp(t, false)
	clientID, jobID := seed(t, app, "")

	r := doJSON(t, app, http.MethodDelete, "/api/clients/"+clientID, "", nil)
	require.Equal(t, http.StatusOK, r.status, string(r.body))
	body := r.json(t)
	assert.EqualValues(t, 1, body["deletedJobs"])
	assert.EqualValues(t, 3, body["deletedTimeEntries"])

	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/api/jobs/"+jobID, "", nil).status)
	r = doJSON(t, app, http.MethodGet, "/api/time-entries", "", nil)
	assert.EqualValues(t, 0, r.json(t)["total"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_MapeoDeErrores(t *testing.T) {
	app := buildTestApp(t, false)
	clientID, jobID := seed(t, app, "")

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"cliente sin nombre", http.MethodPost, "/api/clients", map[string]any{"hourlyRate": 10}, 400, "VALIDATION"},
		{"tarifa negativa", http.MethodPost, "/api/clients", map[string]any{"name": "X", "hourlyRate": -1}, 400, "VALIDATION"},
		{"json inválido", http.MethodPost, "/api/clients", "{no-json", 400, "INVALID_BODY"},
		{"cliente inexistente", http.MethodGet, "/api/clients/nope", nil, 404, "NOT_FOUND"},
		{"horas para cliente inexistente", http.MethodPost, "/api/time-entries", map[string]any{"clientId": "nope", "jobId": jobID, "hours": 1, "date": "2024-01-01"}, 404, "NOT_FOUND"},
		{"fecha inválida en stats", http.MethodGet, "/api/dashboard/stats?startDate=01-01-2024", nil, 400, "VALIDATION"},
		{"factura sin horas en el rango", http.MethodPost, "/api/invoices", map[string]any{"clientId": clientID, "jobId": jobID, "startDate": "2023-01-01", "endDate": "2023-01-31"}, 400, "VALIDATION"},
		{"factura sin trabajo", http.MethodPost, "/api/invoices", map[string]any{"clientId": clientID, "startDate": "2024-01-01", "endDate": "2024-01-31"}, 400, "VALIDATION"},
		{"estado desconocido", http.MethodGet, "/api/invoices?status=void", nil, 400, "VALIDATION"},
		{"factura inexistente", http.MethodGet, "/api/invoices/nope/html", nil, 404, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := doJSON(t, app, tc.method, tc.path, "", tc.body)
			assert.Equal(t, tc.status, r.status, string(r.body))
			body := r.json(t)
			assert.Equal(t, tc.code, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAPI_FormatoDesconocido(t *testing.T) {
	app := buildTestApp(t, false)
	clientID, jobID := seed(t, app, "")
	r := doJSON(t, app, http.MethodPost, "/api/invoices", "", map[string]any{
		"clientId": clientID, "jobId": jobID, "startDate": "2024-01-01", "endDate": "2024-12-31",
	})
	require.Equal(t, http.StatusCreated, r.status)

	r = doJSON(t, app, http.MethodGet, "/api/invoices/"+r.json(t)["id"].(string)+"/docx", "", nil)
	assert.Equal(t, http.StatusBadRequest, r.status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Autenticacion(t *testing.T) {
	app := buildTestApp(t, true)

	r := doJSON(t, app, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, r.status)
	assert.Equal(t, "MISSING_TOKEN", r.json(t)["code"])

	r = doJSON(t, app, http.MethodGet, "/api/clients", "token.invalido.aqui", nil)
	assert.Equal(t, http.StatusUnauthorized, r.status)
	assert.Equal(t, "INVALID_TOKEN", r.json(t)["code"])

	r = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{"password": "equivocada"})
	assert.Equal(t, http.StatusUnauthorized, r.status)

	r = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{"password": testPassword})
	require.Equal(t, http.StatusOK, r.status, string(r.body))
	token := r.json(t)["token"].(string)

	r = doJSON(t, app, http.MethodGet, "/api/clients", token, nil)
	assert.Equal(t, http.StatusOK, r.status)
	assert.EqualValues(t, 0, r.json(t)["total"])
}

func TestAuthMiddleware_GuardaSubject(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": apphttp.GetSubject(c)})
	})

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(hash, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5})
	login, err := uc.Login(dto.LoginRequest{Password: testPassword})
	require.NoError(t, err)

	r := doJSON(t, app, http.MethodGet, "/me", login.Token, nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, "operator", r.json(t)["subject"])

	r = doJSON(t, app, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, r.status)
}
