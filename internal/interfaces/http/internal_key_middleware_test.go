package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/vendus-gateway/internal/interfaces/http"
)

func buildInternalApp(configuredKey string) *fiber.App {
	app := fiber.New()
	app.Get("/internal", apphttp.InternalKeyMiddleware(configuredKey), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func doInternalRequest(t *testing.T, app *fiber.App, key string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/internal", nil)
	if key != "" {
		req.Header.Set(apphttp.HeaderInternalKey, key)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestInternalKey_ClaveCorrecta(t *testing.T) {
	app := buildInternalApp("clave-secreta")
	resp := doInternalRequest(t, app, "clave-secreta")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInternalKey_ClaveIncorrecta_Retorna401(t *testing.T) {
	app := buildInternalApp("clave-secreta")
	resp := doInternalRequest(t, app, "clave-mala")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInternalKey_SinHeader_Retorna401(t *testing.T) {
	app := buildInternalApp("clave-secreta")
	resp := doInternalRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Sin clave configurada el acceso nunca se abre por omisión.
func TestInternalKey_SinClaveConfigurada_Retorna503(t *testing.T) {
	app := buildInternalApp("")
	resp := doInternalRequest(t, app, "cualquier-cosa")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISCONFIGURED")
}
