package app

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"sumstats.dev/explorer/internal/app/appcontext"
	"sumstats.dev/explorer/internal/pkg/testentry"
	"sumstats.dev/explorer/internal/service"
)

func TestAppGraph(t *testing.T) {
	t.Setenv("SUMSTATS_DATA_PATH", testentry.FixturePath())
	t.Setenv("SUMSTATS_LOG_FILE", "")
	t.Setenv("SUMSTATS_LOG_JSON_STDOUT", "true")

	var (
		serviceApp *fiber.App
		explorer   *service.Explorer
	)
	app := fxtest.New(t, Options(appcontext.Declare(appcontext.EnvCLI), fx.Populate(&serviceApp, &explorer))...)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, explorer)
	assert.Equal(t, "n_non_ref", explorer.Metrics().Default)

	resp, err := serviceApp.Test(httptest.NewRequest(fiber.MethodGet, "/api/_/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = serviceApp.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/view", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
