package middleware_test

import (
	"net/http/httptest"
	"testing"

	"config-diff/core/logger"
	"config-diff/core/middleware/auth"
	"config-diff/core/middleware/requestid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(logger.RequestIDKey).(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(requestid.Header))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestid.Header, "fixed-id")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", resp.Header.Get(requestid.Header))
	})
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		sent   string
		status int
	}{
		{"Disabled", "", "", fiber.StatusOK},
		{"Valid Key", "secret", "secret", fiber.StatusOK},
		{"Wrong Key", "secret", "nope", fiber.StatusUnauthorized},
		{"Missing Key", "secret", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(auth.Config{ApiKey: tt.key}))
			app.Get("/", func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.sent != "" {
				req.Header.Set(auth.Header, tt.sent)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
