package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	newApp := func(cfg Config) *fiber.App {
		app := fiber.New()
		app.Use(New(cfg))
		app.All("/*", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
		return app
	}

	tests := []struct {
		name   string
		cfg    Config
		method string
		path   string
		header map[string]string
		want   int
	}{
		{"Disabled", Config{}, "GET", "/catalog/movies", nil, fiber.StatusOK},
		{"Missing Key", Config{ApiKey: "secret"}, "GET", "/catalog/movies", nil, fiber.StatusUnauthorized},
		{"Wrong Key", Config{ApiKey: "secret"}, "GET", "/catalog/movies", map[string]string{"X-API-Key": "nope"}, fiber.StatusUnauthorized},
		{"Header Key", Config{ApiKey: "secret"}, "GET", "/catalog/movies", map[string]string{"X-API-Key": "secret"}, fiber.StatusOK},
		{"Bearer Key", Config{ApiKey: "secret"}, "GET", "/catalog/movies", map[string]string{"Authorization": "Bearer secret"}, fiber.StatusOK},
		{"Preflight", Config{ApiKey: "secret"}, "OPTIONS", "/catalog/movies", nil, fiber.StatusOK},
		{"Skipped Prefix", Config{ApiKey: "secret", Skip: []string{"/items"}}, "GET", "/items/1", nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			resp, err := newApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
