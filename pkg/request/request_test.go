//go:build unit

package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-api/pkg/cerror"
)

type testPayload struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=user admin"`
}

type passwordPayload struct {
	Password string `validate:"required,maxbytes=72"`
}

func TestParseBody(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	app.Post("/", func(ctx *fiber.Ctx) error {
		var payload testPayload
		if err := ParseBody(ctx, &payload); err != nil {
			return err
		}
		return ctx.JSON(payload)
	})

	send := func(body string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("happy path", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, send(`{"email":"test@test.com","role":"admin"}`))
	})

	t.Run("when body has unknown field should return error", func(t *testing.T) {
		assert.Equal(t, fiber.StatusBadRequest, send(`{"email":"test@test.com","isAdmin":true}`))
	})

	t.Run("when body is not json should return error", func(t *testing.T) {
		assert.Equal(t, fiber.StatusBadRequest, send(`"email":"test@test.com"`))
	})

	t.Run("when validation fails should return error", func(t *testing.T) {
		assert.Equal(t, fiber.StatusBadRequest, send(`{"email":"invalid-mail.com"}`))
		assert.Equal(t, fiber.StatusBadRequest, send(`{"email":"test@test.com","role":"root"}`))
	})
}

func TestValidate_MaxBytes(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		assert.NoError(t, Validate(&passwordPayload{Password: strings.Repeat("a", 72)}))
	})

	t.Run("when string exceeds the byte limit should return bad request", func(t *testing.T) {
		err := Validate(&passwordPayload{Password: strings.Repeat("a", 73)})

		assert.True(t, cerror.IsKind(err, cerror.KindValidation))
	})

	t.Run("should count bytes rather than runes", func(t *testing.T) {
		// 25 runes, 75 bytes
		err := Validate(&passwordPayload{Password: strings.Repeat("€", 25)})

		assert.True(t, cerror.IsKind(err, cerror.KindValidation))
	})
}
