package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"go-inventory-rfid/internal/service"
	"go-inventory-rfid/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &validator.ValidationError{Fields: []*validator.ErrorResponse{{FailedField: "CategoryName", Tag: "required"}}}, 400, "Validation failed"},
		{"reference", fmt.Errorf("%w: CategoryID 9", service.ErrInvalidReference), 400, "referenced record does not exist: CategoryID 9"},
		{"credentials", service.ErrInvalidCredentials, 400, "Invalid Username or Password"},
		{"not found", service.ErrNotFound, 404, "Widget not found"},
		{"forbidden role", service.ErrForbiddenRole, 403, "Forbidden: only an admin can register an admin"},
		{"duplicate", service.ErrUsernameTaken, 409, "username already exists"},
		{"stock", service.ErrInsufficientStock, 409, "insufficient stock remaining"},
		{"overflow", service.ErrStockOverflow, 409, "stock quantity would exceed the maximum"},
		{"in use", fmt.Errorf("%w: 2 products", service.ErrInUse), 409, "record is still referenced: 2 products"},
		{"internal", errors.New("pq: connection refused"), 500, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondError(c, tc.err, "Widget") })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestErrorHandlerAndParseID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := parseID(c, "item")
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": id})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/items/12", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, raw := range []string{"abc", "0", "-3", "99999999999"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/items/"+raw, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, raw)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid item ID", body["error"])
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/nowhere", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
