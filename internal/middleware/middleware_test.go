package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeUsers map[uint]*model.User

func (f fakeUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTokens(c *clock) *jwt.Manager {
	return jwt.NewManager(jwt.Config{Secret: "test-secret", TTL: time.Hour, Issuer: "test"}, jwt.WithClock(c.Now))
}

func newApp(tokens *jwt.Manager, users UserFinder, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{RequireAuth(tokens, users)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals(LocalUserID),
			"role": c.Locals(LocalUserRole),
		})
	})
	app.Get("/private", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRequireAuth(t *testing.T) {
	c := &clock{now: time.Now()}
	tokens := newTokens(c)
	users := fakeUsers{7: {UserID: 7, Username: "alice", Role: model.RoleUser}}
	app := newApp(tokens, users)

	token, _, err := tokens.Generate(7, "alice", "user")
	require.NoError(t, err)

	status, body := get(t, app, "/private", token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":7,"role":"user"}`, body)

	status, body = get(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "Missing authorization token")

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Token "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	status, _ = get(t, app, "/private", "not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	c.now = c.now.Add(2 * time.Hour)
	status, body = get(t, app, "/private", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "expired")
}

func TestRequireAuth_UserRemoved(t *testing.T) {
	tokens := newTokens(&clock{now: time.Now()})
	app := newApp(tokens, fakeUsers{})

	token, _, err := tokens.Generate(9, "ghost", "admin")
	require.NoError(t, err)

	status, _ := get(t, app, "/private", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRequireRole(t *testing.T) {
	tokens := newTokens(&clock{now: time.Now()})
	users := fakeUsers{
		1: {UserID: 1, Username: "root", Role: model.RoleAdmin},
		2: {UserID: 2, Username: "visitor", Role: model.RoleGuest},
	}
	app := newApp(tokens, users, RequireRole(model.RoleAdmin, model.RoleUser))

	adminToken, _, err := tokens.Generate(1, "root", "admin")
	require.NoError(t, err)
	guestToken, _, err := tokens.Generate(2, "visitor", "guest")
	require.NoError(t, err)

	status, _ := get(t, app, "/private", adminToken)
	assert.Equal(t, fiber.StatusOK, status)

	status, body := get(t, app, "/private", guestToken)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "admin, user")
}

func TestRequireRole_UsesStoredRole(t *testing.T) {
	tokens := newTokens(&clock{now: time.Now()})
	users := fakeUsers{3: {UserID: 3, Username: "demoted", Role: model.RoleGuest}}
	app := newApp(tokens, users, RequireRole(model.RoleAdmin))

	token, _, err := tokens.Generate(3, "demoted", "admin")
	require.NoError(t, err)

	status, _ := get(t, app, "/private", token)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestOptionalAuth(t *testing.T) {
	tokens := newTokens(&clock{now: time.Now()})
	users := fakeUsers{1: {UserID: 1, Username: "root", Role: model.RoleAdmin}}

	app := fiber.New()
	app.Get("/maybe", OptionalAuth(tokens, users), func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		return c.SendString("role=" + role)
	})

	status, body := get(t, app, "/maybe", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "role=", body)

	token, _, err := tokens.Generate(1, "root", "admin")
	require.NoError(t, err)
	status, body = get(t, app, "/maybe", token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "role=admin", body)

	status, _ = get(t, app, "/maybe", "garbage")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRequireDeviceKey(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app := fiber.New()
	app.Post("/open", RequireDeviceKey(""), ok)
	app.Post("/locked", RequireDeviceKey("reader-1"), ok)

	send := func(path, key string) int {
		req := httptest.NewRequest("POST", path, nil)
		if key != "" {
			req.Header.Set(HeaderDeviceKey, key)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send("/open", ""))
	assert.Equal(t, fiber.StatusUnauthorized, send("/locked", ""))
	assert.Equal(t, fiber.StatusUnauthorized, send("/locked", "reader-2"))
	assert.Equal(t, fiber.StatusOK, send("/locked", "reader-1"))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(PerMinute(1), 2)
	defer rl.Stop()

	app := fiber.New()
	app.Post("/login", rl.Middleware(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
}

func TestRateLimiter_SweepDropsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(rate.Inf, 1)
	defer rl.Stop()
	rl.Stop()

	rl.getVisitor("10.0.0.1")
	rl.getVisitor("10.0.0.2")

	rl.sweep(time.Now().Add(time.Minute))
	assert.Len(t, rl.visitors, 2)

	rl.sweep(time.Now().Add(10 * time.Minute))
	assert.Empty(t, rl.visitors)
}

func TestPerMinute(t *testing.T) {
	assert.Equal(t, rate.Inf, PerMinute(0))
	assert.InDelta(t, 10.0/60.0, float64(PerMinute(10)), 1e-9)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}
