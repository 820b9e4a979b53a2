package middleware

import (
	"context"
	"errors"
	"strings"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalUserRole = "user_role"
)

// UserFinder loads the account a token was issued to.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

var errBadAuthHeader = errors.New("invalid authorization format")

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", jwt.ErrMissingToken
	}

	// Extract token from "Bearer <token>"
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errBadAuthHeader
	}
	return parts[1], nil
}

// authenticate validates the bearer token and stores the caller in c.Locals.
func authenticate(c *fiber.Ctx, tokens *jwt.Manager, users UserFinder) error {
	tokenString, err := bearerToken(c)
	if err != nil {
		return err
	}

	claims, err := tokens.Validate(tokenString)
	if err != nil {
		return err
	}

	// The account may have been removed since the token was issued.
	user, err := users.FindByID(c.UserContext(), claims.UserID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", claims.UserID).Debug("Token user lookup failed")
		return jwt.ErrInvalidToken
	}

	c.Locals(LocalUserID, user.UserID)
	c.Locals(LocalUserName, user.Username)
	c.Locals(LocalUserRole, string(user.Role))
	return nil
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens *jwt.Manager, users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c, tokens, users); err != nil {
			switch {
			case errors.Is(err, jwt.ErrMissingToken):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization token"})
			case errors.Is(err, errBadAuthHeader):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
			case errors.Is(err, jwt.ErrExpiredToken):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has expired"})
			default:
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
			}
		}
		return c.Next()
	}
}

// OptionalAuth identifies the caller when a token is present but lets anonymous requests through.
// A token that is present but invalid is still rejected.
func OptionalAuth(tokens *jwt.Manager, users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := authenticate(c, tokens, users)
		switch {
		case err == nil, errors.Is(err, jwt.ErrMissingToken):
			return c.Next()
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}
	}
}

// RequireRole allows the request only when the authenticated caller holds one of roles.
// It must run after RequireAuth.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalUserRole).(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No role found"})
		}

		for _, r := range roles {
			if string(r) == role {
				return c.Next()
			}
		}

		names := make([]string, len(roles))
		for i, r := range roles {
			names[i] = string(r)
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(names, ", ") + " roles",
		})
	}
}
