package handler

import (
	"errors"
	"strconv"

	"go-inventory-rfid/internal/middleware"
	"go-inventory-rfid/internal/service"
	"go-inventory-rfid/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors to HTTP responses. resource names the entity in 404 bodies.
func respondError(c *fiber.Ctx, err error, resource string) error {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verr.Fields,
		})
	case errors.Is(err, service.ErrInvalidReference):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid Username or Password"})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": resource + " not found"})
	case errors.Is(err, service.ErrForbiddenRole):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden: " + err.Error()})
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrStockOverflow),
		errors.Is(err, service.ErrInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"request_id": c.Locals(middleware.LocalRequestID),
		"method":     c.Method(),
		"path":       c.Path(),
	}).Error("Request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	return nil
}

// parseID reads the :id route parameter.
func parseID(c *fiber.Ctx, resource string) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+resource+" ID")
	}
	return uint(id), nil
}

// ErrorHandler renders errors returned by handlers and middleware as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	return respondError(c, err, "Resource")
}

// actorFrom returns the caller identified by the auth middleware, or nil for anonymous requests.
func actorFrom(c *fiber.Ctx) *service.Actor {
	userID, ok := c.Locals(middleware.LocalUserID).(uint)
	if !ok {
		return nil
	}
	username, _ := c.Locals(middleware.LocalUserName).(string)
	role, _ := c.Locals(middleware.LocalUserRole).(string)
	return &service.Actor{UserID: userID, Username: username, Role: role}
}
