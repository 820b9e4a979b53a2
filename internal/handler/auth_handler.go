package handler

import (
	"go-inventory-rfid/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account. An admin bearer token is needed to create an admin.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.UserContext(), &req, actorFrom(c))
	if err != nil {
		return respondError(c, err, "User")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registration successfully",
		"UserID":  user.UserID,
	})
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := parseBody(c, &req); err != nil {
		return err
	}

	response, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "User")
	}

	return c.JSON(response)
}
