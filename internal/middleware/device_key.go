package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const HeaderDeviceKey = "X-Device-Key"

// RequireDeviceKey guards reader endpoints with a shared key. An empty key disables the check.
func RequireDeviceKey(key string) fiber.Handler {
	expected := []byte(key)
	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Next()
		}

		got := []byte(c.Get(HeaderDeviceKey))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			logrus.WithField("ip", c.IP()).Warn("RFID intake rejected: bad device key")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid device key"})
		}
		return c.Next()
	}
}
