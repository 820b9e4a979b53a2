package handler

import (
	"go-inventory-rfid/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RfidHandler struct {
	service service.RfidService
}

func NewRfidHandler(s service.RfidService) *RfidHandler {
	return &RfidHandler{service: s}
}

// AddScan records a tag read from a reader.
// POST /api/rfid/add
func (h *RfidHandler) AddScan(c *fiber.Ctx) error {
	var in service.ScanInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	scan, err := h.service.AddScan(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err, "Scan")
	}
	return c.JSON(fiber.Map{"message": "UID added to RFID table", "uid": scan.UID})
}

// GET /api/rfid
func (h *RfidHandler) ListScans(c *fiber.Ctx) error {
	scans, err := h.service.ListScans(c.UserContext())
	if err != nil {
		return respondError(c, err, "Scan")
	}
	return c.JSON(scans)
}
