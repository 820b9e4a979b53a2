package handler

import (
	"go-inventory-rfid/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// Create inserts a product and consumes any pending scans of its RFID tag.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in service.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	res, err := h.service.Create(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err, "Product")
	}

	message := "Product inserted successfully"
	if res.ScansConsumed > 0 {
		message = "Product inserted successfully and RFID data deleted"
	}
	return c.JSON(fiber.Map{
		"message":   message,
		"ProductID": res.Product.ProductID,
	})
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Product")
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "product")
	if err != nil {
		return err
	}
	product, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Product")
	}
	return c.JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "product")
	if err != nil {
		return err
	}
	var in service.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.service.Update(c.UserContext(), id, &in); err != nil {
		return respondError(c, err, "Product")
	}
	return c.JSON(fiber.Map{"message": "Product updated"})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "product")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Product")
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
