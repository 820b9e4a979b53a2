package handler

import (
	"go-inventory-rfid/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in service.CategoryInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	category, err := h.service.Create(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err, "Category")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"CategoryID": category.CategoryID})
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Category")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "category")
	if err != nil {
		return err
	}
	category, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Category")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "category")
	if err != nil {
		return err
	}
	var in service.CategoryInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.service.Update(c.UserContext(), id, &in); err != nil {
		return respondError(c, err, "Category")
	}
	return c.JSON(fiber.Map{"message": "Category updated"})
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "category")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Category")
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(s service.LocationService) *LocationHandler {
	return &LocationHandler{service: s}
}

// POST /api/locations
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in service.LocationInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	location, err := h.service.Create(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err, "Location")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"LocationID": location.LocationID})
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Location")
	}
	return c.JSON(locations)
}

func (h *LocationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "location")
	if err != nil {
		return err
	}
	location, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Location")
	}
	return c.JSON(location)
}

func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "location")
	if err != nil {
		return err
	}
	var in service.LocationInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.service.Update(c.UserContext(), id, &in); err != nil {
		return respondError(c, err, "Location")
	}
	return c.JSON(fiber.Map{"message": "Location updated"})
}

func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "location")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Location")
	}
	return c.JSON(fiber.Map{"message": "Location deleted"})
}

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

// POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in service.SupplierInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	supplier, err := h.service.Create(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err, "Supplier")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"SupplierID": supplier.SupplierID})
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Supplier")
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "supplier")
	if err != nil {
		return err
	}
	supplier, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Supplier")
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "supplier")
	if err != nil {
		return err
	}
	var in service.SupplierInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.service.Update(c.UserContext(), id, &in); err != nil {
		return respondError(c, err, "Supplier")
	}
	return c.JSON(fiber.Map{"message": "Supplier updated"})
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "supplier")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Supplier")
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}
