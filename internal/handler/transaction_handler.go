package handler

import (
	"strconv"
	"strings"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Record applies a stock movement.
// POST /api/transactions
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	var in service.TransactionInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	tx, stock, err := h.service.Record(c.UserContext(), &in, actorFrom(c))
	if err != nil {
		return respondError(c, err, "Product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Transaction recorded",
		"TransactionID": tx.TransactionID,
		"StockQuantity": stock,
	})
}

// List returns the movement log. Query params: product_id, type (IN|OUT)
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var filter repository.TransactionFilter

	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid product_id")
		}
		filter.ProductID = uint(id)
	}
	if raw := c.Query("type"); raw != "" {
		t := model.TransactionType(strings.ToUpper(raw))
		if t != model.TxIn && t != model.TxOut {
			return fiber.NewError(fiber.StatusBadRequest, "type must be IN or OUT")
		}
		filter.Type = t
	}

	transactions, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "Transaction")
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "transaction")
	if err != nil {
		return err
	}
	tx, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Transaction")
	}
	return c.JSON(tx)
}
