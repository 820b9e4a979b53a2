package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/internal/ws"
	"go-inventory-rfid/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TransactionInput struct {
	ProductID       uint       `json:"ProductID" validate:"required,gt=0"`
	Quantity        int        `json:"Quantity" validate:"required,gt=0,max=1000000000"`
	TransactionType string     `json:"TransactionType" validate:"required,oneof=IN OUT"`
	LocationID      *uint      `json:"LocationID" validate:"omitempty,gt=0"`
	TransactionDate *time.Time `json:"TransactionDate"`
}

type TransactionService interface {
	Record(ctx context.Context, in *TransactionInput, actor *Actor) (*model.Transaction, int, error)
	List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, error)
	Get(ctx context.Context, id uint) (*model.Transaction, error)
}

type transactionService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	locationRepo    repository.LocationRepository
	db              *gorm.DB
	events          Publisher
	now             func() time.Time
}

func NewTransactionService(
	pRepo repository.ProductRepository,
	tRepo repository.TransactionRepository,
	lRepo repository.LocationRepository,
	db *gorm.DB,
	events Publisher,
) TransactionService {
	return &transactionService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		locationRepo:    lRepo,
		db:              db,
		events:          publisherOrNoop(events),
		now:             time.Now,
	}
}

// Record applies the movement to the product stock and logs it, atomically.
// It returns the stored transaction and the product's new stock level.
func (s *transactionService) Record(ctx context.Context, in *TransactionInput, actor *Actor) (*model.Transaction, int, error) {
	if err := validator.Validate(in); err != nil {
		return nil, 0, err
	}
	if err := checkReference(ctx, s.locationRepo, "LocationID", in.LocationID); err != nil {
		return nil, 0, err
	}

	record := &model.Transaction{
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		TransactionType: model.TransactionType(in.TransactionType),
		LocationID:      in.LocationID,
		TransactionDate: s.now(),
	}
	if in.TransactionDate != nil {
		record.TransactionDate = *in.TransactionDate
	}
	if actor != nil && actor.UserID != 0 {
		uid := actor.UserID
		record.UserID = &uid
	}

	var product *model.Product
	var newStock int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)

		var err error
		product, err = products.FindForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}

		newStock = product.StockQuantity
		switch record.TransactionType {
		case model.TxIn:
			if product.StockQuantity > math.MaxInt-record.Quantity {
				return ErrStockOverflow
			}
			newStock += record.Quantity
		case model.TxOut:
			if product.StockQuantity < record.Quantity {
				return ErrInsufficientStock
			}
			newStock -= record.Quantity
		}

		if err := products.UpdateStock(ctx, product.ProductID, newStock); err != nil {
			return err
		}
		return s.transactionRepo.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, 0, fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return nil, 0, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": record.TransactionID,
		"product_id":     product.ProductID,
		"type":           record.TransactionType,
		"quantity":       record.Quantity,
		"new_stock":      newStock,
	}).Info("Stock transaction recorded")

	s.events.Publish(ws.EventStockChanged, map[string]interface{}{
		"TransactionID":   record.TransactionID,
		"ProductID":       product.ProductID,
		"ProductName":     product.ProductName,
		"TransactionType": record.TransactionType,
		"Quantity":        record.Quantity,
		"OldStock":        product.StockQuantity,
		"StockQuantity":   newStock,
	})

	return record, newStock, nil
}

func (s *transactionService) List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.FindAll(ctx, filter)
}

func (s *transactionService) Get(ctx context.Context, id uint) (*model.Transaction, error) {
	return s.transactionRepo.FindByID(ctx, id)
}
