package service

import (
	"context"
	"errors"
	"fmt"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/internal/ws"
	"go-inventory-rfid/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProductInput is the full product body accepted by create and update.
type ProductInput struct {
	ProductName   string `json:"ProductName" validate:"required,notblank,max=255"`
	Description   string `json:"Description"`
	CategoryID    *uint  `json:"CategoryID" validate:"omitempty,gt=0"`
	Price         *int64 `json:"Price" validate:"required,min=0"`
	StockQuantity *int   `json:"StockQuantity" validate:"required,min=0"`
	LocationID    *uint  `json:"LocationID" validate:"omitempty,gt=0"`
	RfidTagID     string `json:"RfidTagID" validate:"max=255"`
}

func (in *ProductInput) toModel() *model.Product {
	return &model.Product{
		ProductName:   in.ProductName,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		Price:         *in.Price,
		StockQuantity: *in.StockQuantity,
		LocationID:    in.LocationID,
		RfidTagID:     in.RfidTagID,
	}
}

// CreateProductResult reports the new product and how many pending scans it consumed.
type CreateProductResult struct {
	Product       *model.Product
	ScansConsumed int64
}

type ProductService interface {
	Create(ctx context.Context, in *ProductInput) (*CreateProductResult, error)
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Update(ctx context.Context, id uint, in *ProductInput) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	rfidRepo     repository.RfidRepository
	db           *gorm.DB
	events       Publisher
}

func NewProductService(
	pRepo repository.ProductRepository,
	cRepo repository.CategoryRepository,
	lRepo repository.LocationRepository,
	rRepo repository.RfidRepository,
	db *gorm.DB,
	events Publisher,
) ProductService {
	return &productService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		locationRepo: lRepo,
		rfidRepo:     rRepo,
		db:           db,
		events:       publisherOrNoop(events),
	}
}

func (s *productService) validate(ctx context.Context, in *ProductInput) error {
	if err := validator.Validate(in); err != nil {
		return err
	}
	if err := checkReference(ctx, s.categoryRepo, "CategoryID", in.CategoryID); err != nil {
		return err
	}
	return checkReference(ctx, s.locationRepo, "LocationID", in.LocationID)
}

// Create inserts the product and consumes the pending scans for its tag in one transaction.
func (s *productService) Create(ctx context.Context, in *ProductInput) (*CreateProductResult, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	product := in.toModel()
	var consumed int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.WithTx(tx).Create(ctx, product); err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		if product.RfidTagID == "" {
			return nil
		}
		n, err := s.rfidRepo.WithTx(tx).DeleteByUID(ctx, product.RfidTagID)
		if err != nil {
			return fmt.Errorf("consume rfid scan %q: %w", product.RfidTagID, err)
		}
		consumed = n
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id":     product.ProductID,
		"rfid_tag_id":    product.RfidTagID,
		"scans_consumed": consumed,
	}).Info("Product created")

	s.events.Publish(ws.EventProductCreated, product)
	if consumed > 0 {
		s.events.Publish(ws.EventRfidConsumed, map[string]interface{}{
			"uid":        product.RfidTagID,
			"product_id": product.ProductID,
			"count":      consumed,
		})
	}

	return &CreateProductResult{Product: product, ScansConsumed: consumed}, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, id uint, in *ProductInput) error {
	if err := s.validate(ctx, in); err != nil {
		return err
	}
	product := in.toModel()
	if err := s.productRepo.Update(ctx, id, product); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return err
	}

	product.ProductID = id
	s.events.Publish(ws.EventProductUpdated, product)
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(ws.EventProductDeleted, map[string]uint{"ProductID": id})
	return nil
}
