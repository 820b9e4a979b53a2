package service

import (
	"context"
	"fmt"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/pkg/validator"
)

type CategoryInput struct {
	CategoryName string `json:"CategoryName" validate:"required,notblank,max=255"`
}

type LocationInput struct {
	LocationName string `json:"LocationName" validate:"required,notblank,max=255"`
}

type SupplierInput struct {
	SupplierName string `json:"SupplierName" validate:"required,notblank,max=255"`
	ContactInfo  string `json:"ContactInfo" validate:"max=255"`
	Address      string `json:"Address"`
}

type CategoryService interface {
	Create(ctx context.Context, in *CategoryInput) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Update(ctx context.Context, id uint, in *CategoryInput) error
	Delete(ctx context.Context, id uint) error
}

type LocationService interface {
	Create(ctx context.Context, in *LocationInput) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
	Get(ctx context.Context, id uint) (*model.Location, error)
	Update(ctx context.Context, id uint, in *LocationInput) error
	Delete(ctx context.Context, id uint) error
}

type SupplierService interface {
	Create(ctx context.Context, in *SupplierInput) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Get(ctx context.Context, id uint) (*model.Supplier, error)
	Update(ctx context.Context, id uint, in *SupplierInput) error
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

func NewCategoryService(repo repository.CategoryRepository, pRepo repository.ProductRepository) CategoryService {
	return &categoryService{repo: repo, productRepo: pRepo}
}

func (s *categoryService) Create(ctx context.Context, in *CategoryInput) (*model.Category, error) {
	if err := validator.Validate(in); err != nil {
		return nil, err
	}
	category := &model.Category{CategoryName: in.CategoryName}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, id uint, in *CategoryInput) error {
	if err := validator.Validate(in); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, &model.Category{CategoryName: in.CategoryName})
}

// Delete refuses while live products are still filed under the category.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	n, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d products use this category", ErrInUse, n)
	}
	return s.repo.Delete(ctx, id)
}

type locationService struct {
	repo            repository.LocationRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
}

func NewLocationService(
	repo repository.LocationRepository,
	pRepo repository.ProductRepository,
	tRepo repository.TransactionRepository,
) LocationService {
	return &locationService{repo: repo, productRepo: pRepo, transactionRepo: tRepo}
}

func (s *locationService) Create(ctx context.Context, in *LocationInput) (*model.Location, error) {
	if err := validator.Validate(in); err != nil {
		return nil, err
	}
	location := &model.Location{LocationName: in.LocationName}
	if err := s.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) List(ctx context.Context) ([]model.Location, error) {
	return s.repo.FindAll(ctx)
}

func (s *locationService) Get(ctx context.Context, id uint) (*model.Location, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *locationService) Update(ctx context.Context, id uint, in *LocationInput) error {
	if err := validator.Validate(in); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, &model.Location{LocationName: in.LocationName})
}

// Delete refuses while products or recorded transactions point at the location.
func (s *locationService) Delete(ctx context.Context, id uint) error {
	products, err := s.productRepo.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return fmt.Errorf("%w: %d products use this location", ErrInUse, products)
	}
	transactions, err := s.transactionRepo.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	if transactions > 0 {
		return fmt.Errorf("%w: %d transactions use this location", ErrInUse, transactions)
	}
	return s.repo.Delete(ctx, id)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (in *SupplierInput) toModel() *model.Supplier {
	return &model.Supplier{
		SupplierName: in.SupplierName,
		ContactInfo:  in.ContactInfo,
		Address:      in.Address,
	}
}

func (s *supplierService) Create(ctx context.Context, in *SupplierInput) (*model.Supplier, error) {
	if err := validator.Validate(in); err != nil {
		return nil, err
	}
	supplier := in.toModel()
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.FindAll(ctx)
}

func (s *supplierService) Get(ctx context.Context, id uint) (*model.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *supplierService) Update(ctx context.Context, id uint, in *SupplierInput) error {
	if err := validator.Validate(in); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, in.toModel())
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
