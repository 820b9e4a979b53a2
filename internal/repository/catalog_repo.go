package repository

import (
	"context"

	"go-inventory-rfid/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, category *model.Category) error
	Delete(ctx context.Context, id uint) error
}

type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	FindAll(ctx context.Context) ([]model.Location, error)
	FindByID(ctx context.Context, id uint) (*model.Location, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, location *model.Location) error
	Delete(ctx context.Context, id uint) error
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	FindAll(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	Update(ctx context.Context, id uint, supplier *model.Supplier) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepo struct {
	crudRepo[model.Category]
}

type locationRepo struct {
	crudRepo[model.Location]
}

type supplierRepo struct {
	crudRepo[model.Supplier]
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{newCrudRepo[model.Category](db, "category_id", model.CategoryColumns)}
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{newCrudRepo[model.Location](db, "location_id", model.LocationColumns)}
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{newCrudRepo[model.Supplier](db, "supplier_id", model.SupplierColumns)}
}
