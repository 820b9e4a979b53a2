package repository

import (
	"context"

	"go-inventory-rfid/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, product *model.Product) error
	Delete(ctx context.Context, id uint) error
	FindForUpdate(ctx context.Context, id uint) (*model.Product, error)
	UpdateStock(ctx context.Context, id uint, newStock int) error
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	CountByLocation(ctx context.Context, locationID uint) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

type productRepo struct {
	crudRepo[model.Product]
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{newCrudRepo[model.Product](db, "product_id", model.ProductColumns)}
}

// WithTx binds the repository to a running transaction.
func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository {
	return NewProductRepo(tx)
}

// FindForUpdate locks the product row until the surrounding transaction ends.
func (r *productRepo) FindForUpdate(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "product_id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepo) UpdateStock(ctx context.Context, id uint, newStock int) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", id).
		Update("stock_quantity", newStock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByCategory counts live products filed under the category.
func (r *productRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Count(&n).Error
	return n, err
}

func (r *productRepo) CountByLocation(ctx context.Context, locationID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("location_id = ?", locationID).
		Count(&n).Error
	return n, err
}
