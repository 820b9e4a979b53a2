package repository

import (
	"context"

	"go-inventory-rfid/internal/model"

	"gorm.io/gorm"
)

// TransactionFilter narrows FindAll; zero values are ignored.
type TransactionFilter struct {
	ProductID uint
	Type      model.TransactionType
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	FindAll(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	CountByLocation(ctx context.Context, locationID uint) (int64, error)
	WithTx(tx *gorm.DB) TransactionRepository
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) WithTx(tx *gorm.DB) TransactionRepository {
	return &transactionRepo{tx}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	return translate(r.db.WithContext(ctx).Create(tx).Error)
}

func (r *transactionRepo) FindAll(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	q := r.db.WithContext(ctx)
	if filter.ProductID != 0 {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Type != "" {
		q = q.Where("transaction_type = ?", filter.Type)
	}
	err := q.Order("transaction_date DESC, transaction_id DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, "transaction_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &transaction, nil
}

func (r *transactionRepo) CountByLocation(ctx context.Context, locationID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("location_id = ?", locationID).
		Count(&n).Error
	return n, err
}
