package repository

import (
	"context"

	"go-inventory-rfid/internal/model"

	"gorm.io/gorm"
)

type RfidRepository interface {
	Create(ctx context.Context, scan *model.RfidScan) error
	FindAll(ctx context.Context) ([]model.RfidScan, error)
	DeleteByUID(ctx context.Context, uid string) (int64, error)
	WithTx(tx *gorm.DB) RfidRepository
}

type rfidRepo struct {
	db *gorm.DB
}

func NewRfidRepo(db *gorm.DB) RfidRepository {
	return &rfidRepo{db}
}

func (r *rfidRepo) WithTx(tx *gorm.DB) RfidRepository {
	return &rfidRepo{tx}
}

func (r *rfidRepo) Create(ctx context.Context, scan *model.RfidScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *rfidRepo) FindAll(ctx context.Context) ([]model.RfidScan, error) {
	scans := []model.RfidScan{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&scans).Error
	return scans, err
}

// DeleteByUID soft-deletes every pending scan carrying uid and reports how many were removed.
func (r *rfidRepo) DeleteByUID(ctx context.Context, uid string) (int64, error) {
	res := r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.RfidScan{})
	return res.RowsAffected, res.Error
}
