package model

import (
	"time"

	"gorm.io/gorm"
)

// Timestamps are carried by every table. DeletedAt turns Delete into a soft delete
// and hides deleted rows from regular queries.
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// All lists every persisted model, in the order AutoMigrate should see them.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Location{},
		&Supplier{},
		&Product{},
		&Transaction{},
		&RfidScan{},
	}
}
