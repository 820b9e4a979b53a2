package model

import "time"

type TransactionType string

const (
	TxIn  TransactionType = "IN"
	TxOut TransactionType = "OUT"
)

// Transaction records a stock movement for one product.
type Transaction struct {
	TransactionID   uint            `gorm:"primaryKey" json:"TransactionID"`
	ProductID       uint            `gorm:"not null;index" json:"ProductID"`
	Quantity        int             `gorm:"not null" json:"Quantity"`
	TransactionDate time.Time       `gorm:"not null" json:"TransactionDate"`
	TransactionType TransactionType `gorm:"type:varchar(3);not null;default:IN" json:"TransactionType"`
	UserID          *uint           `gorm:"index" json:"UserID"`
	LocationID      *uint           `gorm:"index" json:"LocationID"`
	Timestamps

	Product  *Product  `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
	User     *User     `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID" json:"-"`
}
