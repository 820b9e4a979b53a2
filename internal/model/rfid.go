package model

// RfidScan is a tag read waiting to be attached to a product.
type RfidScan struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	UID string `gorm:"column:uid;type:varchar(255);not null;index" json:"uid"`
	Timestamps
}

func (RfidScan) TableName() string {
	return "rfid"
}
