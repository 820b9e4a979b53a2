package model

type Supplier struct {
	SupplierID   uint   `gorm:"primaryKey" json:"SupplierID"`
	SupplierName string `gorm:"type:varchar(255);not null" json:"SupplierName"`
	ContactInfo  string `gorm:"type:varchar(255)" json:"ContactInfo"`
	Address      string `gorm:"type:text" json:"Address"`
	Timestamps
}

var SupplierColumns = []string{"supplier_name", "contact_info", "address"}
