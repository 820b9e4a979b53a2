package model

type Product struct {
	ProductID     uint   `gorm:"primaryKey" json:"ProductID"`
	ProductName   string `gorm:"type:varchar(255);not null" json:"ProductName"`
	Description   string `gorm:"type:text" json:"Description"`
	CategoryID    *uint  `gorm:"index" json:"CategoryID"`
	Price         int64  `gorm:"not null" json:"Price"`
	StockQuantity int    `gorm:"not null" json:"StockQuantity"`
	LocationID    *uint  `gorm:"index" json:"LocationID"`
	RfidTagID     string `gorm:"type:varchar(255);index" json:"RfidTagID"`
	Timestamps

	// Relasi
	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID" json:"-"`
}

// ProductColumns are overwritten on every update.
var ProductColumns = []string{
	"product_name", "description", "category_id", "price", "stock_quantity", "location_id", "rfid_tag_id",
}
