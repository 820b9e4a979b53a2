package model

type Category struct {
	CategoryID   uint   `gorm:"primaryKey" json:"CategoryID"`
	CategoryName string `gorm:"type:varchar(255);not null" json:"CategoryName"`
	Timestamps
}

func (Category) TableName() string {
	return "categories"
}

var CategoryColumns = []string{"category_name"}
