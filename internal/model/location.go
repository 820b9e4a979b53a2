package model

type Location struct {
	LocationID   uint   `gorm:"primaryKey" json:"LocationID"`
	LocationName string `gorm:"type:varchar(255);not null" json:"LocationName"`
	Timestamps
}

var LocationColumns = []string{"location_name"}
