package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`

	StockQuantity int  `json:"stockQuantity"`
	IsActive      bool `json:"isActive" gorm:"default:true"`

	TransactionItems []TransactionItem `json:"-"` // preload เฉพาะตอนต้องการ
}
