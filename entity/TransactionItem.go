package entity

import (
	"gorm.io/gorm"
)

type TransactionItem struct {
	gorm.Model
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`

	TransactionID uint        `json:"transactionId"`
	Transaction   Transaction `json:"-"` // preload แค่ตอนต้องการ transaction detail

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload เฉพาะตอนต้องการชื่อสินค้า
}
