package entity

import (
	"gorm.io/gorm"
)

type Transaction struct {
	gorm.Model
	SubtotalAmount float64 `json:"subtotalAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	TotalAmount    float64 `json:"totalAmount"`

	PaymentMethod string `json:"paymentMethod"` // cash | card | digital
	CustomerName  string `json:"customerName"`

	// preload แค่ตอน detail
	Items []TransactionItem `json:"-"`
}
