// repository/transaction_repository.go
package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/entity"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// TransactionSummary = แถวสำหรับหน้า history (รวมจำนวนรายการต่อบิล)
type TransactionSummary struct {
	ID             uint      `json:"id"`
	SubtotalAmount float64   `json:"subtotalAmount"`
	TaxAmount      float64   `json:"taxAmount"`
	TotalAmount    float64   `json:"totalAmount"`
	PaymentMethod  string    `json:"paymentMethod"`
	CustomerName   string    `json:"customerName"`
	CreatedAt      time.Time `json:"createdAt"`
	ItemCount      int       `json:"itemCount"`
}

// บันทึกบิล + รายการ + ตัดสต็อก ใน transaction เดียว
func (r *TransactionRepository) Create(txn *entity.Transaction) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		for _, item := range txn.Items {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// 50 บิลล่าสุด
func (r *TransactionRepository) ListRecent(limit int) ([]TransactionSummary, error) {
	var rows []TransactionSummary
	err := r.DB.Model(&entity.Transaction{}).
		Select("transactions.id, transactions.subtotal_amount, transactions.tax_amount, transactions.total_amount, transactions.payment_method, transactions.customer_name, transactions.created_at, COUNT(transaction_items.id) AS item_count").
		Joins("LEFT JOIN transaction_items ON transaction_items.transaction_id = transactions.id").
		Group("transactions.id").
		Order("transactions.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
