// repository/sales_repository.go
package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/entity"
)

type SalesRepository struct {
	DB *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{DB: db}
}

// DailySales = ยอดขายรวมของวัน (คำนวณจาก transactions ตรง ๆ)
type DailySales struct {
	TotalSales        float64 `json:"total_sales"`
	TotalTransactions int64   `json:"total_transactions"`
	SaleDate          string  `json:"sale_date"`
}

func (r *SalesRepository) Today() (*DailySales, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var out DailySales
	err := r.DB.Model(&entity.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(id) AS total_transactions").
		Where("created_at >= ?", start).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	out.SaleDate = now.Format("2006-01-02")
	return &out, nil
}
