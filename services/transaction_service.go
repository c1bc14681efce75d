// services/transaction_service.go
package services

import (
	"errors"

	"github.com/kim-el/basic-pos/entity"
	"github.com/kim-el/basic-pos/repository"
)

var ErrEmptyCheckout = errors.New("checkout needs at least one item")

type CheckoutItem struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price"`
}

type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items" binding:"required"`
	Subtotal      float64        `json:"subtotal"`
	Tax           float64        `json:"tax"`
	Total         float64        `json:"total"`
	PaymentMethod string         `json:"paymentMethod" binding:"required"`
	CustomerName  string         `json:"customerName"`
}

type TransactionService struct {
	Repo *repository.TransactionRepository
}

func NewTransactionService(repo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{Repo: repo}
}

// Checkout แปลงคำขอจากแคชเชียร์เป็นบิล + รายการ แล้วบันทึกพร้อมตัดสต็อก
func (s *TransactionService) Checkout(req *CheckoutRequest) (*entity.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCheckout
	}

	txn := entity.Transaction{
		SubtotalAmount: req.Subtotal,
		TaxAmount:      req.Tax,
		TotalAmount:    req.Total,
		PaymentMethod:  req.PaymentMethod,
		CustomerName:   req.CustomerName,
	}
	for _, it := range req.Items {
		txn.Items = append(txn.Items, entity.TransactionItem{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.Price,
			TotalPrice: it.Price * float64(it.Quantity),
		})
	}

	if err := s.Repo.Create(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *TransactionService) ListRecent() ([]repository.TransactionSummary, error) {
	return s.Repo.ListRecent(50)
}
