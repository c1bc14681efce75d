package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/pkg/resp"
	"github.com/kim-el/basic-pos/repository"
	"github.com/kim-el/basic-pos/services"
)

type TransactionController struct {
	Service *services.TransactionService
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{
		Service: services.NewTransactionService(repository.NewTransactionRepository(db)),
	}
}

// POST /api/transactions: ปิดการขายหนึ่งบิล
func (ctl *TransactionController) Create(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	txn, err := ctl.Service.Checkout(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCheckout) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"transactionId": txn.ID})
}

// GET /api/transactions: 50 บิลล่าสุด
func (ctl *TransactionController) List(c *gin.Context) {
	rows, err := ctl.Service.ListRecent()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}
