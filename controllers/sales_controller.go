package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/pkg/resp"
	"github.com/kim-el/basic-pos/repository"
	"github.com/kim-el/basic-pos/services"
)

type SalesController struct {
	Service *services.SalesService
}

func NewSalesController(db *gorm.DB) *SalesController {
	return &SalesController{
		Service: services.NewSalesService(repository.NewSalesRepository(db)),
	}
}

// GET /api/daily-sales: ยอดขายวันนี้
func (ctl *SalesController) Today(c *gin.Context) {
	sales, err := ctl.Service.Today()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sales)
}
