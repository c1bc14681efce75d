package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/entity"
	"github.com/kim-el/basic-pos/pkg/resp"
	"github.com/kim-el/basic-pos/repository"
	"github.com/kim-el/basic-pos/services"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		Service: services.NewProductService(repository.NewProductRepository(db)),
	}
}

// GET /api/products
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /api/products (admin)
func (ctl *ProductController) Create(c *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Description   string  `json:"description"`
		Price         float64 `json:"price" binding:"required,gt=0"`
		Category      string  `json:"category" binding:"required"`
		StockQuantity int     `json:"stockQuantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product := entity.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}
	if err := ctl.Service.Create(&product); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, product)
}
