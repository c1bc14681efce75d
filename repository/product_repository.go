// repository/product_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/entity"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ดึงสินค้าที่ยังขายอยู่ เรียงตามหมวดแล้วตามชื่อ
func (r *ProductRepository) FindActive() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("is_active = ?", true).
		Order("category, name").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var product entity.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.DB.Create(product).Error
}
