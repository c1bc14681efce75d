// services/product_service.go
package services

import (
	"github.com/kim-el/basic-pos/entity"
	"github.com/kim-el/basic-pos/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) ListActive() ([]entity.Product, error) {
	return s.Repo.FindActive()
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	return s.Repo.FindByID(id)
}

func (s *ProductService) Create(product *entity.Product) error {
	return s.Repo.Create(product)
}
