// services/sales_service.go
package services

import (
	"github.com/kim-el/basic-pos/repository"
)

type SalesService struct {
	Repo *repository.SalesRepository
}

func NewSalesService(repo *repository.SalesRepository) *SalesService {
	return &SalesService{Repo: repo}
}

func (s *SalesService) Today() (*repository.DailySales, error) {
	return s.Repo.Today()
}
