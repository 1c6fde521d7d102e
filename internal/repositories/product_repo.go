package repositories

import (
	"errors"

	"podarstock/internal/models"
)

// ErrProductNotFound is returned when an id does not match any stored variant.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	CreateBatch(products []models.Product) error
	UpdateStock(id string, stock int) (*models.Product, error)
	DeleteAll() error
	Count() (int64, error)
}
