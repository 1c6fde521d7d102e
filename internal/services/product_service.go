package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"podarstock/internal/models"
	"podarstock/internal/repositories"
)

// ErrNegativeStock is returned when an update asks for a stock count below
// zero. The client clamps before sending, so this only fires for hand-rolled
// requests.
var ErrNegativeStock = errors.New("stock must not be negative")

// MissingFieldsError reports which required create fields were empty after
// trimming.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// EventPublisher publishes catalog change events. Implementations must be
// safe for concurrent use; a nil publisher disables events.
type EventPublisher interface {
	PublishStockAdjusted(product *models.Product) error
	PublishCatalogSeeded(count int, reset bool) error
}

// CreateProductInput carries the fields of an add-item request. Stock is
// already coerced to an integer by the transport layer (non-numeric input
// becomes 0).
type CreateProductInput struct {
	Name     string
	Category string
	Size     string
	Stock    int
}

// ProductService handles catalog operations atop a ProductRepository.
type ProductService struct {
	repo     repositories.ProductRepository
	defaults []models.Product
	events   EventPublisher
}

// NewProductService creates a new ProductService. The defaults slice is the
// catalog used by Reset and Initialize; events may be nil.
func NewProductService(repo repositories.ProductRepository, defaults []models.Product, events EventPublisher) *ProductService {
	return &ProductService{
		repo:     repo,
		defaults: defaults,
		events:   events,
	}
}

// ListProducts retrieves the full current catalog.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// UpdateStock sets the stock count of one product and returns the updated
// record. A nil stock leaves the record unchanged and returns it as-is,
// mirroring an update request whose body omitted the field.
func (s *ProductService) UpdateStock(id string, stock *int) (*models.Product, error) {
	if stock == nil {
		return s.repo.GetByID(id)
	}
	if *stock < 0 {
		return nil, ErrNegativeStock
	}

	product, err := s.repo.UpdateStock(id, *stock)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		if pubErr := s.events.PublishStockAdjusted(product); pubErr != nil {
			log.Printf("Failed to publish stock event for product %s: %v", product.ID, pubErr)
		}
	}
	return product, nil
}

// CreateProduct validates and inserts a new product, returning it with its
// assigned id.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	var missing []string
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	size := strings.TrimSpace(input.Size)
	if name == "" {
		missing = append(missing, "name")
	}
	if category == "" {
		missing = append(missing, "category")
	}
	if size == "" {
		missing = append(missing, "size")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	stock := input.Stock
	if stock < 0 {
		stock = 0
	}

	product := &models.Product{
		Name:     name,
		Category: category,
		Size:     size,
		Stock:    stock,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ResetCatalog deletes every record and re-seeds the default catalog.
// Destructive: manual additions and stock edits are discarded.
func (s *ProductService) ResetCatalog() error {
	if err := s.repo.DeleteAll(); err != nil {
		return err
	}
	if err := s.seedDefaults(); err != nil {
		return err
	}
	s.publishSeeded(true)
	return nil
}

// InitializeCatalog seeds the default catalog only when the store is empty.
// It reports whether seeding happened.
func (s *ProductService) InitializeCatalog() (bool, error) {
	count, err := s.repo.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := s.seedDefaults(); err != nil {
		return false, err
	}
	s.publishSeeded(false)
	return true, nil
}

func (s *ProductService) seedDefaults() error {
	// The repository assigns ids into the slice it is given, so seed from a
	// copy to keep s.defaults reusable across resets.
	batch := make([]models.Product, len(s.defaults))
	copy(batch, s.defaults)
	return s.repo.CreateBatch(batch)
}

func (s *ProductService) publishSeeded(reset bool) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogSeeded(len(s.defaults), reset); err != nil {
		log.Printf("Failed to publish catalog seed event: %v", err)
	}
}
