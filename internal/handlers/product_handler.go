package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"podarstock/internal/repositories"
	"podarstock/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Post("/reset", h.HandleResetCatalog)
	productRoutes.Post("/initialize", h.HandleInitializeCatalog)
	productRoutes.Put("/:id", h.HandleUpdateStock)
}

// FlexInt decodes a JSON number or a numeric string, falling back to 0 when
// the value does not parse. Matches how the add-item form submits stock.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(x))
		return nil
	}
	*f = 0
	return nil
}

type createProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Size     string  `json:"size" validate:"required"`
	Stock    FlexInt `json:"stock"`
}

type updateStockRequest struct {
	Stock *int `json:"stock"`
}

// HandleListProducts returns the full catalog.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleUpdateStock sets the stock count of one product.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	var req updateStockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stock update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	product, err := h.service.UpdateStock(productID, req.Stock)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		if errors.Is(err, services.ErrNegativeStock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error updating stock for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct adds a new product variant to the catalog.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		var fields []string
		for _, e := range err.(validator.ValidationErrors) {
			fields = append(fields, strings.ToLower(e.Field()))
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Name, category, size, and stock are required",
			"fields": fields,
		})
	}

	product, err := h.service.CreateProduct(services.CreateProductInput{
		Name:     req.Name,
		Category: req.Category,
		Size:     req.Size,
		Stock:    int(req.Stock),
	})
	if err != nil {
		var missing *services.MissingFieldsError
		if errors.As(err, &missing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Name, category, size, and stock are required",
				"fields": missing.Fields,
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleResetCatalog wipes the store and re-seeds the default catalog.
func (h *ProductHandler) HandleResetCatalog(c *fiber.Ctx) error {
	if err := h.service.ResetCatalog(); err != nil {
		log.Printf("Error resetting catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Database reset successfully",
	})
}

// HandleInitializeCatalog seeds the default catalog if the store is empty.
func (h *ProductHandler) HandleInitializeCatalog(c *fiber.Ctx) error {
	seeded, err := h.service.InitializeCatalog()
	if err != nil {
		log.Printf("Error initializing catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if seeded {
		return c.JSON(fiber.Map{
			"message": "Database initialized with default products",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Database already initialized",
	})
}
