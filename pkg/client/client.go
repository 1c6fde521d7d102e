// Package client provides the API client and view-state controller used by
// stock-counter frontends (terminal or web) against the catalog service.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"podarstock/internal/models"
)

// ErrNotFound is returned when the server does not know the product id.
var ErrNotFound = errors.New("product not found")

// APIError carries a non-success response from the catalog service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// NewProduct carries the fields of an add-item request.
type NewProduct struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Size     string `json:"size"`
	Stock    int    `json:"stock"`
}

// Service is the wire contract of the catalog service as the controller sees
// it. Client is the HTTP implementation; tests substitute fakes.
type Service interface {
	ListProducts() ([]models.Product, error)
	UpdateStock(id string, stock int) (*models.Product, error)
	CreateProduct(input NewProduct) (*models.Product, error)
	ResetCatalog() error
	InitializeCatalog() error
}

// Client is an HTTP implementation of Service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for a service rooted at baseURL, e.g.
// "http://localhost:5000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts() ([]models.Product, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/products")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.responseError(resp)
	}
	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode product list: %w", err)
	}
	return products, nil
}

// UpdateStock sets the stock of one product and returns the server's record.
func (c *Client) UpdateStock(id string, stock int) (*models.Product, error) {
	body, err := json.Marshal(map[string]int{"stock": stock})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stock update: %w", err)
	}
	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/products/"+id, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build stock update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.responseError(resp)
	}
	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode updated product: %w", err)
	}
	return &product, nil
}

// CreateProduct adds a new variant and returns it with its assigned id.
func (c *Client) CreateProduct(input NewProduct) (*models.Product, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal new product: %w", err)
	}
	resp, err := c.httpClient.Post(c.baseURL+"/products", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.responseError(resp)
	}
	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode created product: %w", err)
	}
	return &product, nil
}

// ResetCatalog wipes the store and re-seeds the default catalog.
func (c *Client) ResetCatalog() error {
	return c.post("/products/reset")
}

// InitializeCatalog seeds the default catalog when the store is empty.
func (c *Client) InitializeCatalog() error {
	return c.post("/products/initialize")
}

func (c *Client) post(path string) error {
	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", nil)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.responseError(resp)
	}
	return nil
}

// responseError decodes the service's {"error": ...} body into an APIError,
// falling back to the raw body when it is not JSON.
func (c *Client) responseError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	var payload struct {
		Error string `json:"error"`
	}
	message := string(data)
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}
