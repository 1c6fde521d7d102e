package client

import (
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"

	"podarstock/internal/models"
)

// CategoryAll is the category filter value that matches every product.
const CategoryAll = "All"

// ErrMissingItemFields is returned by AddItem when name or size is empty
// after trimming, before any request is made.
var ErrMissingItemFields = errors.New("name and size are required")

// View is the derived state handed to a rendering function. The controller
// mutates its own state through methods only; renderers read snapshots.
type View struct {
	Products            []models.Product
	Visible             []models.Product
	SelectedCategory    string
	SelectedSubcategory string
	SearchQuery         string
	PendingEdits        map[string]string
	Loading             bool
	Err                 error
}

// Controller mirrors the catalog locally and reconciles user stock edits with
// the server. It is meant for a single session and is not safe for concurrent
// use.
type Controller struct {
	api Service

	products            []models.Product
	selectedCategory    string
	selectedSubcategory string
	searchQuery         string
	pendingEdits        map[string]string
	loading             bool
	err                 error

	// ConfirmReset guards the destructive reset. When set, Reset only
	// proceeds if it returns true; when nil, Reset always proceeds.
	ConfirmReset func() bool
}

// NewController creates a Controller over the given service.
func NewController(api Service) *Controller {
	return &Controller{
		api:              api,
		selectedCategory: CategoryAll,
		pendingEdits:     make(map[string]string),
	}
}

// View returns a snapshot of the current state for rendering.
func (c *Controller) View() View {
	pending := make(map[string]string, len(c.pendingEdits))
	for id, v := range c.pendingEdits {
		pending[id] = v
	}
	products := make([]models.Product, len(c.products))
	copy(products, c.products)
	return View{
		Products:            products,
		Visible:             c.Visible(),
		SelectedCategory:    c.selectedCategory,
		SelectedSubcategory: c.selectedSubcategory,
		SearchQuery:         c.searchQuery,
		PendingEdits:        pending,
		Loading:             c.loading,
		Err:                 c.err,
	}
}

// Bootstrap loads the catalog. An empty result triggers a one-shot server
// initialize followed by a re-fetch. A failed fetch leaves the controller in
// a retryable error state with no product list.
func (c *Controller) Bootstrap() error {
	c.loading = true
	c.err = nil

	products, err := c.api.ListProducts()
	if err != nil {
		c.loading = false
		c.err = err
		return err
	}
	if len(products) == 0 {
		if initErr := c.api.InitializeCatalog(); initErr != nil {
			log.Printf("Error initializing database: %v", initErr)
		}
		products, err = c.api.ListProducts()
		if err != nil {
			c.loading = false
			c.err = err
			return err
		}
	}

	c.products = products
	c.loading = false
	return nil
}

// SelectCategory sets the category filter and clears any subcategory.
func (c *Controller) SelectCategory(category string) {
	c.selectedCategory = category
	c.selectedSubcategory = ""
}

// SelectSubcategory narrows the current category to one product name. An
// empty value clears the subcategory filter.
func (c *Controller) SelectSubcategory(name string) {
	c.selectedSubcategory = name
}

// SetSearch sets the free-text filter.
func (c *Controller) SetSearch(query string) {
	c.searchQuery = query
}

// Subcategories returns the distinct product names within a category, sorted
// lexicographically. The all-categories view has no subcategories.
func (c *Controller) Subcategories(category string) []string {
	if category == CategoryAll {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, p := range c.products {
		if p.Category == category && !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Visible derives the displayed sequence: category, then subcategory, then
// case-insensitive substring search over name, size and category, all ANDed.
// The result is a fresh slice; callers may not reach controller state
// through it.
func (c *Controller) Visible() []models.Product {
	filtered := make([]models.Product, len(c.products))
	copy(filtered, c.products)

	if c.selectedCategory != CategoryAll {
		var next []models.Product
		for _, p := range filtered {
			if p.Category != c.selectedCategory {
				continue
			}
			if c.selectedSubcategory != "" && p.Name != c.selectedSubcategory {
				continue
			}
			next = append(next, p)
		}
		filtered = next
	}

	if query := strings.ToLower(strings.TrimSpace(c.searchQuery)); query != "" {
		var next []models.Product
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Size), query) ||
				strings.Contains(strings.ToLower(p.Category), query) {
				next = append(next, p)
			}
		}
		filtered = next
	}

	return filtered
}

// IncrementStock sends stock+1 for the product and merges the server's record
// on success. Failures are logged and leave local state unchanged.
func (c *Controller) IncrementStock(id string) error {
	product := c.find(id)
	if product == nil {
		return nil
	}
	return c.sendStock(id, product.Stock+1)
}

// DecrementStock sends stock-1 for the product. At stock 0 it is a pure
// no-op: no request is issued.
func (c *Controller) DecrementStock(id string) error {
	product := c.find(id)
	if product == nil || product.Stock == 0 {
		return nil
	}
	return c.sendStock(id, product.Stock-1)
}

// EditStock records in-progress typing for a product's stock field. Only
// digits are kept; the server is not contacted until CommitEdit.
func (c *Controller) EditStock(id, raw string) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	c.pendingEdits[id] = b.String()
}

// CommitEdit parses the pending text for a product and sends it as the new
// stock count. Absent or empty pending text falls back to the last known
// stock, an effective no-op update. The pending entry is cleared only on
// success.
func (c *Controller) CommitEdit(id string) error {
	product := c.find(id)
	if product == nil {
		delete(c.pendingEdits, id)
		return nil
	}

	stock := product.Stock
	if raw, ok := c.pendingEdits[id]; ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err == nil && n >= 0 {
			stock = n
		}
	}

	if err := c.sendStock(id, stock); err != nil {
		return err
	}
	delete(c.pendingEdits, id)
	return nil
}

// CancelEdit discards the pending text for a product without committing.
func (c *Controller) CancelEdit(id string) {
	delete(c.pendingEdits, id)
}

// PendingEdit returns the in-progress text for a product's stock field, if
// any.
func (c *Controller) PendingEdit(id string) (string, bool) {
	raw, ok := c.pendingEdits[id]
	return raw, ok
}

// AddItem validates locally, creates the product on the server, and appends
// the returned record. Local state is untouched on any failure.
func (c *Controller) AddItem(input NewProduct) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Size) == "" {
		return nil, ErrMissingItemFields
	}

	product, err := c.api.CreateProduct(input)
	if err != nil {
		log.Printf("Error adding product: %v", err)
		return nil, err
	}
	c.products = append(c.products, *product)
	return product, nil
}

// Reset asks for confirmation, wipes the server catalog back to its defaults
// and re-bootstraps. It reports whether the reset actually ran.
func (c *Controller) Reset() (bool, error) {
	if c.ConfirmReset != nil && !c.ConfirmReset() {
		return false, nil
	}
	if err := c.api.ResetCatalog(); err != nil {
		log.Printf("Error resetting database: %v", err)
		return false, err
	}
	return true, c.Bootstrap()
}

func (c *Controller) find(id string) *models.Product {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i]
		}
	}
	return nil
}

// sendStock issues the update and replaces the matching local record with the
// canonical one from the server.
func (c *Controller) sendStock(id string, stock int) error {
	if stock < 0 {
		stock = 0
	}
	updated, err := c.api.UpdateStock(id, stock)
	if err != nil {
		log.Printf("Error updating stock: %v", err)
		return err
	}
	for i := range c.products {
		if c.products[i].ID == updated.ID {
			c.products[i] = *updated
			break
		}
	}
	return nil
}
