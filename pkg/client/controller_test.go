package client_test

import (
	"fmt"
	"testing"

	"podarstock/internal/models"
	"podarstock/pkg/client"

	"github.com/stretchr/testify/assert"
)

// fakeService is an in-memory Service that counts calls, standing in for the
// HTTP client during controller tests.
type fakeService struct {
	products []models.Product
	nextID   int

	listCalls   int
	updateCalls int
	createCalls int
	resetCalls  int
	initCalls   int

	listErr   error
	updateErr error
	createErr error
	resetErr  error
}

func (f *fakeService) ListProducts() ([]models.Product, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeService) UpdateStock(id string, stock int) (*models.Product, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Stock = stock
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeService) CreateProduct(input client.NewProduct) (*models.Product, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	p := models.Product{
		ID:       fmt.Sprintf("id-%d", f.nextID),
		Name:     input.Name,
		Category: input.Category,
		Size:     input.Size,
		Stock:    input.Stock,
	}
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeService) ResetCatalog() error {
	f.resetCalls++
	return f.resetErr
}

func (f *fakeService) InitializeCatalog() error {
	f.initCalls++
	f.products = defaultFixture()
	return nil
}

func defaultFixture() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Boys Shirt", Category: "Uniforms", Size: "2", Stock: 15},
		{ID: "p2", Name: "Boys Shirt", Category: "Uniforms", Size: "4", Stock: 20},
		{ID: "p3", Name: "Trouser", Category: "Uniforms", Size: "2", Stock: 10},
		{ID: "p4", Name: "Atlas", Category: "Books", Size: "7", Stock: 5},
		{ID: "p5", Name: "Belt", Category: "Uniforms", Size: "30", Stock: 0},
	}
}

func newReadyController(t *testing.T) (*client.Controller, *fakeService) {
	t.Helper()
	api := &fakeService{products: defaultFixture()}
	c := client.NewController(api)
	assert.NoError(t, c.Bootstrap())
	api.listCalls = 0
	return c, api
}

func TestBootstrapEmptyStoreInitializesOnce(t *testing.T) {
	api := &fakeService{} // empty store
	c := client.NewController(api)

	err := c.Bootstrap()
	assert.NoError(t, err)

	// Exactly one initialize followed by exactly one re-list.
	assert.Equal(t, 1, api.initCalls)
	assert.Equal(t, 2, api.listCalls)
	assert.Len(t, c.View().Products, len(defaultFixture()))
	assert.False(t, c.View().Loading)
	assert.NoError(t, c.View().Err)
}

func TestBootstrapPopulatedStoreSkipsInitialize(t *testing.T) {
	api := &fakeService{products: defaultFixture()}
	c := client.NewController(api)

	assert.NoError(t, c.Bootstrap())
	assert.Equal(t, 0, api.initCalls)
	assert.Equal(t, 1, api.listCalls)
}

func TestBootstrapFailureIsRetryable(t *testing.T) {
	api := &fakeService{listErr: fmt.Errorf("connection refused")}
	c := client.NewController(api)

	err := c.Bootstrap()
	assert.Error(t, err)

	view := c.View()
	assert.Error(t, view.Err)
	assert.Empty(t, view.Products)
	assert.Equal(t, 0, api.initCalls)

	// The error state clears on a successful retry.
	api.listErr = nil
	api.products = defaultFixture()
	assert.NoError(t, c.Bootstrap())
	assert.NoError(t, c.View().Err)
	assert.Len(t, c.View().Products, len(defaultFixture()))
}

func TestIncrementStock(t *testing.T) {
	c, api := newReadyController(t)

	assert.NoError(t, c.IncrementStock("p1"))
	assert.Equal(t, 1, api.updateCalls)

	view := c.View()
	assert.Equal(t, 16, view.Products[0].Stock)
}

func TestDecrementStockAtZeroIssuesNoCall(t *testing.T) {
	c, api := newReadyController(t)

	// p5 has stock 0: no request, no change anywhere.
	assert.NoError(t, c.DecrementStock("p5"))
	assert.Equal(t, 0, api.updateCalls)
	assert.Equal(t, 0, api.products[4].Stock)

	assert.NoError(t, c.DecrementStock("p1"))
	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 14, c.View().Products[0].Stock)
}

func TestAdjustFailureLeavesLocalStateUnchanged(t *testing.T) {
	c, api := newReadyController(t)
	api.updateErr = fmt.Errorf("connection refused")

	assert.Error(t, c.IncrementStock("p1"))
	assert.Equal(t, 15, c.View().Products[0].Stock)
}

func TestEditStockFiltersDigits(t *testing.T) {
	c, _ := newReadyController(t)

	c.EditStock("p1", "1a2b3")
	raw, ok := c.PendingEdit("p1")
	assert.True(t, ok)
	assert.Equal(t, "123", raw)
}

func TestCommitEditSendsParsedValue(t *testing.T) {
	c, api := newReadyController(t)

	c.EditStock("p1", "42")
	assert.NoError(t, c.CommitEdit("p1"))
	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 42, c.View().Products[0].Stock)

	// Pending entry cleared on success.
	_, ok := c.PendingEdit("p1")
	assert.False(t, ok)
}

func TestCommitEditEmptyFallsBackToKnownStock(t *testing.T) {
	c, api := newReadyController(t)

	c.EditStock("p1", "")
	assert.NoError(t, c.CommitEdit("p1"))

	// A no-op update was still sent with the last known value.
	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 15, c.View().Products[0].Stock)
}

func TestCommitEditFailureKeepsPendingEntry(t *testing.T) {
	c, api := newReadyController(t)
	api.updateErr = fmt.Errorf("connection refused")

	c.EditStock("p1", "42")
	assert.Error(t, c.CommitEdit("p1"))

	raw, ok := c.PendingEdit("p1")
	assert.True(t, ok)
	assert.Equal(t, "42", raw)
	assert.Equal(t, 15, c.View().Products[0].Stock)
}

func TestCancelEditDiscardsWithoutCommit(t *testing.T) {
	c, api := newReadyController(t)

	c.EditStock("p1", "42")
	c.CancelEdit("p1")

	_, ok := c.PendingEdit("p1")
	assert.False(t, ok)
	assert.Equal(t, 0, api.updateCalls)
}

func TestAddItemValidatesLocally(t *testing.T) {
	c, api := newReadyController(t)

	_, err := c.AddItem(client.NewProduct{Name: "  ", Category: "Uniforms", Size: "4"})
	assert.ErrorIs(t, err, client.ErrMissingItemFields)
	_, err = c.AddItem(client.NewProduct{Name: "Socks", Category: "Uniforms", Size: " "})
	assert.ErrorIs(t, err, client.ErrMissingItemFields)
	assert.Equal(t, 0, api.createCalls)
	assert.Len(t, c.View().Products, len(defaultFixture()))
}

func TestAddItemAppendsServerRecord(t *testing.T) {
	c, api := newReadyController(t)

	p, err := c.AddItem(client.NewProduct{Name: "Socks", Category: "Uniforms", Size: "4", Stock: 8})
	assert.NoError(t, err)
	assert.Equal(t, 1, api.createCalls)
	assert.NotEmpty(t, p.ID)

	products := c.View().Products
	assert.Equal(t, p.ID, products[len(products)-1].ID)
}

func TestAddItemFailureLeavesStateUntouched(t *testing.T) {
	c, api := newReadyController(t)
	api.createErr = fmt.Errorf("connection refused")

	_, err := c.AddItem(client.NewProduct{Name: "Socks", Category: "Uniforms", Size: "4"})
	assert.Error(t, err)
	assert.Len(t, c.View().Products, len(defaultFixture()))
}

func TestResetRequiresConfirmation(t *testing.T) {
	c, api := newReadyController(t)
	c.ConfirmReset = func() bool { return false }

	ran, err := c.Reset()
	assert.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, 0, api.resetCalls)

	c.ConfirmReset = func() bool { return true }
	ran, err = c.Reset()
	assert.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, api.resetCalls)
	assert.Equal(t, 1, api.listCalls) // re-bootstrap
}

func TestFilterByCategoryAndSubcategoryAndSearch(t *testing.T) {
	c, _ := newReadyController(t)

	// Category only.
	c.SelectCategory("Uniforms")
	assert.Len(t, c.Visible(), 4)

	// Category + subcategory.
	c.SelectSubcategory("Boys Shirt")
	assert.Len(t, c.Visible(), 2)

	// Category + subcategory + search, ANDed.
	c.SetSearch("4")
	visible := c.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "p2", visible[0].ID)

	// Search is case-insensitive and matches name, size and category.
	c.SelectCategory(client.CategoryAll)
	c.SetSearch("bOoKs")
	visible = c.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "Atlas", visible[0].Name)
}

func TestFilterOrderIndependence(t *testing.T) {
	// Pure AND predicates: the same filter set yields the same result
	// regardless of which setter ran last.
	a, _ := newReadyController(t)
	a.SelectCategory("Uniforms")
	a.SelectSubcategory("Boys Shirt")
	a.SetSearch("shirt")

	b, _ := newReadyController(t)
	b.SetSearch("shirt")
	b.SelectCategory("Uniforms")
	b.SelectSubcategory("Boys Shirt")

	assert.Equal(t, a.Visible(), b.Visible())
}

func TestViewHandsOutCopies(t *testing.T) {
	c, _ := newReadyController(t)
	c.EditStock("p1", "42")

	view := c.View()
	view.Products[0].Stock = 9999
	view.PendingEdits["p1"] = "mutated"
	c.Visible()[0].Stock = 9999

	// Renderer-side mutation never reaches controller state.
	assert.Equal(t, 15, c.View().Products[0].Stock)
	assert.Equal(t, 15, c.Visible()[0].Stock)
	raw, ok := c.PendingEdit("p1")
	assert.True(t, ok)
	assert.Equal(t, "42", raw)
}

func TestSubcategoriesAreDistinctSortedNames(t *testing.T) {
	c, _ := newReadyController(t)

	assert.Equal(t, []string{"Belt", "Boys Shirt", "Trouser"}, c.Subcategories("Uniforms"))
	assert.Equal(t, []string{"Atlas"}, c.Subcategories("Books"))
	assert.Nil(t, c.Subcategories(client.CategoryAll))
}
