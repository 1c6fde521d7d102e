package repositories_test

import (
	"fmt"
	"testing"

	"podarstock/internal/models"
	"podarstock/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGORMRepo(t *testing.T) repositories.ProductRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repositories.NewGORMProductRepository(db)
}

// Both implementations must satisfy the same contract, so every test runs
// against the GORM repository and the in-memory one.
func forEachRepo(t *testing.T, test func(t *testing.T, repo repositories.ProductRepository)) {
	t.Run("gorm", func(t *testing.T) {
		test(t, newGORMRepo(t))
	})
	t.Run("mock", func(t *testing.T) {
		test(t, repositories.NewMockProductRepository())
	})
}

func seed(t *testing.T, repo repositories.ProductRepository) []models.Product {
	t.Helper()

	batch := []models.Product{
		{Name: "Boys Shirt", Category: "Uniforms", Size: "2", Stock: 15},
		{Name: "Trouser", Category: "Uniforms", Size: "4", Stock: 22},
		{Name: "Atlas", Category: "Books", Size: "7", Stock: 5},
	}
	assert.NoError(t, repo.CreateBatch(batch))
	return batch
}

func TestCreateBatchAssignsIDs(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		batch := seed(t, repo)

		ids := make(map[string]bool)
		for _, p := range batch {
			assert.NotEmpty(t, p.ID)
			ids[p.ID] = true
		}
		assert.Len(t, ids, len(batch))

		count, err := repo.Count()
		assert.NoError(t, err)
		assert.Equal(t, int64(len(batch)), count)
	})
}

func TestGetAllIsStable(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		seed(t, repo)

		first, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, first, 3)

		// Repeated listings return the same order within a session.
		second, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestGetAllEmpty(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		products, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestUpdateStockPersists(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		batch := seed(t, repo)

		updated, err := repo.UpdateStock(batch[0].ID, 99)
		assert.NoError(t, err)
		assert.Equal(t, 99, updated.Stock)
		assert.Equal(t, batch[0].Name, updated.Name)

		got, err := repo.GetByID(batch[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, 99, got.Stock)

		// Other rows untouched.
		other, err := repo.GetByID(batch[1].ID)
		assert.NoError(t, err)
		assert.Equal(t, 22, other.Stock)
	})
}

func TestUpdateStockNotFound(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		seed(t, repo)

		_, err := repo.UpdateStock("no-such-id", 5)
		assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	})
}

func TestGetByIDNotFound(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		_, err := repo.GetByID("no-such-id")
		assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	})
}

func TestDeleteAllThenReseed(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		seed(t, repo)

		assert.NoError(t, repo.DeleteAll())
		count, err := repo.Count()
		assert.NoError(t, err)
		assert.Zero(t, count)

		batch := seed(t, repo)
		count, err = repo.Count()
		assert.NoError(t, err)
		assert.Equal(t, int64(len(batch)), count)
	})
}

func TestCreateKeepsProvidedID(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo repositories.ProductRepository) {
		p := models.Product{ID: "fixed-id", Name: "Tie", Category: "Uniforms", Size: "15", Stock: 2}
		assert.NoError(t, repo.Create(&p))
		assert.Equal(t, "fixed-id", p.ID)

		got, err := repo.GetByID("fixed-id")
		assert.NoError(t, err)
		assert.Equal(t, "Tie", got.Name)
	})
}
