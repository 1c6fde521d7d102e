// Package catalog holds the default product table the store is seeded with.
// It is configuration, not logic: the service receives the table at
// construction and never reaches back into this package.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"podarstock/internal/models"
)

var defaultProducts = []models.Product{
	{Name: "Boys Shirt", Category: "Uniforms", Size: "2", Stock: 15},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "4", Stock: 20},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "6", Stock: 18},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "8", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "10", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "12", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "14", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "16", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "18", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "20", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "22", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "24", Stock: 12},
	{Name: "Boys Shirt", Category: "Uniforms", Size: "26", Stock: 12},
	{Name: "Trouser", Category: "Uniforms", Size: "2", Stock: 10},
	{Name: "Trouser", Category: "Uniforms", Size: "4", Stock: 22},
	{Name: "Trouser", Category: "Uniforms", Size: "6", Stock: 16},
	{Name: "Trouser", Category: "Uniforms", Size: "8", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "10", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "12", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "14", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "16", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "18", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "20", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "22", Stock: 14},
	{Name: "Trouser", Category: "Uniforms", Size: "24", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "2", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "4", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "6", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "8", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "10", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "12", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "14", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "16", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "18", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "20", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "22", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "24", Stock: 14},
	{Name: "Girl Shirt", Category: "Uniforms", Size: "26", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "2", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "4", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "6", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "8", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "10", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "12", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "14", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "16", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "18", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "20", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "22", Stock: 14},
	{Name: "Girl Skirt", Category: "Uniforms", Size: "24", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "2", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "4", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "6", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "8", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "10", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "12", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "14", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "16", Stock: 14},
	{Name: "Sports T-Shirt", Category: "Uniforms", Size: "18", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "2", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "4", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "6", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "8", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "10", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "12", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "14", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "16", Stock: 14},
	{Name: "Sports Trackpant", Category: "Uniforms", Size: "18", Stock: 14},
	{Name: "Jerkin", Category: "Uniforms", Size: "XS", Stock: 14},
	{Name: "Jerkin", Category: "Uniforms", Size: "S", Stock: 14},
	{Name: "Jerkin", Category: "Uniforms", Size: "M", Stock: 14},
	{Name: "Jerkin", Category: "Uniforms", Size: "L", Stock: 14},
	{Name: "Jerkin", Category: "Uniforms", Size: "XL", Stock: 14},
	{Name: "Jerkin", Category: "Uniforms", Size: "2XL", Stock: 14},
	{Name: "Jerkin", Category: "Uniforms", Size: "3XL", Stock: 14},
	{Name: "Tie", Category: "Uniforms", Size: "12", Stock: 14},
	{Name: "Tie", Category: "Uniforms", Size: "15", Stock: 14},
	{Name: "Tie", Category: "Uniforms", Size: "48", Stock: 14},
	{Name: "Tie", Category: "Uniforms", Size: "52", Stock: 14},
	{Name: "Stocking", Category: "Uniforms", Size: "32", Stock: 14},
	{Name: "Stocking", Category: "Uniforms", Size: "36", Stock: 14},
	{Name: "Stocking", Category: "Uniforms", Size: "40", Stock: 14},
	{Name: "Stocking", Category: "Uniforms", Size: "28", Stock: 14},
	{Name: "Belt", Category: "Uniforms", Size: "26", Stock: 14},
	{Name: "Belt", Category: "Uniforms", Size: "30", Stock: 14},
	{Name: "Belt", Category: "Uniforms", Size: "36", Stock: 14},
	{Name: "Belt", Category: "Uniforms", Size: "44", Stock: 14},
	{Name: "Belt", Category: "Uniforms", Size: "52", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "26", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "28", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "30", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "32", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "34", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "36", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "38", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "40", Stock: 14},
	{Name: "Legging", Category: "Uniforms", Size: "42", Stock: 14},
	{Name: "Socks", Category: "Uniforms", Size: "4", Stock: 14},
	{Name: "Socks", Category: "Uniforms", Size: "5", Stock: 14},
	{Name: "Socks", Category: "Uniforms", Size: "6", Stock: 14},
	{Name: "Socks", Category: "Uniforms", Size: "8", Stock: 14},
}

// Default returns a copy of the built-in catalog. Callers may mutate the
// returned slice freely.
func Default() []models.Product {
	out := make([]models.Product, len(defaultProducts))
	copy(out, defaultProducts)
	return out
}

// Load reads a replacement catalog from a JSON file. The file holds an array
// of objects with name, category, size and stock fields; ids are assigned by
// the store at seed time.
func Load(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return products, nil
}
