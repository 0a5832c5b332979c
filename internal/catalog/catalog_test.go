package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/domain"
)

func TestGetByID(t *testing.T) {
	c := New()

	product, ok := c.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "iPhone 15 Pro", product.Name)
	assert.Equal(t, 999.99, product.Price)

	_, ok = c.GetByID(999)
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	c := New()

	all := c.ByCategory(domain.CategoryAll)
	assert.Len(t, all, 12)

	electronics := c.ByCategory(domain.CategoryElectronics)
	require.NotEmpty(t, electronics)
	for _, p := range electronics {
		assert.Equal(t, domain.CategoryElectronics, p.Category)
	}

	// Table order is preserved within a category.
	ids := make([]int64, len(electronics))
	for i, p := range electronics {
		ids[i] = p.ID
	}
	assert.Equal(t, []int64{1, 2, 5, 8, 11}, ids)

	assert.Empty(t, c.ByCategory("garden"))
}

func TestSearch(t *testing.T) {
	c := New()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results := c.Search("IPHONE")
		require.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		results := c.Search("thermal carafe")
		require.Len(t, results, 1)
		assert.Equal(t, "Coffee Maker Deluxe", results[0].Name)
	})

	t.Run("matches category", func(t *testing.T) {
		results := c.Search("sports")
		assert.Len(t, results, 3)
	})

	t.Run("any field is sufficient", func(t *testing.T) {
		// "home" appears as a category and inside descriptions.
		results := c.Search("home")
		seen := make(map[int64]bool)
		for _, p := range results {
			assert.False(t, seen[p.ID], "no duplicate results")
			seen[p.ID] = true
		}
		assert.True(t, seen[6], "description match")
		assert.True(t, seen[7], "category match")
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Search("zeppelin"))
	})
}

func TestFeatured(t *testing.T) {
	c := New()

	featured := c.Featured()
	require.NotEmpty(t, featured)
	for _, p := range featured {
		assert.True(t, p.Featured)
		assert.NotEmpty(t, p.Badge)
	}
}

func TestCatalogIsolation(t *testing.T) {
	products := []domain.Product{{ID: 1, Name: "Widget", Price: 10}}
	c := NewWithProducts(products)

	products[0].Name = "Mutated"

	got, ok := c.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Widget", got.Name)
}
