package catalog

import (
	"strings"

	"shopfront/internal/domain"
)

// Catalog is the immutable product reference table. It is built once at
// startup and is safe for concurrent readers without synchronization.
type Catalog struct {
	products []domain.Product
	byID     map[int64]int
}

// New builds a catalog over the default product table.
func New() *Catalog {
	return NewWithProducts(defaultProducts())
}

// NewWithProducts builds a catalog over the given table, preserving its
// order. The slice is copied so later mutation by the caller cannot leak in.
func NewWithProducts(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(c.products, products)
	for i := range c.products {
		c.byID[c.products[i].ID] = i
	}
	return c
}

// GetByID looks a product up by its identifier.
func (c *Catalog) GetByID(id int64) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ByCategory returns products of the given category in table order.
// domain.CategoryAll (and the empty string) mean no filter.
func (c *Catalog) ByCategory(category domain.Category) []domain.Product {
	if category == domain.CategoryAll || category == "" {
		out := make([]domain.Product, len(c.products))
		copy(out, c.products)
		return out
	}

	var out []domain.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, description or category contains
// the query, case-insensitively. Any matching field is sufficient.
func (c *Catalog) Search(query string) []domain.Product {
	term := strings.ToLower(query)

	var out []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(string(p.Category)), term) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products flagged for the landing page, in table order.
func (c *Catalog) Featured() []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
