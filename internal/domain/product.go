package domain

type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategorySports      Category = "sports"
	CategoryHome        Category = "home"
)

// Product is one entry in the immutable catalog table.
type Product struct {
	ID          int64
	Name        string
	Category    Category
	Price       float64
	Image       string
	Description string
	Featured    bool
	Badge       string
}
