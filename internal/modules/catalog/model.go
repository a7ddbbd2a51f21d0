package catalog

// Product is an entry in the master catalog. The catalog is loaded once at
// startup and never mutated, so products can be shared freely across
// goroutines.
type Product struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price"`
	Sizes       []string `json:"sizes"`
}

// HasSize reports whether the product is offered in the given size label.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Candidate is a product proposed by the recommender, with a synthetic
// relevance score.
type Candidate struct {
	SKU   string   `json:"sku"`
	Title string   `json:"title"`
	Price int      `json:"price"`
	Sizes []string `json:"sizes"`
	Score float64  `json:"score"`
}
