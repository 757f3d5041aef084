package stock

// Product is a catalog item sold at the register. Name is stored upper-cased
// and must be unique case-insensitively across the catalog.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// CreateProductRequest is the payload for adding a catalog product.
type CreateProductRequest struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}
