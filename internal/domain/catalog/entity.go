// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product as served by the upstream store API.
// Prices are decimal strings; Stock is nil when the catalog does not track
// stock for the product, which callers treat as unconstrained.
type Product struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"categoryId,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       string  `json:"price"`
	OfferPrice  *string `json:"offerPrice"`
	HasOffer    bool    `json:"hasOffer"`
	IsFeatured  bool    `json:"isFeatured,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Images      []Image `json:"images,omitempty"`
	Color       *Color  `json:"color,omitempty"`
}

// Image represents a product image
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Color represents a product color attribute
type Color struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}
