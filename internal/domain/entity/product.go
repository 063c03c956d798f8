// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

// Category classifies a rentable product. The set is open: new categories
// appear by introducing new values, not by schema change.
type Category string

const (
	CategoryFurniture       Category = "furniture"
	CategoryAirConditioners Category = "air-conditioners"
)

// Product is a rentable catalog item. The ID is the remote document key when
// the item was created against the document store, or a timestamp-derived
// string when it was created on the local fallback path.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"` // currency units per rental day
	Description string   `json:"description"`
	Image       string   `json:"image"` // image URI
	Available   bool     `json:"available"`
	Features    []string `json:"features"`
}

// ProductDraft is a product without an identity yet. Identity is assigned by
// the document store on insert, or derived locally when the store is
// unreachable.
type ProductDraft struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Available   bool     `json:"available"`
	Features    []string `json:"features"`
}

// ProductFields is the replacement field set for an update. The in-memory
// record becomes exactly ID plus these fields; it is not merged into the
// previous record, even though the remote patch only touches listed fields.
type ProductFields = ProductDraft

// WithID promotes a draft to a full product under the given identity.
func (d ProductDraft) WithID(id string) Product {
	return Product{
		ID:          id,
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Description: d.Description,
		Image:       d.Image,
		Available:   d.Available,
		Features:    d.Features,
	}
}
