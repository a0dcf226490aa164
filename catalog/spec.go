// Package catalog builds filtered, sorted views over the product table.
// Handlers describe what they want as a Spec; Apply is the only place that
// translates it into a query, so the filtering rules stay independent of
// the storage layer.
package catalog

import (
	"strconv"
	"strings"

	"github.com/pinshop/pinshop-api/models"
	"gorm.io/gorm"
)

// DefaultSort is the ordering used whenever no valid sort key is supplied.
const DefaultSort = "created_at DESC"

// RefreshLimit caps the random refresh batch.
const RefreshLimit = 30

// sortKeys maps the public ordre values onto column orderings. Anything
// outside this allow-list falls back to DefaultSort.
var sortKeys = map[string]string{
	"prix":        "price ASC",
	"-prix":       "price DESC",
	"nom":         "name ASC",
	"-nom":        "name DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
}

// Spec is an explicit filter specification over the product collection.
// Zero-valued fields are inactive; the scope, when set, is applied before
// every other predicate.
type Spec struct {
	Scope    string
	Category string
	Color    string
	Size     string
	PriceMin *float64
	PriceMax *float64
	SellerID uint
	Exclude  []uint
	Sort     string
}

// Verified returns the public scope: only verified products are visible.
func Verified() Spec {
	return Spec{Scope: models.StatusVerified, Sort: DefaultSort}
}

// Unscoped returns a spec with no status restriction, for staff callers and
// owning sellers.
func Unscoped() Spec {
	return Spec{Sort: DefaultSort}
}

// Apply translates the spec onto a gorm query. Colour and size use substring
// containment against the JSON list columns, price bounds are inclusive.
func (s Spec) Apply(db *gorm.DB) *gorm.DB {
	tx := db.Model(&models.Product{})
	if s.Scope != "" {
		tx = tx.Where("status = ?", s.Scope)
	}
	if s.SellerID != 0 {
		tx = tx.Where("seller_id = ?", s.SellerID)
	}
	if s.Category != "" {
		tx = tx.Where("category = ?", s.Category)
	}
	if s.Color != "" {
		tx = tx.Where("LOWER(colors) LIKE ?", contains(s.Color))
	}
	if s.Size != "" {
		tx = tx.Where("LOWER(sizes) LIKE ?", contains(s.Size))
	}
	if s.PriceMin != nil {
		tx = tx.Where("price >= ?", *s.PriceMin)
	}
	if s.PriceMax != nil {
		tx = tx.Where("price <= ?", *s.PriceMax)
	}
	if len(s.Exclude) > 0 {
		tx = tx.Where("id NOT IN ?", s.Exclude)
	}
	if s.Sort != "" {
		tx = tx.Order(s.Sort)
	}
	return tx
}

func contains(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// SortOrder resolves an ordre query value against the allow-list. Unknown
// keys fall back to newest-first rather than reaching the database.
func SortOrder(ordre string) string {
	if order, ok := sortKeys[ordre]; ok {
		return order
	}
	return DefaultSort
}

// ParsePrice parses an optional price bound. A malformed bound is dropped
// (nil), never an error: a bad refinement must not fail the request.
func ParsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParseExclusions parses the comma-separated exclus parameter, dropping
// anything that is not a plain positive integer.
func ParseExclusions(raw string) []uint {
	if raw == "" {
		return nil
	}
	var ids []uint
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
