package catalog

import (
	"strings"

	"github.com/pinshop/pinshop-api/models"
	"gorm.io/gorm"
)

// fallbackRunes is the minimum query length for the prefix fallback, and
// the prefix length it searches with.
const fallbackRunes = 4

// FallbackPrefix reports whether a query that found nothing qualifies for
// the prefix fallback, and returns the lowered 4-rune prefix to use.
func FallbackPrefix(text string) (string, bool) {
	runes := []rune(text)
	if len(runes) < fallbackRunes {
		return "", false
	}
	return strings.ToLower(string(runes[:fallbackRunes])), true
}

// Search runs the case-insensitive substring search across name, tags and
// description within the given status scope. When nothing matches and the
// query is at least four runes long, a second pass matches the name by
// prefix and the tags by substring, both on the first four runes.
func Search(db *gorm.DB, text, scope string) ([]models.Product, error) {
	scoped := func() *gorm.DB {
		tx := db.Model(&models.Product{}).Preload("Seller")
		if scope != "" {
			tx = tx.Where("status = ?", scope)
		}
		return tx
	}

	pattern := contains(text)
	var products []models.Product
	err := scoped().
		Where("LOWER(name) LIKE ? OR LOWER(tags) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern).
		Distinct().
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		prefix, ok := FallbackPrefix(text)
		if !ok {
			return products, nil
		}
		err = scoped().
			Where("LOWER(name) LIKE ? OR LOWER(tags) LIKE ?", prefix+"%", "%"+prefix+"%").
			Distinct().
			Find(&products).Error
		if err != nil {
			return nil, err
		}
	}

	return products, nil
}
