package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCategorie(t *testing.T) {
	for _, categorie := range ValidCategories() {
		assert.True(t, IsValidCategorie(categorie), categorie)
	}
	assert.False(t, IsValidCategorie("electronique"))
	assert.False(t, IsValidCategorie(""))
	assert.False(t, IsValidCategorie("PROMOTION"))
}

func TestValidCategories(t *testing.T) {
	categories := ValidCategories()
	assert.Len(t, categories, 5)
	assert.Contains(t, categories, CategoriePromotion)
	assert.Contains(t, categories, CategorieNouveautes)
}

func TestPromote(t *testing.T) {
	product := Product{
		Name:     "Sac à main",
		Price:    150,
		Category: CategorieTendances,
	}

	require.True(t, product.Promote())
	require.NotNil(t, product.FormerPrice)
	assert.Equal(t, 150.0, *product.FormerPrice)
	assert.Equal(t, float64(PromotionDiscount), product.Discount)
	assert.Equal(t, CategoriePromotion, product.Category)
}

func TestPromoteAlreadyDiscounted(t *testing.T) {
	product := Product{
		Name:     "Montre",
		Price:    90,
		Discount: 10,
		Category: CategorieChere,
	}

	assert.False(t, product.Promote())
	assert.Equal(t, 10.0, product.Discount)
	assert.Equal(t, CategorieChere, product.Category)
	assert.Nil(t, product.FormerPrice)
}

func TestPromoteIdempotent(t *testing.T) {
	product := Product{Name: "Chaussures", Price: 60}

	require.True(t, product.Promote())
	// A second pass must not stack the reduction or move the former price.
	assert.False(t, product.Promote())
	assert.Equal(t, float64(PromotionDiscount), product.Discount)
	assert.Equal(t, 60.0, *product.FormerPrice)
}
