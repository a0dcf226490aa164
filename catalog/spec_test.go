package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinshop/pinshop-api/models"
)

func TestSortOrder(t *testing.T) {
	assert.Equal(t, "price ASC", SortOrder("prix"))
	assert.Equal(t, "price DESC", SortOrder("-prix"))
	assert.Equal(t, "name ASC", SortOrder("nom"))
	assert.Equal(t, "name DESC", SortOrder("-nom"))
	assert.Equal(t, "created_at ASC", SortOrder("created_at"))
	assert.Equal(t, "created_at DESC", SortOrder("-created_at"))

	// Anything off the allow-list falls back to newest-first.
	assert.Equal(t, DefaultSort, SortOrder("malicious_field"))
	assert.Equal(t, DefaultSort, SortOrder("prix; DROP TABLE products"))
	assert.Equal(t, DefaultSort, SortOrder(""))
}

func TestParsePrice(t *testing.T) {
	value := ParsePrice("12.5")
	require.NotNil(t, value)
	assert.Equal(t, 12.5, *value)

	value = ParsePrice(" 40 ")
	require.NotNil(t, value)
	assert.Equal(t, 40.0, *value)

	// Malformed bounds are dropped, never errors.
	assert.Nil(t, ParsePrice(""))
	assert.Nil(t, ParsePrice("abc"))
	assert.Nil(t, ParsePrice("12,50"))
}

func TestParseExclusions(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3}, ParseExclusions("1,2,3"))
	assert.Equal(t, []uint{4, 9}, ParseExclusions("4, abc, 9, -2"))
	assert.Nil(t, ParseExclusions(""))
	assert.Nil(t, ParseExclusions("a,b,c"))
}

func TestFallbackPrefix(t *testing.T) {
	prefix, ok := FallbackPrefix("xyz1")
	require.True(t, ok)
	assert.Equal(t, "xyz1", prefix)

	prefix, ok = FallbackPrefix("Chaussures")
	require.True(t, ok)
	assert.Equal(t, "chau", prefix)

	// Multi-byte text counts runes, not bytes.
	prefix, ok = FallbackPrefix("Écharpe")
	require.True(t, ok)
	assert.Equal(t, "écha", prefix)

	_, ok = FallbackPrefix("xy")
	assert.False(t, ok)
	_, ok = FallbackPrefix("")
	assert.False(t, ok)
}

func TestVerifiedSpec(t *testing.T) {
	spec := Verified()
	assert.Equal(t, models.StatusVerified, spec.Scope)
	assert.Equal(t, DefaultSort, spec.Sort)

	assert.Empty(t, Unscoped().Scope)
}
