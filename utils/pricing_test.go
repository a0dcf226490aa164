package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"nil", nil, 0.0},
		{"empty string", "", 0.0},
		{"garbage", "abc", 0.0},
		{"plain float", 12.5, 12.5},
		{"int", 42, 42.0},
		{"uint", uint(7), 7.0},
		{"numeric string", "19.99", 19.99},
		{"comma decimal", "12,50", 12.5},
		{"euro decorated", "12,50 €", 12.5},
		{"fcfa decorated", "1500 FCFA", 1500.0},
		{"dollar decorated", "$ 9.99", 9.99},
		{"whitespace", "  10.0  ", 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat(tt.input))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 100.0, EffectivePrice(100, 0))
	assert.Equal(t, 80.0, EffectivePrice(100, 20))
	assert.Equal(t, 0.0, EffectivePrice(100, 100))
	assert.Equal(t, 0.0, EffectivePrice(0, 50))
}

func TestEffectivePriceMonotonic(t *testing.T) {
	// Raising the discount never raises the price.
	previous := EffectivePrice(250, 0)
	for d := 1.0; d <= 100; d++ {
		current := EffectivePrice(250, d)
		assert.LessOrEqual(t, current, previous, "discount %v", d)
		previous = current
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "100.00 FCFA", FormatPrice(100.0, 0.0))
	assert.Equal(t, "~100.00 FCFA~ 80.00 FCFA (-20%)", FormatPrice(100.0, 20.0))
	// Legacy decorated strings go through the same lenient coercion.
	assert.Equal(t, "~12.50 FCFA~ 10.00 FCFA (-20%)", FormatPrice("12,50 €", "20"))
	assert.Equal(t, "0.00 FCFA", FormatPrice("abc", nil))
}
