package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToFloat coerces any legacy price or discount value to a float64. Absent
// values and parse failures yield 0.0; the function never fails. String
// input may carry currency decoration ("12,50 €") or a comma decimal
// separator.
func ToFloat(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0.0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case string:
		cleaned := strings.NewReplacer("€", "", "FCFA", "", "$", "", ",", ".", " ", "").Replace(v)
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			return 0.0
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0.0
		}
		return parsed
	default:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(fmt.Sprint(v)), 64)
		if err != nil {
			return 0.0
		}
		return parsed
	}
}

// EffectivePrice derives the displayed price from the base price and the
// discount percentage. The discount is assumed validated to [0,100] at the
// boundary; a zero discount leaves the price untouched.
func EffectivePrice(price, discount float64) float64 {
	if discount > 0 {
		return price * (1 - discount/100)
	}
	return price
}

// FormatPrice renders the admin-facing price label: struck-through original
// plus effective price when a discount applies.
func FormatPrice(price, discount any) string {
	p := ToFloat(price)
	d := ToFloat(discount)
	if d > 0 {
		return fmt.Sprintf("~%.2f FCFA~ %.2f FCFA (-%.0f%%)", p, EffectivePrice(p, d), d)
	}
	return fmt.Sprintf("%.2f FCFA", p)
}
