// Package validate holds the domain validation and normalization rules for
// products, producers and carts. Every function is total: bad input yields a
// rejection, never a panic.
package validate

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/rajibsaha1982/farmcart-api/internal/coerce"
	"github.com/rajibsaha1982/farmcart-api/internal/models"
)

var (
	reEmail    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reSentence = regexp.MustCompile(`[.!?]+`)
)

// Email reports whether value is a string shaped like local@domain.tld.
// Non-strings are rejected outright.
func Email(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return reEmail.MatchString(s)
}

// Price reports whether price is a finite, non-negative number with at most
// 2 digits after the decimal point. The decimal-place check inspects the
// minimal decimal representation, not a floating-point epsilon.
func Price(price float64) bool {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return false
	}
	if price < 0 {
		return false
	}
	return decimal.NewFromFloat(price).Exponent() >= -2
}

// PriceToDecimals normalizes a valid price to exactly 2 decimal places.
// The second return value is false when the price is not valid.
func PriceToDecimals(price float64) (float64, bool) {
	if !Price(price) {
		return 0, false
	}
	return decimal.NewFromFloat(price).Round(2).InexactFloat64(), true
}

// Quantity reports whether value is a strictly positive integer. Fractional
// numbers and non-numbers are rejected; JSON numbers arrive as float64 and
// are accepted when they carry no fractional part.
func Quantity(value any) bool {
	switch q := value.(type) {
	case int:
		return q > 0
	case int64:
		return q > 0
	case float64:
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return false
		}
		return q == math.Trunc(q) && q > 0
	}
	return false
}

// CartItems reports whether every line item carries a non-empty product id
// and a valid quantity. An empty sequence is valid.
func CartItems(items []models.CartItem) bool {
	for _, item := range items {
		if item.ProductID == "" || !Quantity(item.Quantity) {
			return false
		}
	}
	return true
}

// SentenceCase reports whether every sentence fragment of the text begins
// with an upper-case letter. Text splits into fragments on runs of '.', '!'
// and '?'; fragments that are empty after trimming are discarded. Empty or
// non-coercible text is rejected.
func SentenceCase(value any) bool {
	if value == nil {
		return false
	}

	str := coerce.ToString(value)
	if len(str) == 0 {
		return false
	}

	for _, sentence := range reSentence.Split(str, -1) {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		first := []rune(trimmed)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

// ProductDescription rejects spam-like descriptions: non-strings, strings
// shorter than 3 characters, a single character repeated, or any single
// character accounting for half or more of the text.
func ProductDescription(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	runes := []rune(s)
	if len(runes) < 3 {
		return false
	}

	counts := make(map[rune]int, len(runes))
	maxCount := 0
	for _, r := range runes {
		counts[r]++
		if counts[r] > maxCount {
			maxCount = counts[r]
		}
	}

	if maxCount == len(runes) {
		return false
	}
	return float64(maxCount)/float64(len(runes)) < 0.5
}

// ProductStructure validates a raw decoded product object: name must be a
// non-empty string, price a valid number, and each of category, contents,
// producer and description either null or a string. The optional keys must
// be present explicitly.
func ProductStructure(value any) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}

	name, ok := obj["name"].(string)
	if !ok || coerce.IsEmpty(name) {
		return false
	}

	price, ok := obj["price"].(float64)
	if !ok || !Price(price) {
		return false
	}

	for _, key := range []string{"category", "contents", "producer", "description"} {
		raw, present := obj[key]
		if !present {
			return false
		}
		if raw == nil {
			continue
		}
		if _, isString := raw.(string); !isString {
			return false
		}
	}
	return true
}

// SanitizeProductName trims the name and capitalizes it. The second return
// value is false for non-strings and names that are blank after trimming.
func SanitizeProductName(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}

	trimmed := strings.TrimSpace(s)
	if coerce.IsEmpty(trimmed) {
		return "", false
	}
	return coerce.Capitalize(trimmed), true
}
