package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a cuisine tag exactly as stored in the titlename attribute.
type Category string

const (
	CategoryItalian Category = "ItalianFood"
	CategoryIndian  Category = "IndianFood"
	// Korean items were tagged in lower case from the start.
	CategoryKorean Category = "korean"
)

// DefaultCategory applies to submitted items that name no category.
const DefaultCategory = CategoryKorean

var ErrUnknownCategory = errors.New("unknown category")

var Categories = []Category{CategoryItalian, CategoryIndian, CategoryKorean}

var categoryAliases = map[string]Category{
	"italian": CategoryItalian,
	"indian":  CategoryIndian,
	"korean":  CategoryKorean,
}

// ParseCategory maps free text such as "Italian", "ITALIANFOOD" or
// "KoreanFood" to its canonical tag.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	key = strings.TrimSuffix(key, "food")

	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
}

// Matches compares against a stored tag. The comparison is exact.
func (c Category) Matches(tag string) bool {
	return string(c) == tag
}

// Label is the human name used in messages, e.g. "Italian".
func (c Category) Label() string {
	switch c {
	case CategoryItalian:
		return "Italian"
	case CategoryIndian:
		return "Indian"
	case CategoryKorean:
		return "Korean"
	default:
		return string(c)
	}
}
