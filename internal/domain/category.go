package domain

import "strings"

// Category is the fixed set of themes a quote can belong to.
type Category string

// Known categories.
const (
	CategoryMotivation  Category = "MOTIVATION"
	CategoryLove        Category = "LOVE"
	CategorySuccess     Category = "SUCCESS"
	CategoryWisdom      Category = "WISDOM"
	CategoryHumor       Category = "HUMOR"
	CategoryLife        Category = "LIFE"
	CategoryInspiration Category = "INSPIRATION"
	CategoryBusiness    Category = "BUSINESS"
	CategorySpiritual   Category = "SPIRITUAL"
	CategoryFriendship  Category = "FRIENDSHIP"
)

type categoryInfo struct {
	label string
	emoji string
}

var categories = []Category{
	CategoryMotivation,
	CategoryLove,
	CategorySuccess,
	CategoryWisdom,
	CategoryHumor,
	CategoryLife,
	CategoryInspiration,
	CategoryBusiness,
	CategorySpiritual,
	CategoryFriendship,
}

var categoryInfos = map[Category]categoryInfo{
	CategoryMotivation:  {"Motivation", "🚀"},
	CategoryLove:        {"Love", "❤️"},
	CategorySuccess:     {"Success", "🏆"},
	CategoryWisdom:      {"Wisdom", "🧠"},
	CategoryHumor:       {"Humor", "😄"},
	CategoryLife:        {"Life", "🌱"},
	CategoryInspiration: {"Inspiration", "✨"},
	CategoryBusiness:    {"Business", "💼"},
	CategorySpiritual:   {"Spiritual", "🙏"},
	CategoryFriendship:  {"Friendship", "👫"},
}

// Categories returns every known category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)

	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryInfos[c]
	return ok
}

// Label is the human-readable name.
func (c Category) Label() string {
	return categoryInfos[c].label
}

// Emoji is the glyph shown next to the label.
func (c Category) Emoji() string {
	return categoryInfos[c].emoji
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", NewValidationErrorWithValue("category", "unknown category", s)
	}

	return c, nil
}

// CategoryOrDefault is ParseCategory for backend data: unknown values become MOTIVATION.
func CategoryOrDefault(s string) Category {
	c, err := ParseCategory(s)
	if err != nil {
		return CategoryMotivation
	}

	return c
}
