package domain

import (
	"slices"
	"time"
)

// Favorite records that a user marked a quote. A (UserID, QuoteID) pair is unique.
type Favorite struct {
	UserID  string
	QuoteID string
	AddedAt time.Time
}

// SameFavoriteSet reports whether a and b hold the same quote ids, ignoring order.
func SameFavoriteSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)

	return slices.Equal(x, y)
}
