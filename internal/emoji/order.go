package emoji

import "sort"

// Compare orders symbols top-to-bottom, then left-to-right, then by code.
func Compare(a, b Symbol) int {
	switch {
	case a.Rect.Top < b.Rect.Top:
		return -1
	case a.Rect.Top > b.Rect.Top:
		return 1
	}
	switch {
	case a.Rect.Left < b.Rect.Left:
		return -1
	case a.Rect.Left > b.Rect.Left:
		return 1
	}
	switch {
	case a.Code < b.Code:
		return -1
	case a.Code > b.Code:
		return 1
	}
	return 0
}

// SortReadingOrder returns a copy of symbols in reading order.
func SortReadingOrder(symbols []Symbol) []Symbol {
	if len(symbols) == 0 {
		return nil
	}
	sorted := make([]Symbol, len(symbols))
	copy(sorted, symbols)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})
	return sorted
}
