package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortDefault      SortKey = "default"
	SortPriceLowHigh SortKey = "price-low-high"
	SortPriceHighLow SortKey = "price-high-low"
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
)

// FilterSort derives the item list a storefront page renders: category filter
// first, then a case-insensitive substring search over name and description,
// then ordering by the sort key. The input slice is never mutated; SortDefault
// and unknown keys keep the filtered items in their incoming order. An empty
// result is a valid outcome, not an error.
func FilterSort(items []*Item, query *ListItemsQuery) []*Item {
	result := make([]*Item, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(query.Search))

	for _, item := range items {
		if query.Category != "" && query.Category != "all" && item.Category != query.Category {
			continue
		}

		if search != "" && !matchesSearch(item, search) {
			continue
		}

		result = append(result, item)
	}

	switch query.Sort {
	case SortPriceLowHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name > result[j].Name
		})
	}

	return result
}

func matchesSearch(item *Item, loweredSearch string) bool {
	return strings.Contains(strings.ToLower(item.Name), loweredSearch) ||
		strings.Contains(strings.ToLower(item.Description), loweredSearch)
}
