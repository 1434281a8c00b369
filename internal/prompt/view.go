package prompt

// leafPositions returns the catalog positions of non-group items, in
// catalog order.
func leafPositions[T any](items []Item[T]) []int {
	out := make([]int, 0, len(items))
	for i, it := range items {
		if !it.IsGroup {
			out = append(out, i)
		}
	}
	return out
}

// matchingPositions returns the catalog positions whose payload matches
// term, optionally restricted to leaves. Catalog order is preserved; an
// empty result is a valid view.
func matchingPositions[T any](items []Item[T], term string, leafOnly bool, match func(T, string) bool) []int {
	out := make([]int, 0, len(items))
	for i, it := range items {
		if leafOnly && it.IsGroup {
			continue
		}
		if match(it.Value, term) {
			out = append(out, i)
		}
	}
	return out
}

// indexOf locates a catalog position within a view, -1 when absent.
func indexOf(view []int, target int) int {
	for i, v := range view {
		if v == target {
			return i
		}
	}
	return -1
}
