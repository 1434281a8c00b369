package prompt

// Item is one row in a prompt catalog: an opaque payload plus a flag
// marking the row as a non-selectable group header.
type Item[T any] struct {
	Value   T
	IsGroup bool
}

// Leaf wraps a payload as a selectable entry.
func Leaf[T any](v T) Item[T] {
	return Item[T]{Value: v}
}

// Group wraps a payload as a non-selectable header entry.
func Group[T any](v T) Item[T] {
	return Item[T]{Value: v, IsGroup: true}
}
