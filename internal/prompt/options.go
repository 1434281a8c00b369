package prompt

import "errors"

// ErrMissingTextFunc is returned by New when no text converter is supplied.
// The default match predicate cannot work without one.
var ErrMissingTextFunc = errors.New("prompt: options require a Text converter")

// DefaultPageSize is the PageUp/PageDown magnitude used when the caller
// leaves PageSize unset.
const DefaultPageSize = 10

// Options configure a Controller. All fields are fixed at construction.
type Options[T any] struct {
	// PageSize is the magnitude of PageUp/PageDown movement.
	PageSize int

	// WrapAround makes Up/Down and paging wrap at view boundaries instead
	// of stopping there.
	WrapAround bool

	// LeafOnly restricts end results of navigation to non-group items.
	LeafOnly bool

	// SkipGroups confines navigation to the leaf-only view. Only effective
	// together with LeafOnly.
	SkipGroups bool

	// Search feeds key events into the search engine at all.
	Search bool

	// FilterMatches switches search from highlight-on-match to
	// filter-to-matches: non-matching items leave the navigable view.
	FilterMatches bool

	// Text converts a payload to its display text. Required.
	Text func(T) string

	// Match reports whether a payload matches the search text. When nil, a
	// case-insensitive substring test against Text is used. Must be pure.
	Match func(value T, term string) bool
}

func (o *Options[T]) validate() error {
	if o.Text == nil {
		return ErrMissingTextFunc
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.Match == nil {
		o.Match = defaultMatch(o.Text)
	}
	return nil
}
