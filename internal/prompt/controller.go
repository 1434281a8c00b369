package prompt

// Controller owns the navigation state of one prompt invocation: the
// highlighted position, the accumulated search text, and the derived index
// views. It is mutated exclusively through Transition, once per key event,
// and belongs to a single goroutine for its whole lifetime.
//
// The highlighted position is a catalog index normally. When filter search
// is active it is a position within the filtered view instead; Current and
// CatalogIndex resolve it either way.
type Controller[T any] struct {
	items []Item[T]
	opts  Options[T]

	index      int
	searchText string

	leafIndexes     []int // fixed at construction; only set for leaf-skip navigation
	filteredIndexes []int // recomputed on every search text change; only set for filter search
}

// New builds a Controller over items. The catalog is referenced, not copied,
// and must not be mutated afterwards. The initial highlighted position is
// the first leaf when leaf-skip navigation is active, else position 0.
func New[T any](items []Item[T], opts Options[T]) (*Controller[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	c := &Controller[T]{items: items, opts: opts}
	if c.skipNav() {
		c.leafIndexes = leafPositions(items)
		if len(c.leafIndexes) > 0 {
			c.index = c.leafIndexes[0]
		}
	}
	if c.filterNav() {
		c.filteredIndexes = matchingPositions(items, "", c.skipNav(), c.opts.Match)
		c.index = 0
	}
	return c, nil
}

// skipNav reports whether navigation is confined to the leaf-only view.
func (c *Controller[T]) skipNav() bool {
	return c.opts.LeafOnly && c.opts.SkipGroups
}

// filterNav reports whether the highlighted position lives in the filtered
// view rather than the raw catalog.
func (c *Controller[T]) filterNav() bool {
	return c.opts.Search && c.opts.FilterMatches
}

// Items returns the catalog.
func (c *Controller[T]) Items() []Item[T] {
	return c.items
}

// SearchText returns the accumulated search input.
func (c *Controller[T]) SearchText() string {
	return c.searchText
}

// Index returns the raw highlighted position: a catalog index, or a
// position within ViewIndexes when filter search is active.
func (c *Controller[T]) Index() int {
	return c.index
}

// ViewIndexes returns the catalog positions that are currently legal
// navigation targets, in catalog order.
func (c *Controller[T]) ViewIndexes() []int {
	switch {
	case c.filterNav():
		return c.filteredIndexes
	case c.skipNav():
		return c.leafIndexes
	}
	all := make([]int, len(c.items))
	for i := range all {
		all[i] = i
	}
	return all
}

// CatalogIndex resolves the highlighted position to a catalog index. ok is
// false when the catalog, or the filtered view it points into, is empty.
func (c *Controller[T]) CatalogIndex() (int, bool) {
	if c.filterNav() {
		if c.index < 0 || c.index >= len(c.filteredIndexes) {
			return 0, false
		}
		return c.filteredIndexes[c.index], true
	}
	if c.index < 0 || c.index >= len(c.items) {
		return 0, false
	}
	return c.index, true
}

// Current resolves the highlighted item.
func (c *Controller[T]) Current() (Item[T], bool) {
	pos, ok := c.CatalogIndex()
	if !ok {
		var zero Item[T]
		return zero, false
	}
	return c.items[pos], true
}

// IsMatch reports whether the item at catalog position pos matches the
// current search text. Everything matches while the text is empty.
func (c *Controller[T]) IsMatch(pos int) bool {
	if pos < 0 || pos >= len(c.items) {
		return false
	}
	return c.opts.Match(c.items[pos].Value, c.searchText)
}

// Transition consumes one key event and reports whether the highlighted
// position or the search text changed, i.e. whether a redraw is warranted.
// It is total: unrecognized keys are no-ops and intermediate out-of-range
// positions are always normalized before being accepted into state.
func (c *Controller[T]) Transition(ev KeyEvent) bool {
	prevIndex, prevText := c.index, c.searchText

	if c.skipNav() && (c.searchText == "" || !c.filterNav()) {
		c.moveInView(ev)
	} else {
		c.moveUnrestricted(ev)
	}

	// The search step runs against the pre-navigation text and may override
	// whatever the navigation step computed.
	if c.opts.Search {
		if text, edited := applySearchKey(prevText, ev); edited {
			c.searchText = text
			if c.filterNav() {
				c.filteredIndexes = matchingPositions(c.items, text, c.skipNav(), c.opts.Match)
				c.index = 0
			} else if pos, ok := c.firstMatch(text); ok {
				c.index = pos
			}
		}
	}

	c.normalize()
	return c.index != prevIndex || c.searchText != prevText
}

// moveInView navigates within the leaf-only view (or the filtered leaf view
// when filter search has text), then maps the landing position back into the
// stored representation.
func (c *Controller[T]) moveInView(ev KeyEvent) {
	view := c.leafIndexes
	if c.filterNav() && c.searchText != "" {
		view = c.filteredIndexes
	}

	// With filter search the stored index already is a view position.
	cur := c.index
	if !c.filterNav() {
		cur = indexOf(view, c.index)
	}

	pos := cur
	switch ev.Code {
	case KeyUp:
		if cur > 0 {
			pos = cur - 1
		} else if c.opts.WrapAround && len(view) > 0 {
			pos = len(view) - 1
		}
	case KeyDown:
		if cur >= 0 && cur < len(view)-1 {
			pos = cur + 1
		} else if c.opts.WrapAround && len(view) > 0 {
			pos = 0
		}
	case KeyHome:
		pos = 0
	case KeyEnd:
		pos = len(view) - 1
	case KeyPageUp:
		p := cur - c.opts.PageSize
		if p < 0 {
			p = 0
		}
		if p < len(view) {
			pos = p
		}
	case KeyPageDown:
		p := cur + c.opts.PageSize
		if p > len(view)-1 {
			p = len(view) - 1
		}
		if p >= 0 {
			pos = p
		}
	default:
		return
	}

	if c.filterNav() {
		if pos < 0 {
			pos = 0
		}
		c.index = pos
		return
	}
	if pos >= 0 && pos < len(view) {
		c.index = view[pos]
		return
	}
	// First/last of an empty view resolves to the default index.
	if len(view) == 0 && (ev.Code == KeyHome || ev.Code == KeyEnd) {
		c.index = 0
	}
}

// moveUnrestricted navigates on the raw index. Bounds are applied by
// normalize, except that filter search clamps into its view immediately.
func (c *Controller[T]) moveUnrestricted(ev KeyEvent) {
	idx := c.index
	switch ev.Code {
	case KeyUp:
		idx--
	case KeyDown:
		idx++
	case KeyHome:
		idx = 0
	case KeyEnd:
		idx = len(c.items) - 1
	case KeyPageUp:
		idx -= c.opts.PageSize
	case KeyPageDown:
		idx += c.opts.PageSize
	default:
		return
	}

	if c.filterNav() {
		if max := len(c.filteredIndexes) - 1; idx > max {
			idx = max
		}
		if idx < 0 {
			idx = 0
		}
	}
	c.index = idx
}

// firstMatch finds the first catalog position whose payload matches term,
// restricted to leaves when leaf-skip navigation is active.
func (c *Controller[T]) firstMatch(term string) (int, bool) {
	for i, it := range c.items {
		if c.skipNav() && it.IsGroup {
			continue
		}
		if c.opts.Match(it.Value, term) {
			return i, true
		}
	}
	return 0, false
}

// normalize wraps or clamps the highlighted position into the catalog range.
func (c *Controller[T]) normalize() {
	n := len(c.items)
	if n == 0 {
		c.index = 0
		return
	}
	if c.opts.WrapAround {
		c.index = (n + c.index%n) % n
		return
	}
	if c.index < 0 {
		c.index = 0
	} else if c.index > n-1 {
		c.index = n - 1
	}
}
