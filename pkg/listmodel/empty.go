package listmodel

// Empty is the zero-item model. Widgets hold an Empty while no backing
// sequence exists, so consumers never special-case "no data": every
// accessor degenerates, the selection is always none, and the selection
// setter still clamps and notifies like the other implementations.
type Empty[T any] struct {
	selected  int
	changed   listenerSet[Change]
	selection listenerSet[int]
}

// NewEmpty creates a model with no items.
func NewEmpty[T any]() *Empty[T] {
	return &Empty[T]{selected: -1}
}

// Len returns 0.
func (e *Empty[T]) Len() int {
	return 0
}

// ItemAt returns the zero value and false for every index.
func (e *Empty[T]) ItemAt(index int) (T, bool) {
	var zero T
	return zero, false
}

// TextAt returns "" for every index.
func (e *Empty[T]) TextAt(index int) string {
	return ""
}

// KeyFunc returns nil.
func (e *Empty[T]) KeyFunc() func(T) any {
	return nil
}

// SelectedIndex returns the current selection, always -1 after construction.
func (e *Empty[T]) SelectedIndex() int {
	return e.selected
}

// SetSelectedIndex clamps the selection to none and notifies if a selection
// existed beforehand.
func (e *Empty[T]) SetSelectedIndex(index int) {
	index = clamp(index, -1, -1)
	if index == e.selected {
		return
	}
	e.selected = index
	e.selection.emit("listmodel.Empty.SetSelectedIndex", e.selected)
}

// SelectedItem returns the zero value and false.
func (e *Empty[T]) SelectedItem() (T, bool) {
	var zero T
	return zero, false
}

// SetSelectedItem clears the selection; no value is ever present.
func (e *Empty[T]) SetSelectedItem(item T) {
	e.SetSelectedIndex(-1)
}

// Invalidate emits a reset Change for the empty sequence.
func (e *Empty[T]) Invalidate() {
	e.changed.emit("listmodel.Empty.Invalidate", ResetChange(0))
}

// AddChangeListener subscribes to structural changes.
// It returns an unsubscribe function.
func (e *Empty[T]) AddChangeListener(fn func(Change)) func() {
	return e.changed.add(fn)
}

// AddSelectionListener subscribes to selection changes.
// It returns an unsubscribe function.
func (e *Empty[T]) AddSelectionListener(fn func(int)) func() {
	return e.selection.add(fn)
}

// Dispose drops all listeners.
func (e *Empty[T]) Dispose() {
	e.changed.clear()
	e.selection.clear()
}
