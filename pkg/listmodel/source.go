package listmodel

import "github.com/go-drift/listmodel/pkg/errors"

// Source is an older, pull-only data source: indexed access with its own
// display text, and no change notifications.
type Source[T any] interface {
	// Len returns the number of items.
	Len() int
	// At returns the item at index i, 0 <= i < Len().
	At(i int) T
	// Text returns the display text for the item at index i.
	Text(i int) string
}

// SourceModel bridges a [Source] into the [Model] contract.
//
// Because a Source reports no edit granularity, selection tracking is
// purely positional: the cursor is clamped into the current bounds and
// never re-anchored. Callers must Invalidate after mutating the underlying
// data; that is the only way this model's "changed" notification fires.
type SourceModel[T any] struct {
	src       Source[T]
	selected  int
	changed   listenerSet[Change]
	selection listenerSet[int]
}

// NewSourceModel creates a model over the given pull-only source.
// It returns a bind error when src is nil.
func NewSourceModel[T any](src Source[T]) (*SourceModel[T], error) {
	if src == nil {
		return nil, &errors.ModelError{
			Op:    "listmodel.NewSourceModel",
			Kind:  errors.KindBind,
			Err:   errors.ErrNilSource,
			Index: -1,
		}
	}
	return &SourceModel[T]{src: src, selected: -1}, nil
}

// Len returns the number of items in the source.
func (m *SourceModel[T]) Len() int {
	return m.src.Len()
}

// ItemAt returns the item at index, or the zero value and false when index
// is out of range.
func (m *SourceModel[T]) ItemAt(index int) (T, bool) {
	if index < 0 || index >= m.src.Len() {
		reportRange("listmodel.SourceModel.ItemAt", index, m.src.Len())
		var zero T
		return zero, false
	}
	return m.src.At(index), true
}

// TextAt returns the source's display text for the item at index, or ""
// when index is out of range.
func (m *SourceModel[T]) TextAt(index int) string {
	if index < 0 || index >= m.src.Len() {
		reportRange("listmodel.SourceModel.TextAt", index, m.src.Len())
		return ""
	}
	return m.src.Text(index)
}

// KeyFunc returns nil; legacy sources carry no identity projection.
func (m *SourceModel[T]) KeyFunc() func(T) any {
	return nil
}

// SelectedIndex returns the current selection, -1 for none.
func (m *SourceModel[T]) SelectedIndex() int {
	return m.selected
}

// SetSelectedIndex moves the selection, clamping into [-1, Len()-1].
func (m *SourceModel[T]) SetSelectedIndex(index int) {
	index = clamp(index, -1, m.src.Len()-1)
	if index == m.selected {
		return
	}
	m.selected = index
	m.selection.emit("listmodel.SourceModel.SetSelectedIndex", m.selected)
}

// SelectedItem returns the currently selected item, or the zero value and
// false when nothing is selected.
func (m *SourceModel[T]) SelectedItem() (T, bool) {
	if m.selected < 0 || m.selected >= m.src.Len() {
		var zero T
		return zero, false
	}
	return m.src.At(m.selected), true
}

// SetSelectedItem selects the given value if present in the source, and
// clears the selection otherwise.
func (m *SourceModel[T]) SetSelectedItem(item T) {
	m.SetSelectedIndex(findIndex(m.src.Len(), m.src.At, nil, item))
}

// Invalidate clamps the selection to the current bounds and emits a reset
// Change. Call it after the underlying data changed.
func (m *SourceModel[T]) Invalidate() {
	old := m.selected
	m.selected = clamp(m.selected, -1, m.src.Len()-1)
	m.changed.emit("listmodel.SourceModel.Invalidate", ResetChange(m.src.Len()))
	if m.selected != old {
		m.selection.emit("listmodel.SourceModel.Invalidate", m.selected)
	}
}

// AddChangeListener subscribes to structural changes.
// It returns an unsubscribe function.
func (m *SourceModel[T]) AddChangeListener(fn func(Change)) func() {
	return m.changed.add(fn)
}

// AddSelectionListener subscribes to selection changes.
// It returns an unsubscribe function.
func (m *SourceModel[T]) AddSelectionListener(fn func(int)) func() {
	return m.selection.add(fn)
}

// Dispose drops all listeners.
func (m *SourceModel[T]) Dispose() {
	m.changed.clear()
	m.selection.clear()
}
