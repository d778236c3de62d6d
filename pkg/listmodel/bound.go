package listmodel

import (
	"fmt"
	"weak"

	"github.com/go-drift/listmodel/pkg/errors"
)

// Bound is the generic observable model: it wraps an [ObservableList],
// reconciles the selection cursor after every reported edit, and
// re-broadcasts each edit to its own subscribers.
//
// The subscription Bound attaches to the sequence holds only a weak
// reference to the model. A sequence routinely outlives the widgets bound
// to it; once a Bound becomes unreachable, the next edit notification
// detects the dead reference and removes the subscription instead of
// acting. Call Dispose for deterministic detach.
//
// Bound never mutates the sequence it wraps.
type Bound[T any] struct {
	// Text renders an item for display. When nil, TextAt falls back to
	// fmt.Sprint of the item.
	Text func(T) string

	items       ObservableList[T]
	keyFn       func(T) any
	selected    int
	selectedKey any
	hasKey      bool
	detach      func()
	changed     listenerSet[Change]
	selection   listenerSet[int]
}

// NewBound creates a model over the given sequence with positional
// selection tracking. It returns a bind error when items is nil.
func NewBound[T any](items ObservableList[T]) (*Bound[T], error) {
	return NewKeyedBound(items, nil)
}

// NewKeyedBound creates a model whose selection follows the item whose
// projected key matches the cached key of the current selection, falling
// back to positional tracking when the item has left the sequence. When key
// is nil the model behaves exactly like [NewBound]. It returns a bind error
// when items is nil.
//
// When two elements project equal keys, the selection anchors to the first
// match in iteration order; no further tie-break is defined.
func NewKeyedBound[T any](items ObservableList[T], key func(T) any) (*Bound[T], error) {
	if items == nil {
		return nil, &errors.ModelError{
			Op:    "listmodel.NewKeyedBound",
			Kind:  errors.KindBind,
			Err:   errors.ErrNilItems,
			Index: -1,
		}
	}
	b := &Bound[T]{
		items:    items,
		keyFn:    key,
		selected: -1,
	}
	b.subscribe()
	return b, nil
}

// subscribe attaches the non-owning edit subscription. The closure captures
// only a weak reference and its own remove handle, never the model, so the
// sequence's listener table cannot keep the model alive.
func (b *Bound[T]) subscribe() {
	ref := weak.Make(b)
	var remove func()
	remove = b.items.AddChangeListener(func(c Change) {
		if m := ref.Value(); m != nil {
			m.sequenceChanged(c)
			return
		}
		if remove != nil {
			remove()
			remove = nil
		}
	})
	b.detach = remove
}

// Len returns the number of items in the sequence.
func (b *Bound[T]) Len() int {
	return b.items.Len()
}

// ItemAt returns the item at index, or the zero value and false when index
// is out of range.
func (b *Bound[T]) ItemAt(index int) (T, bool) {
	if index < 0 || index >= b.items.Len() {
		reportRange("listmodel.Bound.ItemAt", index, b.items.Len())
		var zero T
		return zero, false
	}
	return b.items.At(index), true
}

// TextAt returns the display text for the item at index, or "" when index
// is out of range.
func (b *Bound[T]) TextAt(index int) string {
	if index < 0 || index >= b.items.Len() {
		reportRange("listmodel.Bound.TextAt", index, b.items.Len())
		return ""
	}
	item := b.items.At(index)
	if b.Text != nil {
		return b.Text(item)
	}
	return fmt.Sprint(item)
}

// KeyFunc returns the identity-key projection, or nil when none is
// configured.
func (b *Bound[T]) KeyFunc() func(T) any {
	return b.keyFn
}

// SelectedIndex returns the current selection, -1 for none.
func (b *Bound[T]) SelectedIndex() int {
	return b.selected
}

// SetSelectedIndex moves the selection, clamping into [-1, Len()-1].
func (b *Bound[T]) SetSelectedIndex(index int) {
	if b.assign(index) {
		b.selection.emit("listmodel.Bound.SetSelectedIndex", b.selected)
	}
}

// SelectedItem returns the currently selected item, or the zero value and
// false when nothing is selected.
func (b *Bound[T]) SelectedItem() (T, bool) {
	if b.selected < 0 || b.selected >= b.items.Len() {
		var zero T
		return zero, false
	}
	return b.items.At(b.selected), true
}

// SetSelectedItem selects the given value if present in the sequence,
// matching by pointer identity, then structural equality, then key
// equality when a key projection is configured. An absent value clears
// the selection.
func (b *Bound[T]) SetSelectedItem(item T) {
	b.SetSelectedIndex(findIndex(b.items.Len(), b.items.At, b.keyFn, item))
}

// Invalidate re-derives the selection and emits a reset Change. Use it
// after content changes the sequence did not report.
func (b *Bound[T]) Invalidate() {
	b.sequenceChanged(ResetChange(b.items.Len()))
}

// AddChangeListener subscribes to structural changes re-broadcast by the
// model. It returns an unsubscribe function.
func (b *Bound[T]) AddChangeListener(fn func(Change)) func() {
	return b.changed.add(fn)
}

// AddSelectionListener subscribes to selection changes.
// It returns an unsubscribe function.
func (b *Bound[T]) AddSelectionListener(fn func(int)) func() {
	return b.selection.add(fn)
}

// Dispose detaches the sequence subscription and drops all listeners.
// Safe to call more than once.
func (b *Bound[T]) Dispose() {
	if b.detach != nil {
		b.detach()
		b.detach = nil
	}
	b.changed.clear()
	b.selection.clear()
}

// sequenceChanged runs one accepted edit through the model: the selection
// is reconciled first, then the edit is re-broadcast, then a selection
// notification fires if the cursor moved. A subscriber that reads the
// selection from its change handler therefore always observes the
// consistent post-edit state.
func (b *Bound[T]) sequenceChanged(c Change) {
	old := b.selected
	b.reconcile(c)
	b.changed.emit("listmodel.Bound.changed", c)
	if b.selected != old {
		b.selection.emit("listmodel.Bound.selection", b.selected)
	}
}

// reconcile recomputes the selection cursor after the edit described by c.
// The sequence is re-read live at every step, so nested edits raised by
// re-entrant subscribers stay safe to process.
func (b *Bound[T]) reconcile(c Change) {
	if b.selected < 0 {
		return
	}

	// Key policy: follow the cached key through arbitrary reordering as
	// long as the item is still present. O(Len) per edit.
	if b.keyFn != nil && b.hasKey {
		n := b.items.Len()
		for i := 0; i < n; i++ {
			if keyEqual(b.keyFn(b.items.At(i)), b.selectedKey) {
				b.assign(i)
				return
			}
		}
		b.assign(b.selected)
		return
	}

	switch c.Kind {
	case ChangeAdd:
		if b.selected >= c.Index {
			b.assign(b.selected + c.Count)
			return
		}
	case ChangeRemove:
		switch {
		case b.selected >= c.Index+c.Count:
			b.assign(b.selected - c.Count)
			return
		case b.selected >= c.Index:
			// The selected element itself was removed; snap to whatever
			// now occupies the vacated slot, or none.
			b.assign(c.Index)
			return
		}
	case ChangeMove:
		if c.Count == 1 {
			switch {
			case b.selected == c.OldIndex:
				b.assign(c.Index)
			case c.OldIndex < b.selected && b.selected <= c.Index:
				b.assign(b.selected - 1)
			case c.Index <= b.selected && b.selected < c.OldIndex:
				b.assign(b.selected + 1)
			}
			return
		}
		// Multi-element moves carry no positional policy; fall through to
		// the conservative clamp.
	}
	// ChangeReplace, ChangeReset, and anything unhandled: keep the
	// position, bounded by the current count.
	b.assign(b.selected)
}

// assign stores a clamped selection and refreshes the key cache. It
// reports whether the stored value changed; emitting is the caller's job.
func (b *Bound[T]) assign(index int) bool {
	index = clamp(index, -1, b.items.Len()-1)
	changed := index != b.selected
	b.selected = index
	if b.keyFn != nil && index >= 0 {
		b.selectedKey = b.keyFn(b.items.At(index))
		b.hasKey = true
	} else {
		b.selectedKey = nil
		b.hasKey = false
	}
	return changed
}
