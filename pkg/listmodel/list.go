package listmodel

import "fmt"

// List is a read-only indexed sequence of items.
type List[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i, 0 <= i < Len().
	At(i int) T
}

// ObservableList is a List that reports each structural edit, synchronously
// and on the same logical thread as the mutation, as a single Change.
type ObservableList[T any] interface {
	List[T]
	// AddChangeListener subscribes to structural edits and returns an
	// unsubscribe function.
	AddChangeListener(fn func(Change)) func()
}

// Slice is an ObservableList backed by a Go slice.
//
// Every mutator applies the edit and then emits the matching Change, so a
// [Bound] model attached to a Slice tracks its selection through inserts,
// removals, moves, replacements, and resets. Mutators panic on out-of-range
// indices, like the slice operations they wrap.
//
// Slice is NOT thread-safe. Mutate it only from the UI thread.
type Slice[T any] struct {
	items   []T
	changed listenerSet[Change]
}

// NewSlice creates a Slice holding the given items.
func NewSlice[T any](items ...T) *Slice[T] {
	s := &Slice[T]{}
	s.items = append(s.items, items...)
	return s
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s *Slice[T]) At(i int) T {
	return s.items[i]
}

// AddChangeListener subscribes to structural edits.
// It returns an unsubscribe function.
func (s *Slice[T]) AddChangeListener(fn func(Change)) func() {
	return s.changed.add(fn)
}

// ListenerCount returns the number of subscribed change listeners.
func (s *Slice[T]) ListenerCount() int {
	return s.changed.len()
}

// Append adds items at the end of the sequence.
func (s *Slice[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	index := len(s.items)
	s.items = append(s.items, items...)
	s.changed.emit("listmodel.Slice.Append", AddChange(index, len(items)))
}

// Insert adds items starting at index, shifting later elements up.
// index may equal Len(), in which case Insert behaves like Append.
func (s *Slice[T]) Insert(index int, items ...T) {
	if index < 0 || index > len(s.items) {
		panic(fmt.Sprintf("listmodel: Insert index %d out of range [0,%d]", index, len(s.items)))
	}
	if len(items) == 0 {
		return
	}
	s.items = append(s.items[:index], append(append([]T(nil), items...), s.items[index:]...)...)
	s.changed.emit("listmodel.Slice.Insert", AddChange(index, len(items)))
}

// RemoveAt deletes the element at index.
func (s *Slice[T]) RemoveAt(index int) {
	s.RemoveRange(index, 1)
}

// RemoveRange deletes count elements starting at index.
func (s *Slice[T]) RemoveRange(index, count int) {
	if index < 0 || count < 0 || index+count > len(s.items) {
		panic(fmt.Sprintf("listmodel: RemoveRange [%d,%d) out of range [0,%d)", index, index+count, len(s.items)))
	}
	if count == 0 {
		return
	}
	s.items = append(s.items[:index], s.items[index+count:]...)
	s.changed.emit("listmodel.Slice.RemoveRange", RemoveChange(index, count))
}

// Move relocates the element at oldIndex to newIndex.
func (s *Slice[T]) Move(oldIndex, newIndex int) {
	n := len(s.items)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		panic(fmt.Sprintf("listmodel: Move %d->%d out of range [0,%d)", oldIndex, newIndex, n))
	}
	if oldIndex == newIndex {
		return
	}
	item := s.items[oldIndex]
	s.items = append(s.items[:oldIndex], s.items[oldIndex+1:]...)
	s.items = append(s.items[:newIndex], append([]T{item}, s.items[newIndex:]...)...)
	s.changed.emit("listmodel.Slice.Move", MoveChange(oldIndex, newIndex))
}

// Set overwrites the element at index in place.
func (s *Slice[T]) Set(index int, item T) {
	if index < 0 || index >= len(s.items) {
		panic(fmt.Sprintf("listmodel: Set index %d out of range [0,%d)", index, len(s.items)))
	}
	s.items[index] = item
	s.changed.emit("listmodel.Slice.Set", ReplaceChange(index, 1))
}

// Reset replaces the whole sequence contents.
func (s *Slice[T]) Reset(items []T) {
	s.items = append(s.items[:0:0], items...)
	s.changed.emit("listmodel.Slice.Reset", ResetChange(len(s.items)))
}
