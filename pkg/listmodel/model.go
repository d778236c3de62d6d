package listmodel

import (
	"reflect"
	"time"

	"github.com/go-drift/listmodel/pkg/errors"
)

// Model is the read and selection contract widgets consume.
//
// A Model presents a uniform surface over some item sequence: a count,
// per-index items and display text, and a single selection cursor that the
// model keeps inside [-1, Len()-1] across structural edits. Exactly three
// implementations exist: [Bound] over an observable sequence, [SourceModel]
// over a pull-only source, and [Empty] for the no-data case.
//
// Models are NOT thread-safe. All reads, writes, and listener callbacks
// must happen on one logical thread, normally the UI thread.
type Model[T any] interface {
	// Len returns the number of items.
	Len() int
	// ItemAt returns the item at index. The second result is false when
	// index is outside [0, Len()).
	ItemAt(index int) (T, bool)
	// TextAt returns the display text for the item at index, or "" when
	// index is out of range. Without a display projection the item's
	// default textual form is used.
	TextAt(index int) string
	// KeyFunc returns the identity-key projection, or nil when none is
	// configured.
	KeyFunc() func(T) any
	// SelectedIndex returns the current selection, -1 for none.
	SelectedIndex() int
	// SetSelectedIndex moves the selection. The value is clamped into
	// [-1, Len()-1]; a "selection changed" notification fires only when
	// the stored value actually changes.
	SetSelectedIndex(index int)
	// SelectedItem returns the currently selected item. The second result
	// is false when nothing is selected.
	SelectedItem() (T, bool)
	// SetSelectedItem selects the given value if it is present in the
	// sequence, and clears the selection otherwise.
	SetSelectedItem(item T)
	// Invalidate re-derives the selection and emits a reset Change, for
	// content changes the model could not observe directly.
	Invalidate()
	// AddChangeListener subscribes to structural changes.
	// It returns an unsubscribe function.
	AddChangeListener(fn func(Change)) func()
	// AddSelectionListener subscribes to selection changes; the callback
	// receives the new selected index. It returns an unsubscribe function.
	AddSelectionListener(fn func(int)) func()
	// Dispose releases the model's subscriptions and listeners.
	// The model must not be used afterwards.
	Dispose()
}

// clamp bounds v into [lo, hi]. hi may be below lo, in which case lo wins.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// listenerSet is the notification primitive shared by models and sequences.
// Listeners are keyed by an incrementing id; Add returns an unsubscribe
// closure. A panicking listener is recovered and reported through the
// global error handler so one bad subscriber cannot abort a dispatch pass.
type listenerSet[A any] struct {
	fns    map[int]func(A)
	nextID int
}

func (s *listenerSet[A]) add(fn func(A)) func() {
	if s.fns == nil {
		s.fns = make(map[int]func(A))
	}
	id := s.nextID
	s.nextID++
	s.fns[id] = fn
	return func() {
		delete(s.fns, id)
	}
}

func (s *listenerSet[A]) emit(op string, arg A) {
	for _, fn := range s.fns {
		s.invoke(op, fn, arg)
	}
}

func (s *listenerSet[A]) invoke(op string, fn func(A), arg A) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         op,
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	fn(arg)
}

func (s *listenerSet[A]) len() int {
	return len(s.fns)
}

func (s *listenerSet[A]) clear() {
	s.fns = nil
}

// reportRange reports an out-of-range item or text query.
func reportRange(op string, index, n int) {
	errors.Report(&errors.ModelError{
		Op:    op,
		Kind:  errors.KindRange,
		Err:   errors.ErrIndexOutOfRange,
		Index: index,
		Len:   n,
	})
}

// findIndex resolves a value to its index in a sequence of n elements read
// through at. Matching tries pointer identity first, then structural
// equality, then key equality when keyOf is non-nil. Returns -1 when the
// value is absent.
func findIndex[T any](n int, at func(int) T, keyOf func(T) any, v T) int {
	if pv := reflect.ValueOf(v); pv.IsValid() && pv.Kind() == reflect.Pointer && !pv.IsNil() {
		for i := 0; i < n; i++ {
			ov := reflect.ValueOf(at(i))
			if ov.IsValid() && ov.Kind() == reflect.Pointer && ov.Pointer() == pv.Pointer() {
				return i
			}
		}
	}
	for i := 0; i < n; i++ {
		if reflect.DeepEqual(at(i), v) {
			return i
		}
	}
	if keyOf != nil {
		want := keyOf(v)
		for i := 0; i < n; i++ {
			if keyEqual(keyOf(at(i)), want) {
				return i
			}
		}
	}
	return -1
}

// keyEqual compares two identity keys. Comparable keys use ==; anything
// else falls back to deep equality.
func keyEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
