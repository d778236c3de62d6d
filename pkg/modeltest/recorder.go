// Package modeltest provides test support for observing listmodel
// notifications.
package modeltest

import (
	"fmt"

	"github.com/go-drift/listmodel/pkg/listmodel"
)

// Recorder captures the notifications a [listmodel.Model] emits, in order,
// so tests can assert on event content and interleaving.
type Recorder[T any] struct {
	changes    []listmodel.Change
	selections []int
	events     []string
	stops      []func()
}

// Record subscribes a new Recorder to both of the model's notifications.
func Record[T any](m listmodel.Model[T]) *Recorder[T] {
	r := &Recorder[T]{}
	r.stops = append(r.stops,
		m.AddChangeListener(func(c listmodel.Change) {
			r.changes = append(r.changes, c)
			r.events = append(r.events, "changed:"+c.String())
		}),
		m.AddSelectionListener(func(index int) {
			r.selections = append(r.selections, index)
			r.events = append(r.events, fmt.Sprintf("selection:%d", index))
		}),
	)
	return r
}

// Changes returns the structural changes recorded so far.
func (r *Recorder[T]) Changes() []listmodel.Change {
	return r.changes
}

// Selections returns the selection indices recorded so far.
func (r *Recorder[T]) Selections() []int {
	return r.selections
}

// Events returns every recorded notification in arrival order, rendered
// as "changed:<change>" or "selection:<index>".
func (r *Recorder[T]) Events() []string {
	return r.events
}

// Reset discards everything recorded so far.
func (r *Recorder[T]) Reset() {
	r.changes = nil
	r.selections = nil
	r.events = nil
}

// Stop unsubscribes the recorder from the model.
func (r *Recorder[T]) Stop() {
	for _, stop := range r.stops {
		stop()
	}
	r.stops = nil
}
