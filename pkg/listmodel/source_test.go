package listmodel_test

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/listmodel/pkg/errors"
	"github.com/go-drift/listmodel/pkg/listmodel"
	"github.com/go-drift/listmodel/pkg/modeltest"
)

// fakeSource is a pull-only source over a mutable slice, standing in for
// the notification-free data sources the adapter bridges.
type fakeSource struct {
	items []string
}

func (f *fakeSource) Len() int { return len(f.items) }

func (f *fakeSource) At(i int) string { return f.items[i] }

func (f *fakeSource) Text(i int) string { return "row " + f.items[i] }

func newSourceModel(t *testing.T, items ...string) (*fakeSource, *listmodel.SourceModel[string]) {
	t.Helper()
	src := &fakeSource{items: items}
	m, err := listmodel.NewSourceModel[string](src)
	if err != nil {
		t.Fatalf("NewSourceModel: %v", err)
	}
	return src, m
}

func TestNewSourceModelNilRejected(t *testing.T) {
	_, err := listmodel.NewSourceModel[string](nil)
	if err == nil {
		t.Fatal("expected bind error")
	}
	if !stderrors.Is(err, errors.ErrNilSource) {
		t.Errorf("err = %v, want ErrNilSource", err)
	}
}

func TestSourceModelReadSurface(t *testing.T) {
	_, m := newSourceModel(t, "a", "b")

	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if item, ok := m.ItemAt(0); !ok || item != "a" {
		t.Errorf("ItemAt(0) = %q, %v", item, ok)
	}
	if got := m.TextAt(1); got != "row b" {
		t.Errorf("TextAt(1) = %q, want %q", got, "row b")
	}
	if m.KeyFunc() != nil {
		t.Error("KeyFunc should be nil for a legacy source")
	}
}

func TestSourceModelSelection(t *testing.T) {
	_, m := newSourceModel(t, "a", "b", "c")

	m.SetSelectedIndex(7)
	if m.SelectedIndex() != 2 {
		t.Errorf("SelectedIndex = %d, want 2", m.SelectedIndex())
	}
	m.SetSelectedItem("b")
	if m.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", m.SelectedIndex())
	}
	m.SetSelectedItem("missing")
	if m.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex = %d, want -1", m.SelectedIndex())
	}
}

func TestSourceModelInvalidateClampsAndEmitsReset(t *testing.T) {
	src, m := newSourceModel(t, "a", "b", "c")
	m.SetSelectedIndex(2)
	rec := modeltest.Record[string](m)

	// The source shrinks behind the adapter's back; nothing fires until
	// the caller invalidates.
	src.items = src.items[:1]
	if len(rec.Events()) != 0 {
		t.Fatalf("unexpected events before Invalidate: %v", rec.Events())
	}

	m.Invalidate()

	wantEvents := []string{"changed:reset @0 x1", "selection:0"}
	got := rec.Events()
	if len(got) != 2 || got[0] != wantEvents[0] || got[1] != wantEvents[1] {
		t.Errorf("events = %v, want %v", got, wantEvents)
	}
	if m.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex = %d, want 0", m.SelectedIndex())
	}
}

func TestSourceModelInvalidateOnUnchangedSourceKeepsSelection(t *testing.T) {
	_, m := newSourceModel(t, "a", "b")
	m.SetSelectedIndex(1)
	rec := modeltest.Record[string](m)

	m.Invalidate()

	if m.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", m.SelectedIndex())
	}
	if len(rec.Selections()) != 0 {
		t.Errorf("unexpected selection events %v", rec.Selections())
	}
	if len(rec.Changes()) != 1 {
		t.Errorf("changed fired %d times, want 1", len(rec.Changes()))
	}
}
