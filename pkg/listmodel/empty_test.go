package listmodel_test

import (
	"testing"

	"github.com/go-drift/listmodel/pkg/listmodel"
	"github.com/go-drift/listmodel/pkg/modeltest"
)

func TestEmptyDegenerateAccessors(t *testing.T) {
	m := listmodel.NewEmpty[string]()

	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
	if _, ok := m.ItemAt(0); ok {
		t.Error("ItemAt(0) should report absence")
	}
	if got := m.TextAt(0); got != "" {
		t.Errorf("TextAt(0) = %q, want empty", got)
	}
	if m.KeyFunc() != nil {
		t.Error("KeyFunc should be nil")
	}
	if _, ok := m.SelectedItem(); ok {
		t.Error("SelectedItem should report absence")
	}
}

func TestEmptySelectionAlwaysNone(t *testing.T) {
	m := listmodel.NewEmpty[string]()
	rec := modeltest.Record[string](m)

	m.SetSelectedIndex(3)
	if m.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex = %d, want -1", m.SelectedIndex())
	}
	m.SetSelectedItem("anything")
	if m.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex = %d, want -1", m.SelectedIndex())
	}
	if len(rec.Selections()) != 0 {
		t.Errorf("unexpected selection events %v", rec.Selections())
	}
}

func TestEmptyInvalidateEmitsReset(t *testing.T) {
	m := listmodel.NewEmpty[int]()
	rec := modeltest.Record[int](m)

	m.Invalidate()

	changes := rec.Changes()
	if len(changes) != 1 || changes[0] != listmodel.ResetChange(0) {
		t.Errorf("changes = %v, want one ResetChange(0)", changes)
	}
}

func TestEmptyDisposeDropsListeners(t *testing.T) {
	m := listmodel.NewEmpty[int]()
	rec := modeltest.Record[int](m)

	m.Dispose()
	m.Invalidate()

	if len(rec.Events()) != 0 {
		t.Errorf("events after Dispose: %v", rec.Events())
	}
}
