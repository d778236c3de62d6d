package listmodel

import "testing"

func TestChangeKindString(t *testing.T) {
	tests := []struct {
		kind ChangeKind
		want string
	}{
		{ChangeReset, "reset"},
		{ChangeAdd, "add"},
		{ChangeRemove, "remove"},
		{ChangeMove, "move"},
		{ChangeReplace, "replace"},
		{ChangeKind(42), "ChangeKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ChangeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestChangeConstructorsKeepOldIndexSentinel(t *testing.T) {
	tests := []struct {
		name string
		c    Change
		want Change
	}{
		{"reset", ResetChange(3), Change{Kind: ChangeReset, Index: 0, Count: 3, OldIndex: -1}},
		{"add", AddChange(2, 4), Change{Kind: ChangeAdd, Index: 2, Count: 4, OldIndex: -1}},
		{"remove", RemoveChange(1, 2), Change{Kind: ChangeRemove, Index: 1, Count: 2, OldIndex: -1}},
		{"move", MoveChange(0, 5), Change{Kind: ChangeMove, Index: 5, Count: 1, OldIndex: 0}},
		{"replace", ReplaceChange(3, 1), Change{Kind: ChangeReplace, Index: 3, Count: 1, OldIndex: -1}},
	}
	for _, tt := range tests {
		if tt.c != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.c, tt.want)
		}
	}
}

func TestChangeString(t *testing.T) {
	if got, want := MoveChange(1, 3).String(), "move 1->3 x1"; got != want {
		t.Errorf("MoveChange.String() = %q, want %q", got, want)
	}
	if got, want := AddChange(0, 2).String(), "add @0 x2"; got != want {
		t.Errorf("AddChange.String() = %q, want %q", got, want)
	}
}
