package listmodel

import "fmt"

// ChangeKind identifies the structural edit described by a Change.
type ChangeKind int

const (
	// ChangeReset means the sequence contents were replaced wholesale, or
	// changed in a way the model could not observe edit by edit.
	ChangeReset ChangeKind = iota
	// ChangeAdd means a run of elements was inserted.
	ChangeAdd
	// ChangeRemove means a run of elements was deleted.
	ChangeRemove
	// ChangeMove means an element was relocated within the sequence.
	ChangeMove
	// ChangeReplace means a run of elements was overwritten in place.
	ChangeReplace
)

// String returns a human-readable representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeReset:
		return "reset"
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeMove:
		return "move"
	case ChangeReplace:
		return "replace"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change describes one structural edit to a sequence. It is an immutable
// value; sequences emit one Change per edit, after the edit has been applied.
//
// The meaning of Index and Count depends on Kind:
//
//   - ChangeAdd: Index is the position of the first inserted element,
//     Count the number inserted.
//   - ChangeRemove: Index is the position the first removed element occupied,
//     Count the number removed.
//   - ChangeMove: Index is the destination position, OldIndex the origin,
//     Count the number of elements moved.
//   - ChangeReplace: Index is the position of the first overwritten element,
//     Count the number overwritten.
//   - ChangeReset: Index is 0 and Count is the sequence length after the
//     reset, which may be 0.
//
// OldIndex is -1 for every kind except ChangeMove.
type Change struct {
	Kind     ChangeKind
	Index    int
	Count    int
	OldIndex int
}

func (c Change) String() string {
	if c.Kind == ChangeMove {
		return fmt.Sprintf("%s %d->%d x%d", c.Kind, c.OldIndex, c.Index, c.Count)
	}
	return fmt.Sprintf("%s @%d x%d", c.Kind, c.Index, c.Count)
}

// ResetChange describes a wholesale replacement of the sequence contents.
// count is the sequence length after the reset.
func ResetChange(count int) Change {
	return Change{Kind: ChangeReset, Index: 0, Count: count, OldIndex: -1}
}

// AddChange describes the insertion of count elements starting at index.
func AddChange(index, count int) Change {
	return Change{Kind: ChangeAdd, Index: index, Count: count, OldIndex: -1}
}

// RemoveChange describes the removal of count elements starting at index.
func RemoveChange(index, count int) Change {
	return Change{Kind: ChangeRemove, Index: index, Count: count, OldIndex: -1}
}

// MoveChange describes the relocation of a single element from oldIndex
// to newIndex.
func MoveChange(oldIndex, newIndex int) Change {
	return Change{Kind: ChangeMove, Index: newIndex, Count: 1, OldIndex: oldIndex}
}

// ReplaceChange describes count elements overwritten in place starting
// at index.
func ReplaceChange(index, count int) Change {
	return Change{Kind: ChangeReplace, Index: index, Count: count, OldIndex: -1}
}
