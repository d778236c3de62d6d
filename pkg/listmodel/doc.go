// Package listmodel provides observable list and selection models for
// widget toolkits.
//
// A list, grid, or combo widget rarely owns the data it displays. This
// package sits between such a widget and an externally owned, mutable
// sequence: it presents a uniform read surface (count, per-index item,
// per-index display text) plus a single selection cursor, and keeps that
// cursor valid, and where possible anchored to the same logical item, as
// the sequence is edited out from under it.
//
// # Models
//
// [Model] is the contract widgets consume. It has exactly three
// implementations:
//
//   - [Bound] wraps an [ObservableList] and reconciles the selection on
//     every reported edit. This is the implementation almost all callers
//     want.
//   - [SourceModel] bridges a pull-only [Source] with no change
//     notifications; selection tracking is purely positional.
//   - [Empty] is the zero-item model, used while no data exists.
//
// # Selection reconciliation
//
// When the sequence reports an insert, the cursor shifts to keep pointing
// at the same position's element. When the selected element is removed,
// the cursor snaps to whatever takes its place, or to none. When a single
// element moves, the cursor follows it. A model created with
// [NewKeyedBound] goes further: it caches an identity key for the
// selection and re-finds the same logical item after any edit, including
// a wholesale reset, as long as the item is still present. The fallback in
// every unhandled case is a conservative clamp into [-1, Len()-1]; no
// edit ever produces a failure.
//
// # Notifications
//
// Models emit two notifications in the AddListener style used throughout
// drift: a structural "changed" event carrying the [Change], and a
// "selection changed" event carrying the new index. After an edit the
// selection is reconciled before "changed" fires, so a subscriber that
// re-renders on "changed" and reads the selection observes a consistent
// post-edit state. "selection changed" fires only when the stored index
// actually differs.
//
// The subscription a [Bound] attaches to its sequence holds only a weak
// reference. Sequences routinely outlive individual widgets; once a model
// becomes unreachable the next edit removes the subscription instead of
// acting, so the sequence never pins the model in memory. Dispose offers
// deterministic detach.
//
// # Threading
//
// Models and [Slice] are not thread-safe. All reads, writes, and listener
// callbacks are assumed to occur on one logical thread, normally the UI
// thread. Notifications are synchronous: a listener that mutates the
// sequence from inside its own handler triggers a nested notification
// before the outer one returns. Reconciliation re-reads the live sequence
// at every step, so nested edits are processed safely, but the resulting
// interleaving with the outer re-render is the caller's to manage.
package listmodel
