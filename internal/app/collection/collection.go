// Package collection implements the ordered-collection editing discipline
// shared by every structured sub-record list on a program (faculty members,
// subjects, admission requirements, statistics, career opportunities).
//
// All operations are pure: they return a new slice and never touch the
// input. After every operation the order values of an N-element collection
// are exactly 0..N-1, each appearing once, matching array position.
package collection

import "github.com/google/uuid"

// Record is any program sub-record with a stable identifier and a dense,
// zero-based order field. WithOrder returns a copy with the order replaced,
// which keeps untouched elements shared between input and output slices.
type Record[T any] interface {
	Key() string
	WithOrder(order int) T
}

// NewID returns a fresh record identifier. Identifiers only reconcile edits
// within one editing session, so process-lifetime uniqueness is enough.
func NewID() string {
	return uuid.NewString()
}

// Append adds item at the end of the collection with order len(items).
func Append[T Record[T]](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item.WithOrder(len(items)))
}

// Update replaces the record whose id matches, keeping its array position
// and order. patch receives the current value and returns the replacement.
// An id that is no longer present is a benign no-op: the update raced a
// delete and the stale edit is dropped.
func Update[T Record[T]](items []T, id string, patch func(T) T) []T {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	// Order always equals array index, so restoring it from idx keeps the
	// record in place even if the patch tampered with the order field.
	out[idx] = patch(out[idx]).WithOrder(idx)
	return out
}

// Remove deletes the record whose id matches and renumbers the remainder
// to 0..N-2 in their existing relative sequence. Missing ids are a no-op.
func Remove[T Record[T]](items []T, id string) []T {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return Renumber(out)
}

// Move removes the element at from and reinserts it at to, shifting the
// elements in between by one slot, then renumbers everything. Indices are
// guaranteed valid by the caller (the drag surface); Move does not clamp.
func Move[T Record[T]](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return Renumber(out)
}

// Renumber rewrites every element's order to its array index.
func Renumber[T Record[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.WithOrder(i)
	}
	return out
}

func indexOf[T Record[T]](items []T, id string) int {
	for i, item := range items {
		if item.Key() == id {
			return i
		}
	}
	return -1
}
