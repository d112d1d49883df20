// Package editor manages one ordered, dynamically-sized list of structured
// records. Entries carry a synthetic identifier assigned at load/add time,
// so interactive callers can address an entry by identity and stay immune
// to the index shift a removal causes. Positional operations remain
// available for callers that re-render between mutations.
package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry wraps one record with its stable identifier.
type Entry[T any] struct {
	ID    string
	Value T
}

type Editor[T any] struct {
	entries []Entry[T]
}

func New[T any]() *Editor[T] {
	return &Editor[T]{}
}

// Load replaces the managed sequence wholesale. Previous entries and any
// unsaved edits to them are discarded; every entry gets a fresh identifier.
func (e *Editor[T]) Load(values []T) {
	e.entries = make([]Entry[T], 0, len(values))
	for _, v := range values {
		e.entries = append(e.entries, Entry[T]{ID: uuid.NewString(), Value: v})
	}
}

func (e *Editor[T]) Len() int {
	return len(e.entries)
}

// Values returns the records in positional order, shaped for persistence.
func (e *Editor[T]) Values() []T {
	values := make([]T, 0, len(e.entries))
	for _, entry := range e.entries {
		values = append(values, entry.Value)
	}

	return values
}

func (e *Editor[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(e.entries))
	copy(out, e.entries)

	return out
}

// Add appends an empty record and returns it.
func (e *Editor[T]) Add() Entry[T] {
	entry := Entry[T]{ID: uuid.NewString()}
	e.entries = append(e.entries, entry)

	return entry
}

func (e *Editor[T]) At(i int) (Entry[T], error) {
	if i < 0 || i >= len(e.entries) {
		return Entry[T]{}, fmt.Errorf("index %d out of range [0,%d)", i, len(e.entries))
	}

	return e.entries[i], nil
}

// Set overwrites the record at position i, keeping its identifier.
func (e *Editor[T]) Set(i int, v T) error {
	if i < 0 || i >= len(e.entries) {
		return fmt.Errorf("index %d out of range [0,%d)", i, len(e.entries))
	}

	e.entries[i].Value = v

	return nil
}

// SetByID overwrites the record carrying the given identifier.
func (e *Editor[T]) SetByID(id string, v T) error {
	for i := range e.entries {
		if e.entries[i].ID == id {
			e.entries[i].Value = v
			return nil
		}
	}

	return fmt.Errorf("no entry with id %s", id)
}

// Remove deletes the record at position i. All later records shift down by
// one, so positional handles held across a removal are stale.
func (e *Editor[T]) Remove(i int) error {
	if i < 0 || i >= len(e.entries) {
		return fmt.Errorf("index %d out of range [0,%d)", i, len(e.entries))
	}

	e.entries = append(e.entries[:i], e.entries[i+1:]...)

	return nil
}

// RemoveByID deletes the record carrying the given identifier, preserving
// the order of the rest.
func (e *Editor[T]) RemoveByID(id string) error {
	for i := range e.entries {
		if e.entries[i].ID == id {
			return e.Remove(i)
		}
	}

	return fmt.Errorf("no entry with id %s", id)
}
