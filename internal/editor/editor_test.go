package editor

import (
	"reflect"
	"testing"
)

type record struct {
	Title string
}

func TestRemoveShiftsLaterEntries(t *testing.T) {
	ed := New[record]()
	ed.Load([]record{{"a"}, {"b"}, {"c"}, {"d"}})

	if err := ed.Remove(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ed.Len() != 3 {
		t.Fatalf("expected length 3, got %d", ed.Len())
	}

	want := []record{{"a"}, {"c"}, {"d"}}
	if !reflect.DeepEqual(ed.Values(), want) {
		t.Fatalf("expected %v, got %v", want, ed.Values())
	}
}

func TestRemoveBounds(t *testing.T) {
	ed := New[record]()
	ed.Load([]record{{"a"}})

	if err := ed.Remove(1); err == nil {
		t.Fatalf("expected out of range error")
	}
	if err := ed.Remove(-1); err == nil {
		t.Fatalf("expected out of range error")
	}

	if err := ed.Remove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ed.Remove(0); err == nil {
		t.Fatalf("expected error removing from empty editor")
	}
}

func TestAddAppendsEmptyRecord(t *testing.T) {
	ed := New[record]()
	ed.Load([]record{{"a"}})

	entry := ed.Add()

	if ed.Len() != 2 {
		t.Fatalf("expected length 2, got %d", ed.Len())
	}
	if entry.Value != (record{}) {
		t.Fatalf("expected empty record, got %v", entry.Value)
	}
	if entry.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	ed := New[record]()
	ed.Load([]record{{"a"}, {"b"}})

	before, err := ed.At(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ed.Load([]record{{"x"}})

	if ed.Len() != 1 {
		t.Fatalf("expected length 1, got %d", ed.Len())
	}

	after, err := ed.At(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.ID == before.ID {
		t.Fatalf("expected fresh identifiers after load")
	}
}

func TestSetByIDSurvivesRemoval(t *testing.T) {
	ed := New[record]()
	ed.Load([]record{{"a"}, {"b"}, {"c"}})

	entries := ed.Entries()
	target := entries[2]

	// Removing an earlier entry shifts positions but not identity.
	if err := ed.Remove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ed.SetByID(target.ID, record{"edited"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []record{{"b"}, {"edited"}}
	if !reflect.DeepEqual(ed.Values(), want) {
		t.Fatalf("expected %v, got %v", want, ed.Values())
	}
}

func TestRemoveByID(t *testing.T) {
	ed := New[record]()
	ed.Load([]record{{"a"}, {"b"}, {"c"}})

	entries := ed.Entries()
	if err := ed.RemoveByID(entries[1].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []record{{"a"}, {"c"}}
	if !reflect.DeepEqual(ed.Values(), want) {
		t.Fatalf("expected %v, got %v", want, ed.Values())
	}

	if err := ed.RemoveByID("missing"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}
