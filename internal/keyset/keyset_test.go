// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.
package keyset

import (
	"slices"
	"testing"
)

func TestDiff(t *testing.T) {
	a := New("A", "B", "C")
	b := New("B")

	got := Diff(a, b)
	if got.Len() != 2 || !got.Has("A") || !got.Has("C") {
		t.Fatalf("expected {A C}, got %v", Sorted(got))
	}
	if got.Has("B") {
		t.Fatalf("B should not survive the difference")
	}
}

func TestDiff_SameSetIsEmpty(t *testing.T) {
	a := New("A", "B")
	if got := Diff(a, a); got.Len() != 0 {
		t.Fatalf("expected empty set, got %v", Sorted(got))
	}
}

func TestDiff_EmptyOperands(t *testing.T) {
	a := New("A", "B")
	empty := New[string]()

	if got := Diff(a, empty); got.Len() != 2 {
		t.Fatalf("A - empty should equal A, got %v", Sorted(got))
	}
	if got := Diff(empty, a); got.Len() != 0 {
		t.Fatalf("empty - B should be empty, got %v", Sorted(got))
	}
}

func TestSorted(t *testing.T) {
	s := New("ZULU", "ALPHA", "MIKE")
	got := Sorted(s)
	want := []string{"ALPHA", "MIKE", "ZULU"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddHasLen(t *testing.T) {
	s := New[string]()
	s.Add("KEY")
	s.Add("KEY") // duplicate insert must not grow the set
	if !s.Has("KEY") || s.Len() != 1 {
		t.Fatalf("unexpected set state: len=%d", s.Len())
	}
}
