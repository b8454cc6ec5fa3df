package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestErrorKindsSurviveWrapping(t *testing.T) {
	base := errors.New("boom")
	nf := fmt.Errorf("lookup: %w", NotFoundError{Resource: "trip", Key: "TRIP1", Err: base})
	if !IsNotFound(nf) {
		t.Fatalf("expected wrapped not found to be detected")
	}
	if !errors.Is(nf, base) {
		t.Fatalf("expected underlying error to be reachable")
	}
	if got := (NotFoundError{Resource: "trip", Key: "TRIP1"}).Error(); got != "trip TRIP1 not found" {
		t.Fatalf("unexpected message %q", got)
	}

	if !IsConflict(fmt.Errorf("insert: %w", ConflictError{Resource: "trip"})) {
		t.Fatalf("expected conflict to be detected")
	}
	if IsValidation(ConflictError{}) {
		t.Fatalf("conflict must not be reported as validation")
	}
	if got := (ValidationError{Field: "rating", Msg: "must be between 0 and 5"}).Error(); got != "rating: must be between 0 and 5" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		page       Page
		n          int
		start, end int
	}{
		{Page{Offset: 0, Limit: 100}, 5, 0, 5},
		{Page{Offset: 2, Limit: 2}, 5, 2, 4},
		{Page{Offset: 10, Limit: 2}, 5, 5, 5},
		{Page{Offset: -1, Limit: 1}, 5, 0, 1},
		{Page{Offset: 1, Limit: 0}, 5, 1, 1},
		{Page{Offset: 1, Limit: -1}, 5, 1, 5},
		{Page{Offset: 1, Limit: math.MaxInt}, 5, 1, 5},
		{Page{Offset: math.MaxInt, Limit: math.MaxInt}, 5, 5, 5},
	}
	for _, tc := range cases {
		start, end := tc.page.Window(tc.n)
		if start != tc.start || end != tc.end {
			t.Errorf("Window(%+v, %d) = [%d,%d), want [%d,%d)", tc.page, tc.n, start, end, tc.start, tc.end)
		}
	}
}
