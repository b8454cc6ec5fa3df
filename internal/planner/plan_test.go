package planner

import (
	"strings"
	"testing"
)

func TestGenerateSpecialRoute(t *testing.T) {
	got := Generate("Sulthan Bathery", "IIIT Kottayam", "19:00", "bus")
	if got != SulthanBatheryToIIITKottayam.Plan {
		t.Fatalf("expected fixed itinerary, got:\n%s", got)
	}
	for _, want := range []string{"Pala Kottaramattom", "₹280", "Option A", "Option B"} {
		if !strings.Contains(got, want) {
			t.Errorf("plan missing %q", want)
		}
	}
}

func TestGenerateSpecialRouteIsCaseInsensitiveOnEndpoints(t *testing.T) {
	got := Generate("Near SULTHAN BATHERY town", "iiit kottayam campus", "19:00", "bus")
	if got != SulthanBatheryToIIITKottayam.Plan {
		t.Fatalf("expected endpoint match to ignore case")
	}
}

func TestGenerateSpecialRouteRequiresExactMode(t *testing.T) {
	for _, mode := range []string{"Bus", "car", "bus "} {
		got := Generate("Sulthan Bathery", "IIIT Kottayam", "19:00", mode)
		if got == SulthanBatheryToIIITKottayam.Plan {
			t.Errorf("mode %q must not select the fixed itinerary", mode)
		}
		if !strings.Contains(got, "via "+mode) {
			t.Errorf("mode %q: expected generic plan, got:\n%s", mode, got)
		}
	}
}

func TestGenerateGenericPlan(t *testing.T) {
	got := Generate("A", "B", "08:00", "car")
	if !strings.Contains(got, "Travel Plan from A to B") {
		t.Fatalf("missing header, got:\n%s", got)
	}
	if !strings.Contains(got, "1. Departure: 08:00 via car") {
		t.Fatalf("missing departure line, got:\n%s", got)
	}
	if !strings.Contains(got, "5. Carry necessary identification and travel documents") {
		t.Fatalf("missing final step, got:\n%s", got)
	}
}

func TestGenericPlanKeepsOriginalCasing(t *testing.T) {
	got := Generate("Sulthan Bathery", "Kochi", "06:30", "bus")
	if !strings.HasPrefix(got, "Travel Plan from Sulthan Bathery to Kochi:") {
		t.Fatalf("unexpected header:\n%s", got)
	}
}

func TestPlannerRulesAreCheckedInOrder(t *testing.T) {
	first := Rule{Name: "first", Mode: "train", OriginContains: "kochi", DestinationContains: "", Plan: "first"}
	second := Rule{Name: "second", Mode: "train", OriginContains: "kochi", DestinationContains: "pala", Plan: "second"}
	p := New(first, second)

	if got := p.Generate(Request{Origin: "Kochi", Destination: "Pala", Mode: "train"}); got != "first" {
		t.Fatalf("expected first matching rule, got %q", got)
	}
	if got := New(second, first).Generate(Request{Origin: "Kochi", Destination: "Pala", Mode: "train"}); got != "second" {
		t.Fatalf("expected rule order to decide, got %q", got)
	}
}
