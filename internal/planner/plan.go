// Package planner builds the textual travel plan attached to a trip and
// issues trip numbers.
package planner

import (
	"fmt"
	"strings"
)

// Request is the input of plan generation. Fields are used verbatim in output.
type Request struct {
	Origin        string
	Destination   string
	DepartureTime string
	Mode          string
}

// Rule is a fixed itinerary for one known route. Mode is compared exactly;
// OriginContains and DestinationContains are lowercase substrings matched
// against the lowercased request endpoints.
type Rule struct {
	Name                string
	Mode                string
	OriginContains      string
	DestinationContains string
	Plan                string
}

func (r Rule) Matches(req Request) bool {
	if r.Mode != req.Mode {
		return false
	}
	origin := strings.ToLower(req.Origin)
	dest := strings.ToLower(req.Destination)
	return strings.Contains(origin, r.OriginContains) && strings.Contains(dest, r.DestinationContains)
}

// SulthanBatheryToIIITKottayam is the overnight KSRTC itinerary via Pala.
var SulthanBatheryToIIITKottayam = Rule{
	Name:                "sulthan-bathery-iiit-kottayam",
	Mode:                "bus",
	OriginContains:      "sulthan bathery",
	DestinationContains: "iiit kottayam",
	Plan: strings.Join([]string{
		"1. Take KSRTC bus from Sulthan Bathery to Pala Kottaramattom bus stand",
		"2. Journey time: 10h 30m, Arrival: 5:30 AM next day (Fare: ₹280)",
		"3. From Pala, you have two options:",
		"   Option A: Take auto directly to IIIT Kottayam, Nechipuzhoor (₹50-80)",
		"   Option B: Wait till 7:15 AM for bus to Ramapuram via Nechipuzhoor (₹15)",
		"4. If choosing Option B: Get down at Nechipuzhoor and take auto to IIIT Kottayam (₹30-50)",
		"5. Total journey time: 11-12 hours",
		"6. Estimated total cost: ₹310-360",
	}, "\n"),
}

// DefaultRules are checked in order before the generic template.
var DefaultRules = []Rule{SulthanBatheryToIIITKottayam}

// Planner generates plans from an ordered rule list with a generic fallback.
type Planner struct {
	Rules []Rule
}

func New(rules ...Rule) Planner {
	return Planner{Rules: rules}
}

// Default returns a planner with DefaultRules.
func Default() Planner {
	return New(DefaultRules...)
}

// Generate returns the first matching rule's plan, or the generic plan.
func (p Planner) Generate(req Request) string {
	for _, r := range p.Rules {
		if r.Matches(req) {
			return r.Plan
		}
	}
	return GenericPlan(req)
}

// GenericPlan is the five-step template used when no rule matches.
func GenericPlan(req Request) string {
	return strings.Join([]string{
		fmt.Sprintf("Travel Plan from %s to %s:", req.Origin, req.Destination),
		fmt.Sprintf("1. Departure: %s via %s", req.DepartureTime, req.Mode),
		"2. Check local transport options and timings",
		"3. Consider booking tickets in advance for better rates",
		"4. Keep alternative routes ready in case of delays",
		"5. Carry necessary identification and travel documents",
	}, "\n")
}

// Generate builds a plan with the default rules.
func Generate(origin, destination, departureTime, mode string) string {
	return Default().Generate(Request{
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departureTime,
		Mode:          mode,
	})
}
