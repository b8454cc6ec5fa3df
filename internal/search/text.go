// Package search implements substring search over places and bus routes.
// Matching is case-sensitive and results keep store order.
package search

import (
	"strings"

	"travelsuggester/internal/domain/models"
)

const (
	MaxPlaceResults       = 20
	MaxNearbyRouteResults = 20
)

// Places returns places whose name contains query, at most MaxPlaceResults.
func Places(query string, places []models.Place) []models.Place {
	out := make([]models.Place, 0)
	for _, p := range places {
		if !strings.Contains(p.Name, query) {
			continue
		}
		out = append(out, p)
		if len(out) == MaxPlaceResults {
			break
		}
	}
	return out
}

// BusRoutes returns routes whose name contains origin or destination.
// A route matching either endpoint qualifies; the result is not capped.
func BusRoutes(origin, destination string, routes []models.BusRoute) []models.BusRoute {
	out := make([]models.BusRoute, 0)
	for _, r := range routes {
		if strings.Contains(r.RouteName, origin) || strings.Contains(r.RouteName, destination) {
			out = append(out, r)
		}
	}
	return out
}

// NearbyBusRoutes returns routes whose name contains location, at most MaxNearbyRouteResults.
func NearbyBusRoutes(location string, routes []models.BusRoute) []models.BusRoute {
	out := make([]models.BusRoute, 0)
	for _, r := range routes {
		if !strings.Contains(r.RouteName, location) {
			continue
		}
		out = append(out, r)
		if len(out) == MaxNearbyRouteResults {
			break
		}
	}
	return out
}
