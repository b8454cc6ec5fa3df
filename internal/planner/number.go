package planner

import (
	"strconv"
	"sync"
	"time"
)

// TripNumberPrefix starts every trip number.
const TripNumberPrefix = "TRIP"

// NumberGenerator issues "TRIP<unix seconds>" numbers. Within one generator the
// numeric part strictly increases: when the clock has not advanced past the
// last issued value, the next second is used instead.
type NumberGenerator struct {
	Now func() time.Time

	mu   sync.Mutex
	last int64
}

func NewNumberGenerator(now func() time.Time) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	return &NumberGenerator{Now: now}
}

func (g *NumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	n := now().UTC().Unix()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return FormatTripNumber(n)
}

func FormatTripNumber(seconds int64) string {
	return TripNumberPrefix + strconv.FormatInt(seconds, 10)
}
