// Defines the Bus entity: a fixed stop sequence with a mutable traversal
// cursor, plus a memoized travel-time lookup against the road network.

package sim

import "fmt"

// Bus traverses a fixed route, one stop per dispatched arrival event.
// The head of the remaining route is always the bus's present location.
type Bus struct {
	ID int // unique, assigned sequentially starting at 0

	route    []CityID            // remaining route; route[0] is the current stop
	upcoming map[CityID]struct{} // set view of route for fast membership tests
	arrivals map[CityID]int64    // memoized arrival ticks, relative to the current stop

	// Finished is set the moment the route empties. A finished bus ignores
	// Advance and is never re-scheduled by the engine.
	Finished bool
}

// NewBus creates a bus over the given stop sequence. Route validity (length,
// road coverage) is the Simulator's concern; see Simulator.NewBus.
func NewBus(id int, stops []CityID) *Bus {
	upcoming := make(map[CityID]struct{}, len(stops))
	for _, c := range stops {
		upcoming[c] = struct{}{}
	}
	return &Bus{
		ID:       id,
		route:    append([]CityID(nil), stops...),
		upcoming: upcoming,
		arrivals: make(map[CityID]int64),
	}
}

// CurrentStop returns the bus's present location. Panics on an empty route:
// the engine must never consult the position of a finished bus.
func (b *Bus) CurrentStop() CityID {
	if len(b.route) == 0 {
		panic(fmt.Sprintf("CurrentStop: bus %d has an empty route", b.ID))
	}
	return b.route[0]
}

// IsUpcomingStop reports whether city is still ahead of the bus. The current
// stop is never upcoming, even though it is part of the original route.
func (b *Bus) IsUpcomingStop(city CityID) bool {
	if len(b.route) == 0 {
		return false
	}
	_, ok := b.upcoming[city]
	return ok && city != b.route[0]
}

// Advance moves the bus one stop forward: the current stop is popped off the
// route, removed from the upcoming set, and the travel-time memo is dropped
// since every cached arrival was computed from the old position. A bus whose
// route empties is finished; further calls are no-ops.
func (b *Bus) Advance() {
	if b.Finished {
		return
	}
	head := b.route[0]
	b.route = b.route[1:]
	delete(b.upcoming, head)
	b.arrivals = make(map[CityID]int64)
	if len(b.route) == 0 {
		b.Finished = true
	}
}

// TravelTimeTo returns the absolute tick at which the bus reaches dest when
// departing its current stop at now. The walk starts at the second element
// of the remaining route (the first is the current stop, already reached)
// and accumulates road times until dest. Results are memoized per
// destination until the next Advance.
//
// Callers must ensure IsUpcomingStop(dest) holds; anything else signals a
// bug in the engine's own bookkeeping and panics.
func (b *Bus) TravelTimeTo(net *Network, dest CityID, now int64) int64 {
	if arrival, ok := b.arrivals[dest]; ok {
		return arrival
	}
	total := now
	current := b.CurrentStop()
	reached := false
	for _, next := range b.route[1:] {
		t, ok := net.RoadBetween(current, next)
		if !ok {
			break
		}
		total += t
		if next == dest {
			reached = true
			break
		}
		current = next
	}
	if !reached {
		panic(fmt.Sprintf("TravelTimeTo: city %d is not an upcoming stop of bus %d", dest, b.ID))
	}
	b.arrivals[dest] = total
	return total
}

// RemainingStops returns a copy of the remaining route, current stop first.
func (b *Bus) RemainingStops() []CityID {
	return append([]CityID(nil), b.route...)
}

// This method returns a human-readable string representation of a Bus.
func (b *Bus) String() string {
	return fmt.Sprintf("Bus: (ID: %d, RemainingStops: %v, Finished: %v)", b.ID, b.route, b.Finished)
}
