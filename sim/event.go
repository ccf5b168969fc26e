// Defines the Event record: how many passengers got on and off a bus at a
// city at a scheduled tick.

package sim

import "fmt"

// Event records boarding and alighting for one bus arriving at one city.
// It is created when the arrival is first scheduled, accumulates counts
// while still pending in the Schedule (same-slot schedules merge into it),
// and is frozen once dispatched.
type Event struct {
	BusID    int
	City     CityID
	Tick     int64 // scheduled arrival tick
	Boarded  int64 // passengers who got on the bus at City
	Alighted int64 // passengers who got off the bus at City
}

// This method returns a human-readable string representation of an Event.
func (e *Event) String() string {
	return fmt.Sprintf("Event: (Bus: %d, City: %d, Tick: %d, Boarded: %d, Alighted: %d)",
		e.BusID, e.City, e.Tick, e.Boarded, e.Alighted)
}
