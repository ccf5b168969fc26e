// Implements the Schedule: a time-bucketed map of pending arrival events
// with one slot per (tick, bus) pair.

package sim

import "sort"

// Schedule maps simulated tick -> bus ID -> pending arrival event. At most
// one event is pending per (tick, bus); scheduling onto an occupied slot
// merges counts additively instead of replacing the entry. Ticks are
// processed in ascending order; within a tick, events come out in ascending
// bus-ID order so a given input always replays identically.
type Schedule struct {
	buckets map[int64]map[int]*Event
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{buckets: make(map[int64]map[int]*Event)}
}

// Merge folds boarded/alighted counts into the (tick, busID) slot, creating
// the slot -- with the given city -- when absent. An existing slot keeps its
// city. The returned event is the live slot, still mutable until its tick is
// dispatched.
func (s *Schedule) Merge(tick int64, busID int, city CityID, boarded, alighted int64) *Event {
	slots, ok := s.buckets[tick]
	if !ok {
		slots = make(map[int]*Event)
		s.buckets[tick] = slots
	}
	ev, ok := slots[busID]
	if !ok {
		ev = &Event{BusID: busID, City: city, Tick: tick}
		slots[busID] = ev
	}
	ev.Boarded += boarded
	ev.Alighted += alighted
	return ev
}

// Due returns the events pending at exactly tick, in ascending bus-ID order.
// No partial or future matches.
func (s *Schedule) Due(tick int64) []*Event {
	slots := s.buckets[tick]
	if len(slots) == 0 {
		return nil
	}
	ids := make([]int, 0, len(slots))
	for id := range slots {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	due := make([]*Event, 0, len(ids))
	for _, id := range ids {
		due = append(due, slots[id])
	}
	return due
}

// Take retires the bucket for tick and returns its events in ascending
// bus-ID order. The engine uses it to snapshot a tick before resolution:
// events merged in afterwards land in strictly later buckets and are not
// visited in the same pass.
func (s *Schedule) Take(tick int64) []*Event {
	due := s.Due(tick)
	delete(s.buckets, tick)
	return due
}

// Len returns the number of pending events across all ticks.
func (s *Schedule) Len() int {
	n := 0
	for _, slots := range s.buckets {
		n += len(slots)
	}
	return n
}
