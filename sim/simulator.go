// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, the transit
// network, the bus fleet, the passenger ledger and the event schedule.
//
// The execution model is strictly sequential: Execute is the only mutator of
// simulation time and must run to completion before any other call touches
// the simulation. Callers exposing a Simulator to multiple goroutines must
// serialize every mutating call behind one lock.
type Simulator struct {
	// Clock is the current simulated tick. It starts at 0 and is advanced
	// only by Execute, always by the full requested window.
	Clock int64

	Network  *Network
	Buses    []*Bus
	Ledger   *Ledger
	Schedule *Schedule
	Metrics  *Metrics
}

// NewSimulator creates an empty simulation at tick 0.
func NewSimulator() *Simulator {
	return &Simulator{
		Network:  NewNetwork(),
		Buses:    make([]*Bus, 0),
		Ledger:   NewLedger(),
		Schedule: NewSchedule(),
		Metrics:  NewMetrics(),
	}
}

// NewCity creates a city and returns its identifier.
func (s *Simulator) NewCity(name string) CityID {
	return s.Network.AddCity(name)
}

// NewRoad creates an undirected road between a and b taking travelTime
// ticks to traverse.
func (s *Simulator) NewRoad(a, b CityID, travelTime int64) {
	s.Network.AddRoad(a, b, travelTime)
}

// NewBus validates the route, registers the bus and performs its departure:
// the bus leaves its origin stop immediately and its first arrival event is
// scheduled at the current tick, at the next stop of the route. Boarding
// therefore happens at the stops the bus arrives at, never at its origin.
//
// An invalid route (fewer than two stops, or a consecutive pair without a
// connecting road) is a configuration mistake and aborts construction.
func (s *Simulator) NewBus(stops []CityID) (*Bus, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("invalid bus route: a bus must have at least two stops, got %d", len(stops))
	}
	for i := 0; i+1 < len(stops); i++ {
		if _, ok := s.Network.RoadBetween(stops[i], stops[i+1]); !ok {
			return nil, fmt.Errorf("invalid bus route: no road between %s and %s",
				s.Network.CityName(stops[i]), s.Network.CityName(stops[i+1]))
		}
	}
	bus := NewBus(len(s.Buses), stops)
	s.Buses = append(s.Buses, bus)
	bus.Advance()
	s.Schedule.Merge(s.Clock, bus.ID, bus.CurrentStop(), 0, 0)
	logrus.Debugf("[tick %07d] Bus %d registered, first arrival at %s",
		s.Clock, bus.ID, s.Network.CityName(bus.CurrentStop()))
	return bus, nil
}

// AddPeople queues count passengers at from, waiting to travel to to.
func (s *Simulator) AddPeople(from, to CityID, count int64) error {
	if count < 1 {
		return fmt.Errorf("add people: count must be >= 1, got %d", count)
	}
	s.Ledger.AddPeople(from, to, count)
	return nil
}

// Execute advances the simulation by tickCount ticks and returns the events
// dispatched inside the window, in dispatch order. For each tick the due
// events are snapshotted, boarding is resolved against the ledger, the bus
// advances one stop and the finalized event is appended. Ticks without due
// events still elapse: the clock always moves by the full window.
func (s *Simulator) Execute(tickCount int64) []*Event {
	if tickCount <= 0 {
		return nil
	}
	end := s.Clock + tickCount
	var dispatched []*Event
	for tick := s.Clock; tick < end; tick++ {
		// Snapshot before resolution: boarding merges new events into
		// strictly later buckets, which belong to later passes.
		for _, ev := range s.Schedule.Take(tick) {
			bus := s.Buses[ev.BusID]
			logrus.Infof("[tick %07d] Bus %d at %s: %d got off",
				tick, bus.ID, s.Network.CityName(ev.City), ev.Alighted)
			s.resolveBoarding(ev, bus, tick)
			wasFinished := bus.Finished
			bus.Advance()
			if !wasFinished && bus.Finished {
				s.Metrics.BusesFinished++
				logrus.Infof("[tick %07d] Bus %d finished its route", tick, bus.ID)
			}
			dispatched = append(dispatched, ev)
			s.Metrics.EventsDispatched++
			s.Metrics.TotalBoarded += ev.Boarded
			s.Metrics.TotalAlighted += ev.Alighted
		}
	}
	s.Clock = end
	s.Metrics.TicksElapsed += tickCount
	return dispatched
}

// resolveBoarding boards every passenger waiting at the event's city whose
// destination is still an upcoming stop of the bus. Each boarding merges an
// alighting event into the destination's arrival tick, adds to the current
// event's boarded count and zeroes the ledger slot. A finished bus has no
// upcoming stops, so its events apply their counts without producing new
// schedule entries.
func (s *Simulator) resolveBoarding(ev *Event, bus *Bus, now int64) {
	waiting := s.Ledger.WaitingFor(ev.City)
	if len(waiting) == 0 {
		return
	}
	for _, dest := range sortedCityIDs(waiting) {
		count := waiting[dest]
		if count <= 0 || !bus.IsUpcomingStop(dest) {
			continue
		}
		arrival := bus.TravelTimeTo(s.Network, dest, now)
		s.Schedule.Merge(arrival, bus.ID, dest, 0, count)
		ev.Boarded += count
		waiting[dest] = 0
		logrus.Infof("[tick %07d] %d passengers boarded bus %d at %s for %s, arriving at tick %d",
			now, count, bus.ID, s.Network.CityName(ev.City), s.Network.CityName(dest), arrival)
	}
}

// sortedCityIDs returns the map's keys in ascending order. Boarding outcomes
// are order-independent (same-slot merges are additive), but a sorted walk
// keeps the log and the schedule bookkeeping reproducible for a given input.
func sortedCityIDs(m map[CityID]int64) []CityID {
	ids := make([]CityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
