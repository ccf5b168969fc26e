package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// czechNetwork builds the four-city network used by the scenario examples:
// Plzen-Prague (90), Prague-Brno (120), Prague-Usti (80), Plzen-Usti (110).
func czechNetwork(s *Simulator) (pls, prg, brn, ust CityID) {
	pls = s.NewCity("Plzen")
	prg = s.NewCity("Prague")
	brn = s.NewCity("Brno")
	ust = s.NewCity("Usti")
	s.NewRoad(pls, prg, 90)
	s.NewRoad(prg, brn, 120)
	s.NewRoad(prg, ust, 80)
	s.NewRoad(pls, ust, 110)
	return
}

func TestNewBus_RejectsShortRoute(t *testing.T) {
	// GIVEN a simulation with a valid network
	s := NewSimulator()
	pls, _, _, _ := czechNetwork(s)

	// WHEN a single-stop bus is created
	_, err := s.NewBus([]CityID{pls})

	// THEN construction is rejected
	if err == nil {
		t.Fatal("NewBus with one stop: got nil error, want route validation failure")
	}
	assert.Empty(t, s.Buses)
}

func TestNewBus_RejectsUnconnectedRoute(t *testing.T) {
	// GIVEN a network where Plzen and Brno share no road
	s := NewSimulator()
	pls, _, brn, _ := czechNetwork(s)

	// WHEN a bus is routed over the missing road
	_, err := s.NewBus([]CityID{pls, brn})

	// THEN construction is rejected and nothing was scheduled
	if err == nil {
		t.Fatal("NewBus over missing road: got nil error, want route validation failure")
	}
	assert.Equal(t, 0, s.Schedule.Len())
}

func TestNewBus_SchedulesFirstArrivalAtNextStop(t *testing.T) {
	// GIVEN a fresh simulation
	s := NewSimulator()
	pls, prg, brn, _ := czechNetwork(s)

	// WHEN a bus is registered
	bus, err := s.NewBus([]CityID{pls, prg, brn})
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}

	// THEN the bus departed its origin and its first arrival event is
	// pending at the current tick at the next stop
	assert.Equal(t, 0, bus.ID)
	assert.Equal(t, prg, bus.CurrentStop())
	due := s.Schedule.Due(0)
	if len(due) != 1 {
		t.Fatalf("Due(0): got %d events, want 1", len(due))
	}
	assert.Equal(t, &Event{BusID: 0, City: prg, Tick: 0}, due[0])
}

func TestAddPeople_RejectsNonPositiveCount(t *testing.T) {
	s := NewSimulator()
	pls, prg, _, _ := czechNetwork(s)

	if err := s.AddPeople(pls, prg, 0); err == nil {
		t.Error("AddPeople(count=0): got nil error, want validation failure")
	}
	if err := s.AddPeople(pls, prg, -3); err == nil {
		t.Error("AddPeople(count=-3): got nil error, want validation failure")
	}
}

func TestExecute_EndToEnd_SingleBus(t *testing.T) {
	// GIVEN the Czech network with one bus Plzen->Prague->Brno and
	// 50 people waiting at Prague for Brno
	s := NewSimulator()
	pls, prg, brn, _ := czechNetwork(s)
	bus, err := s.NewBus([]CityID{pls, prg, brn})
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	if err := s.AddPeople(prg, brn, 50); err != nil {
		t.Fatalf("AddPeople: %v", err)
	}

	// WHEN 270 ticks are executed
	events := s.Execute(270)

	// THEN the bus boards 50 at Prague at tick 0 and drops them at Brno
	// at tick 120 (Brno is the route terminus)
	want := []*Event{
		{BusID: 0, City: prg, Tick: 0, Boarded: 50, Alighted: 0},
		{BusID: 0, City: brn, Tick: 120, Boarded: 0, Alighted: 50},
	}
	assert.Equal(t, want, events)
	assert.Equal(t, int64(270), s.Clock)
	assert.True(t, bus.Finished)

	// AND the served ledger entry is zeroed, not removed
	if got := s.Ledger.WaitingFor(prg)[brn]; got != 0 {
		t.Errorf("waiting Prague->Brno after boarding: got %d, want 0", got)
	}

	// AND the metrics account for both events
	assert.Equal(t, 2, s.Metrics.EventsDispatched)
	assert.Equal(t, int64(50), s.Metrics.TotalBoarded)
	assert.Equal(t, int64(50), s.Metrics.TotalAlighted)
	assert.Equal(t, 1, s.Metrics.BusesFinished)
	assert.Equal(t, int64(270), s.Metrics.TicksElapsed)
}

func TestExecute_EndToEnd_TwoBuses(t *testing.T) {
	// GIVEN the Czech network with two buses and demand at several cities
	s := NewSimulator()
	pls, prg, brn, ust := czechNetwork(s)
	if _, err := s.NewBus([]CityID{pls, prg, brn}); err != nil {
		t.Fatalf("NewBus 0: %v", err)
	}
	if _, err := s.NewBus([]CityID{prg, pls, ust}); err != nil {
		t.Fatalf("NewBus 1: %v", err)
	}
	for _, d := range []struct {
		from, to CityID
		count    int64
	}{
		{prg, brn, 50},
		{prg, ust, 50},
		{pls, ust, 50},
		{pls, prg, 10},
	} {
		if err := s.AddPeople(d.from, d.to, d.count); err != nil {
			t.Fatalf("AddPeople: %v", err)
		}
	}

	// WHEN 270 ticks are executed
	events := s.Execute(270)

	// THEN dispatch order is tick-ascending, bus-ID ascending within a tick:
	// both buses board at their first arrival stop at tick 0, bus 1 reaches
	// Usti at tick 110, bus 0 reaches Brno at tick 120. The 50 people
	// waiting Prague->Usti stay put (Usti is not on bus 0's remaining
	// route), as do the 10 waiting Plzen->Prague (bus 1 already left Plzen
	// heading away from Prague).
	want := []*Event{
		{BusID: 0, City: prg, Tick: 0, Boarded: 50, Alighted: 0},
		{BusID: 1, City: pls, Tick: 0, Boarded: 50, Alighted: 0},
		{BusID: 1, City: ust, Tick: 110, Boarded: 0, Alighted: 50},
		{BusID: 0, City: brn, Tick: 120, Boarded: 0, Alighted: 50},
	}
	assert.Equal(t, want, events)
	assert.Equal(t, int64(270), s.Clock)

	// AND unserved demand is still waiting
	assert.Equal(t, int64(50), s.Ledger.WaitingFor(prg)[ust])
	assert.Equal(t, int64(10), s.Ledger.WaitingFor(pls)[prg])

	// WHEN a further window runs with nothing scheduled
	more := s.Execute(90)

	// THEN no events fire but the clock still advances in full
	assert.Empty(t, more)
	assert.Equal(t, int64(360), s.Clock)
}

func TestExecute_MergesAlightingsAtSameArrivalTick(t *testing.T) {
	// GIVEN a line a-b-c-d (5, 7, 9 ticks) where boarding at b for d and
	// boarding at c for d both resolve to an arrival at tick 16
	s := NewSimulator()
	a := s.NewCity("A")
	b := s.NewCity("B")
	c := s.NewCity("C")
	d := s.NewCity("D")
	s.NewRoad(a, b, 5)
	s.NewRoad(b, c, 7)
	s.NewRoad(c, d, 9)
	if _, err := s.NewBus([]CityID{a, b, c, d}); err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	assert.NoError(t, s.AddPeople(b, c, 20))
	assert.NoError(t, s.AddPeople(b, d, 50))
	assert.NoError(t, s.AddPeople(c, d, 30))

	// WHEN the line is simulated to completion
	events := s.Execute(20)

	// THEN the two alighting resolutions landing on (tick 16, bus 0)
	// accumulate into one event rather than overwriting each other
	want := []*Event{
		{BusID: 0, City: b, Tick: 0, Boarded: 70, Alighted: 0},
		{BusID: 0, City: c, Tick: 7, Boarded: 30, Alighted: 20},
		{BusID: 0, City: d, Tick: 16, Boarded: 0, Alighted: 80},
	}
	assert.Equal(t, want, events)
}

func TestExecute_EmptyTicksAdvanceClock(t *testing.T) {
	// GIVEN a simulation with no buses at all
	s := NewSimulator()
	czechNetwork(s)

	// WHEN a window executes
	events := s.Execute(50)

	// THEN nothing is dispatched but the clock advances by the full amount
	assert.Empty(t, events)
	assert.Equal(t, int64(50), s.Clock)

	// AND a second window starts where the first ended
	s.Execute(25)
	assert.Equal(t, int64(75), s.Clock)
}

func TestExecute_NonPositiveWindow_NoOp(t *testing.T) {
	s := NewSimulator()
	czechNetwork(s)

	assert.Nil(t, s.Execute(0))
	assert.Nil(t, s.Execute(-5))
	assert.Equal(t, int64(0), s.Clock)
}

func TestExecute_FinishedBusNeverRescheduled(t *testing.T) {
	// GIVEN a bus that has completed its route
	s := NewSimulator()
	pls, prg, brn, _ := czechNetwork(s)
	bus, err := s.NewBus([]CityID{pls, prg, brn})
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	assert.NoError(t, s.AddPeople(prg, brn, 50))
	s.Execute(270)
	assert.True(t, bus.Finished)

	// WHEN demand appears at the bus's former stops
	assert.NoError(t, s.AddPeople(prg, brn, 25))

	// THEN no further events are ever dispatched for it
	events := s.Execute(500)
	assert.Empty(t, events)
	assert.Equal(t, 0, s.Schedule.Len())
	assert.Equal(t, int64(25), s.Ledger.WaitingFor(prg)[brn])
}

func TestExecute_TravelTimeIncludesDispatchTick(t *testing.T) {
	// GIVEN a bus registered after the clock has already advanced
	s := NewSimulator()
	pls, prg, brn, _ := czechNetwork(s)
	s.Execute(40)
	if _, err := s.NewBus([]CityID{pls, prg, brn}); err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	assert.NoError(t, s.AddPeople(prg, brn, 5))

	// WHEN the simulation continues
	events := s.Execute(200)

	// THEN the first arrival fires at the registration tick and the
	// follow-on arrival is offset from that dispatch tick
	want := []*Event{
		{BusID: 0, City: prg, Tick: 40, Boarded: 5, Alighted: 0},
		{BusID: 0, City: brn, Tick: 160, Boarded: 0, Alighted: 5},
	}
	assert.Equal(t, want, events)
}
