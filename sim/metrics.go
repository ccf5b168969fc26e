// Tracks simulation-wide counters for final reporting.

package sim

import "fmt"

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating scenarios and debugging behavior over time.
type Metrics struct {
	EventsDispatched int   // Number of arrival events dispatched
	TotalBoarded     int64 // Passengers boarded across all events
	TotalAlighted    int64 // Passengers alighted across all events
	BusesFinished    int   // Buses that exhausted their route
	TicksElapsed     int64 // Simulated ticks executed
}

// NewMetrics creates a zeroed metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Ticks Elapsed        : %d\n", m.TicksElapsed)
	fmt.Printf("Events Dispatched    : %d\n", m.EventsDispatched)
	fmt.Printf("Passengers Boarded   : %d\n", m.TotalBoarded)
	fmt.Printf("Passengers Alighted  : %d\n", m.TotalAlighted)
	fmt.Printf("Buses Finished       : %d\n", m.BusesFinished)
}
