// Implements the passenger Ledger, which counts the people waiting at each
// origin city for each destination city.

package sim

// Ledger maps origin city -> destination city -> waiting count. Entries are
// created lazily on first AddPeople and zeroed -- never removed -- once
// boarded, so later additions for the same pair accumulate into the same
// slot.
type Ledger struct {
	waiting map[CityID]map[CityID]int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{waiting: make(map[CityID]map[CityID]int64)}
}

// AddPeople adds count waiting passengers travelling from -> to.
// Count validation is the Simulator's concern; see Simulator.AddPeople.
func (l *Ledger) AddPeople(from, to CityID, count int64) {
	dests, ok := l.waiting[from]
	if !ok {
		dests = make(map[CityID]int64)
		l.waiting[from] = dests
	}
	dests[to] += count
}

// WaitingFor returns the live destination->count view for an origin city,
// or nil when no one ever waited there. Boarding resolution zeroes served
// entries through this view; zero-count entries stay present.
func (l *Ledger) WaitingFor(from CityID) map[CityID]int64 {
	return l.waiting[from]
}
