// Defines the immutable City and Road values and the Network arena that
// owns them. Cities are addressed by stable integer identifiers; identifier
// equality replaces pointer identity everywhere in the engine.

package sim

// CityID addresses a City inside a Network. Buses, roads and the passenger
// ledger all store CityIDs rather than references.
type CityID int

// City is an identity-only value. Immutable once created.
type City struct {
	ID   CityID
	Name string
}

// Road is an undirected edge between two cities. Immutable once created.
// TravelTime is in ticks; zero and negative weights are stored as given
// (degenerate but legal edges, e.g. constant-time stops).
type Road struct {
	A          CityID
	B          CityID
	TravelTime int64
}

// Network is the arena owning every city and road of a simulation.
// Two cities are adjacent iff some road connects them in either direction.
type Network struct {
	cities []City
	roads  []Road
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{}
}

// AddCity creates a city and returns its identifier.
// Identifiers are assigned sequentially starting at 0.
func (n *Network) AddCity(name string) CityID {
	id := CityID(len(n.cities))
	n.cities = append(n.cities, City{ID: id, Name: name})
	return id
}

// AddRoad creates an undirected road between a and b. Pure factory: the
// travel time is not validated.
func (n *Network) AddRoad(a, b CityID, travelTime int64) {
	n.roads = append(n.roads, Road{A: a, B: b, TravelTime: travelTime})
}

// CityName returns the name of the city with the given identifier.
func (n *Network) CityName(id CityID) string {
	return n.cities[id].Name
}

// NumCities returns the number of cities in the arena.
func (n *Network) NumCities() int {
	return len(n.cities)
}

// NumRoads returns the number of roads in the arena.
func (n *Network) NumRoads() int {
	return len(n.roads)
}

// RoadBetween returns the travel time of a road connecting a and b, checking
// both orientations. The second return value is false when the cities are
// not adjacent. With duplicate roads, the first declared one wins.
func (n *Network) RoadBetween(a, b CityID) (int64, bool) {
	for _, r := range n.roads {
		if (r.A == a && r.B == b) || (r.A == b && r.B == a) {
			return r.TravelTime, true
		}
	}
	return 0, false
}
