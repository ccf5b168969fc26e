// YAML scenario loading: a declarative description of a transit network,
// its bus fleet and passenger demand, plus the tick horizon to simulate.

package sim

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario is the top-level simulation setup.
// Loaded from YAML via LoadScenario(path).
type Scenario struct {
	Cities []string     `yaml:"cities"`
	Roads  []RoadSpec   `yaml:"roads"`
	Buses  []BusSpec    `yaml:"buses"`
	Demand []DemandSpec `yaml:"demand,omitempty"`
	Ticks  int64        `yaml:"ticks"` // simulation horizon for `transit-sim run`
}

// RoadSpec declares an undirected road between two named cities.
type RoadSpec struct {
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	TravelTime int64  `yaml:"travel_time"`
}

// BusSpec declares a bus by its ordered stop sequence.
type BusSpec struct {
	Route []string `yaml:"route"`
}

// DemandSpec declares passengers waiting at From to travel to To.
type DemandSpec struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Count int64  `yaml:"count"`
}

// LoadScenario reads and strictly decodes a scenario file. Unknown fields
// are an error, so typos in hand-written scenarios fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Build constructs a ready Simulator from the scenario: cities first, then
// roads, buses and demand, all in declaration order.
func (sc *Scenario) Build() (*Simulator, error) {
	if len(sc.Cities) == 0 {
		return nil, fmt.Errorf("scenario declares no cities")
	}
	s := NewSimulator()
	ids := make(map[string]CityID, len(sc.Cities))
	for _, name := range sc.Cities {
		if _, dup := ids[name]; dup {
			return nil, fmt.Errorf("duplicate city %q", name)
		}
		ids[name] = s.NewCity(name)
	}
	lookup := func(name string) (CityID, error) {
		id, ok := ids[name]
		if !ok {
			return 0, fmt.Errorf("unknown city %q", name)
		}
		return id, nil
	}
	for i, r := range sc.Roads {
		a, err := lookup(r.From)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		b, err := lookup(r.To)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		s.NewRoad(a, b, r.TravelTime)
	}
	for i, b := range sc.Buses {
		route := make([]CityID, 0, len(b.Route))
		for _, name := range b.Route {
			id, err := lookup(name)
			if err != nil {
				return nil, fmt.Errorf("bus %d: %w", i, err)
			}
			route = append(route, id)
		}
		if _, err := s.NewBus(route); err != nil {
			return nil, fmt.Errorf("bus %d: %w", i, err)
		}
	}
	for i, d := range sc.Demand {
		from, err := lookup(d.From)
		if err != nil {
			return nil, fmt.Errorf("demand %d: %w", i, err)
		}
		to, err := lookup(d.To)
		if err != nil {
			return nil, fmt.Errorf("demand %d: %w", i, err)
		}
		if err := s.AddPeople(from, to, d.Count); err != nil {
			return nil, fmt.Errorf("demand %d: %w", i, err)
		}
	}
	logrus.Infof("Scenario built: %d cities, %d roads, %d buses, %d demand entries",
		len(sc.Cities), len(sc.Roads), len(sc.Buses), len(sc.Demand))
	return s, nil
}
