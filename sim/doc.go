// Package sim provides the discrete-event public-transport simulation engine
// for transit-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - topology.go: the City/Road arena and undirected adjacency lookup
//   - bus.go: the route cursor and memoized travel-time computation
//   - simulator.go: the tick loop, boarding resolution, and bus advancement
//
// # Architecture
//
// Time is a monotonically increasing integer tick counter advanced only by
// Simulator.Execute. The Schedule buckets pending arrival events by tick
// with one slot per (tick, bus); resolving a tick snapshots its bucket, so
// boarding can only enqueue work into strictly later ticks. The Ledger holds
// waiting-passenger counts per origin/destination pair and is zeroed in
// place as people board.
//
// The engine is sequential: callers drive it with "execute N ticks" calls
// and must serialize every mutating call. Scenarios (scenario.go) describe a
// network, fleet and demand declaratively in YAML for the CLI in cmd/.
package sim
