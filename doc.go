// Package pathproof is a correctness-verification harness for many-to-many
// shortest-path algorithms on weighted graphs.
//
// pathproof does not implement a production shortest-path algorithm itself.
// It validates an arbitrary implementation, injected through the
// manypaths.Computer capability interface, against deterministic
// hand-authored fixtures and against a trusted single-source Dijkstra
// reference, on both fixed and randomly generated connected graphs.
//
// Package layout:
//
//   - core      — weighted directed multigraph storage
//   - dijkstra  — trusted single-source reference algorithm
//   - manypaths — capability interface, result object, baseline computer
//   - builder   — fixtures and the seeded random connected generator
//   - verify    — oracle, validator, vertex sampler and scenario runner
//
// All randomness flows from one seeded *rand.Rand consumed sequentially
// (topology, then edge weights, then vertex sampling), so every run is
// reproducible bit-for-bit for a fixed seed.
package pathproof
