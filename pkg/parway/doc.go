// Package parway applies a pure work unit over an ordered input sequence,
// either strictly sequentially or across a bounded pool of worker
// goroutines.
//
// The mode is fixed at build time: default builds bind Map and TryMap to
// the sequential executor, builds with the `parallel` tag bind them to a
// shared worker pool. Call sites are identical in both builds and, for a
// pure work unit, outputs are element-for-element identical.
//
// Two failure policies are offered:
//   - Map aborts on the first element failure and returns no partial output
//   - TryMap collects one Result per element and never aborts on element
//     failure
//
// Parallel builds additionally expose Pool, an explicit worker pool with
// caller-managed lifecycle, together with MapOn and TryMapOn.
package parway
