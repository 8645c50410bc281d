// Package combined provides comparison benchmarks that pit the containers
// in this module against external implementations.
//
// These benchmarks are more representative of real-world performance
// than isolated micro-benchmarks, as they capture the cumulative cost
// and any interactions between components.
package combined
