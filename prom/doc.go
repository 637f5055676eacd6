// Package prom exports willow-input's raw event stream as Prometheus metrics.
//
// [Bridge] owns one subscriber on an [input.Context] and, on every Update,
// counts the replayed events by kind and records how many events were
// delivered in that replay as a histogram.
//
// Usage:
//
//	bridge := prom.NewBridge(in, prometheus.DefaultRegisterer)
//
//	// each frame
//	in.Update(src)
//	bridge.Update()
package prom
