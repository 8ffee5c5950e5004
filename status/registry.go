package status

import "sync/atomic"

// Registry is the central metrics facade
// The game loop caches pointers at setup and writes atomics each frame;
// the debug server reads them from its own goroutines
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Value returns the current value of a metric by name
func (r *Registry) Value(name string) (any, bool) {
	if p, ok := r.Bools.Lookup(name); ok {
		return p.Load(), true
	}
	if p, ok := r.Ints.Lookup(name); ok {
		return p.Load(), true
	}
	if p, ok := r.Floats.Lookup(name); ok {
		return p.Load(), true
	}
	if p, ok := r.Strings.Lookup(name); ok {
		return p.Load(), true
	}
	return nil, false
}

// Snapshot copies every metric into a plain map
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	for _, n := range r.Bools.Names() {
		out[n], _ = r.Value(n)
	}
	for _, n := range r.Ints.Names() {
		out[n], _ = r.Value(n)
	}
	for _, n := range r.Floats.Names() {
		out[n], _ = r.Value(n)
	}
	for _, n := range r.Strings.Names() {
		out[n], _ = r.Value(n)
	}
	return out
}
