package store

import "sync"

// Filters owns the current FilterState for one application, persisted in
// its bucket. Derived listings are recomputed from (products, state) on
// every change; nothing is cached here.
type Filters struct {
	mu     sync.Mutex
	state  FilterState
	bucket *Bucket
}

func NewFilters(bucket *Bucket) *Filters {
	f := &Filters{state: DefaultFilters(), bucket: bucket}
	if bucket != nil {
		var persisted FilterState
		if ok, err := bucket.Get("filters", &persisted); err == nil && ok {
			f.state = persisted
		}
	}
	return f
}

func (f *Filters) Current() FilterState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Set replaces the filter state.
func (f *Filters) Set(state FilterState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
	f.persist()
}

// Update applies a partial change in one read-then-write turn.
func (f *Filters) Update(mutate func(*FilterState)) FilterState {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.state)
	f.persist()
	return f.state
}

func (f *Filters) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = DefaultFilters()
	f.persist()
}

func (f *Filters) persist() {
	if f.bucket == nil {
		return
	}
	_ = f.bucket.Set("filters", f.state)
}
