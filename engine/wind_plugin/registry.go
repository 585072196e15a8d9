package wind_plugin

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-wind/engine/model"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

// PromotionRecord is one promotion: the mesh of the promoted object, the derived material it now draws with,
// and the wind snapshot the material was seeded with.
type PromotionRecord[B any] struct {
	Mesh     model.Mesh
	Material *material.WindAffected[B]
	Wind     wind.Wind
}

// Registry is the append-only list of derived materials of one base kind. Records are never removed,
// so a derived material keeps receiving broadcast updates for the lifetime of the registry.
type Registry[B any] struct {
	mu      sync.RWMutex
	records []PromotionRecord[B]
}

// NewRegistry creates an empty Registry.
//
// Parameters:
//   - capacity: initial record capacity
//
// Returns:
//   - *Registry[B]: the registry
func NewRegistry[B any](capacity int) *Registry[B] {
	return &Registry[B]{records: make([]PromotionRecord[B], 0, max(capacity, 0))}
}

// Append adds a record. Records keep insertion order.
//
// Parameters:
//   - rec: the record to add
func (r *Registry[B]) Append(rec PromotionRecord[B]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

// Len returns the number of records.
func (r *Registry[B]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Records returns a copy of all records in insertion order.
//
// Returns:
//   - []PromotionRecord[B]: the records
func (r *Registry[B]) Records() []PromotionRecord[B] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PromotionRecord[B], len(r.records))
	copy(out, r.records)
	return out
}

// Since returns a copy of the records appended after the first n, in insertion order.
//
// Parameters:
//   - n: the registry length before the records of interest were appended
//
// Returns:
//   - []PromotionRecord[B]: the records, or nil if there are none
func (r *Registry[B]) Since(n int) []PromotionRecord[B] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n >= len(r.records) {
		return nil
	}
	out := make([]PromotionRecord[B], len(r.records)-n)
	copy(out, r.records[n:])
	return out
}

// Materials appends every derived material to dst and returns the extended slice.
// Passing a reused slice avoids a per-frame allocation in the broadcast path.
//
// Parameters:
//   - dst: slice to append to, may be nil
//
// Returns:
//   - []*material.WindAffected[B]: dst with the materials appended
func (r *Registry[B]) Materials(dst []*material.WindAffected[B]) []*material.WindAffected[B] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		dst = append(dst, r.records[i].Material)
	}
	return dst
}

// Prototypes returns the records usable as spawn prototypes: those with both a mesh and a material.
//
// Returns:
//   - []PromotionRecord[B]: the prototype records
func (r *Registry[B]) Prototypes() []PromotionRecord[B] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PromotionRecord[B], 0, len(r.records))
	for _, rec := range r.records {
		if rec.Mesh == nil || rec.Material == nil {
			continue
		}
		out = append(out, rec)
	}
	return out
}
