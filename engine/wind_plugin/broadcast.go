package wind_plugin

import (
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-wind/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-wind/engine/wind"
)

// Broadcaster pushes the live wind state into every registered material once per frame.
// It keeps its scratch slices between frames.
type Broadcaster[B any] struct {
	materials []*material.WindAffected[B]
	writes    []bind_group_provider.BufferWrite
}

// Broadcast reads w once, encodes it once and applies the snapshot to every material in reg.
// When r is non-nil the staged uniforms are uploaded in a single WriteBuffers call.
// Materials promoted after this call are seeded at promotion time and picked up on the next frame.
//
// Parameters:
//   - reg: the registry to update
//   - w: the live wind parameters
//   - r: the renderer to upload through, may be nil
//
// Returns:
//   - int: the number of materials updated
func (b *Broadcaster[B]) Broadcast(reg *Registry[B], w *wind.Wind, r renderer.Renderer) int {
	snap := w.Snapshot()
	u := wind.Encode(snap)
	data := u.Marshal()

	b.materials = reg.Materials(b.materials[:0])
	b.writes = b.writes[:0]
	for _, m := range b.materials {
		m.ApplyEncoded(snap, u, data)
		b.writes = m.BindGroupProvider().Writes(b.writes)
	}
	if r != nil {
		r.WriteBuffers(b.writes)
	}
	n := len(b.materials)
	clear(b.materials)
	return n
}

// BroadcastUpdate is a one-shot Broadcast for callers that do not keep a Broadcaster.
//
// Parameters:
//   - reg: the registry to update
//   - w: the live wind parameters
//   - r: the renderer to upload through, may be nil
//
// Returns:
//   - int: the number of materials updated
func BroadcastUpdate[B any](reg *Registry[B], w *wind.Wind, r renderer.Renderer) int {
	var b Broadcaster[B]
	return b.Broadcast(reg, w, r)
}
