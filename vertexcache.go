package main

const vertexCacheSize = 32

// Clip-code bits (spec.md §3 Vertex entry).
const (
	ClipPlusX  = 1 << 0
	ClipMinusX = 1 << 1
	ClipPlusY  = 1 << 2
	ClipMinusY = 1 << 3
	ClipW      = 1 << 4
)

// VertexEntry is one cached vertex's clip-space summary, produced by a
// vertex load and consumed by triangle/cull/branch-less-z operations.
type VertexEntry struct {
	W        float32
	Depth    int16
	ClipCode uint8
	valid    bool
}

// VertexCache is the fixed-size array of cached vertex clip-space summaries.
type VertexCache struct {
	Slots [vertexCacheSize]VertexEntry
}

// clipCode computes the 5-bit clip mask for a clip-space point, per the
// formula in spec.md §4.4.
func clipCode(x, y, w float32) uint8 {
	var c uint8
	if x > w {
		c |= ClipPlusX
	}
	if x < -w {
		c |= ClipMinusX
	}
	if y > w {
		c |= ClipPlusY
	}
	if y < -w {
		c |= ClipMinusY
	}
	if w < 0.01 {
		c |= ClipW
	}
	return c
}

// Load transforms (x,y,z) by mvp and stores the resulting clip-space summary
// at slot idx.
func (vc *VertexCache) Load(idx int, x, y, z float32, mvp MtxF) {
	cx, cy, cz, cw := mvp.MulVec3(x, y, z)
	var depth float32
	if cw != 0 {
		depth = (cz / cw) * 1023.0
	}
	vc.Slots[idx] = VertexEntry{
		W:        cw,
		Depth:    int16(depth),
		ClipCode: clipCode(cx, cy, cw),
		valid:    true,
	}
}

// InBounds reports whether idx is a valid cache slot index.
func InBounds(idx int) bool { return idx >= 0 && idx < vertexCacheSize }
