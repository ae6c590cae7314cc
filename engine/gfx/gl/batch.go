package glbackend

import "math"

// Vertex: pos2 + color4 + uv2 + textured1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	QuadCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// batch accumulates quads on the CPU until the renderer flushes them.
type batch struct {
	verts []float32
	quads int
	max   int
}

func newBatch(maxQuads int) *batch {
	return &batch{
		verts: make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		max:   maxQuads,
	}
}

func (b *batch) full() bool  { return b.quads >= b.max }
func (b *batch) empty() bool { return b.quads == 0 }

func (b *batch) reset() {
	b.verts = b.verts[:0]
	b.quads = 0
}

// push appends a quad centered at (x, y). textured selects atlas sampling.
func (b *batch) push(x, y, w, h float32, color [4]float32, rotationRad float32, textured bool, u0, v0, u1, v1 float32) {
	halfW := w * 0.5
	halfH := h * 0.5

	// corners (TL, TR, BL, BR) with UVs. Positive Y goes down so top is -halfH.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}
	c, s := float32(1), float32(0)
	if rotationRad != 0 {
		c, s = float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))
	}
	var tex float32
	if textured {
		tex = 1
	}

	for _, p := range corners {
		rx := p[0]*c - p[1]*s + x
		ry := p[0]*s + p[1]*c + y
		b.verts = append(b.verts,
			rx, ry,
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			tex,
		)
	}
	b.quads++
}

// quadIndices builds the static index buffer for n quads.
func quadIndices(n int) []uint32 {
	inds := make([]uint32, 0, n*indsPerQuad)
	for q := 0; q < n; q++ {
		v := uint32(q * vertsPerQuad)
		inds = append(inds,
			v+0, v+2, v+1,
			v+1, v+2, v+3,
		)
	}
	return inds
}
