package terrain

// locateEpsilon tolerates floating-point noise in barycentric containment
// tests; weights are normalized, so the threshold is scale-free.
const locateEpsilon = 1e-9

// Sites returns the terrain's site positions.
func (t *Terrain2D) Sites() []Site2D {
	return t.sites
}

// Elevations returns the final elevation field, one value per site.
func (t *Terrain2D) Elevations() []float64 {
	return t.elevations
}

// Bounds returns the terrain's bounding box.
func (t *Terrain2D) Bounds() (min, max Site2D) {
	return t.min, t.max
}

// ElevationAt interpolates the elevation at (x, y) barycentrically over the
// containing Delaunay triangle. The second result is false outside the
// triangulated hull.
func (t *Terrain2D) ElevationAt(x, y float64) (float64, bool) {
	tri, w0, w1, w2, ok := t.locate(x, y)
	if !ok {
		return 0, false
	}
	i0 := t.tri.Triangles[3*tri]
	i1 := t.tri.Triangles[3*tri+1]
	i2 := t.tri.Triangles[3*tri+2]

	return w0*t.elevations[i0] + w1*t.elevations[i1] + w2*t.elevations[i2], true
}

// locate finds the triangle containing (x, y) by walking the triangulation:
// from the current triangle, step across the edge whose barycentric weight is
// most negative until every weight is non-negative. The walk is bounded by
// the triangle count; if it fails to settle (degenerate geometry), a linear
// scan decides.
func (t *Terrain2D) locate(x, y float64) (tri int, w0, w1, w2 float64, ok bool) {
	numTriangles := len(t.tri.Triangles) / 3
	if numTriangles == 0 {
		return 0, 0, 0, 0, false
	}

	cur := 0
	for step := 0; step <= numTriangles; step++ {
		w0, w1, w2, degenerate := t.barycentric(cur, x, y)
		if degenerate {
			break
		}
		if w0 >= -locateEpsilon && w1 >= -locateEpsilon && w2 >= -locateEpsilon {
			return cur, w0, w1, w2, true
		}
		// Cross the edge opposite the most negative weight: weight k belongs
		// to vertex k, whose opposite edge is the triangle's halfedge k^th
		// successor (w2 -> edge v0-v1 = halfedge 3cur, w0 -> 3cur+1, w1 -> 3cur+2).
		edge := 3*cur + 1
		lowest := w0
		if w1 < lowest {
			lowest, edge = w1, 3*cur+2
		}
		if w2 < lowest {
			edge = 3 * cur
		}
		twin := t.tri.Halfedges[edge]
		if twin == -1 {
			return 0, 0, 0, 0, false // walked off the hull
		}
		cur = twin / 3
	}

	return t.scan(x, y)
}

// scan is the exhaustive point-location fallback.
func (t *Terrain2D) scan(x, y float64) (tri int, w0, w1, w2 float64, ok bool) {
	for cur := 0; cur < len(t.tri.Triangles)/3; cur++ {
		w0, w1, w2, degenerate := t.barycentric(cur, x, y)
		if degenerate {
			continue
		}
		if w0 >= -locateEpsilon && w1 >= -locateEpsilon && w2 >= -locateEpsilon {
			return cur, w0, w1, w2, true
		}
	}
	return 0, 0, 0, 0, false
}

// barycentric returns the weights of (x, y) relative to triangle tri.
// degenerate reports a zero-area triangle.
func (t *Terrain2D) barycentric(tri int, x, y float64) (w0, w1, w2 float64, degenerate bool) {
	a := t.sites[t.tri.Triangles[3*tri]]
	b := t.sites[t.tri.Triangles[3*tri+1]]
	c := t.sites[t.tri.Triangles[3*tri+2]]

	d := cross2D(b.X-a.X, b.Y-a.Y, c.X-a.X, c.Y-a.Y)
	if d == 0 {
		return 0, 0, 0, true
	}
	w0 = cross2D(c.X-b.X, c.Y-b.Y, x-b.X, y-b.Y) / d
	w1 = cross2D(a.X-c.X, a.Y-c.Y, x-c.X, y-c.Y) / d
	w2 = 1 - w0 - w1

	return w0, w1, w2, false
}
