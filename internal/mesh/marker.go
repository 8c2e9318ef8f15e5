package mesh

// MarkerVertex matches the marker shader's attribute layout.
type MarkerVertex struct {
	Pos   [3]float32
	Color [3]float32
}

// MarkerQuad builds a flat diamond marker centered on pos, two triangles,
// wound CCW when seen from above.
func MarkerQuad(pos [3]float32, size float32, color [3]float32) []MarkerVertex {
	north := MarkerVertex{Pos: [3]float32{pos[0], pos[1], pos[2] - size}, Color: color}
	south := MarkerVertex{Pos: [3]float32{pos[0], pos[1], pos[2] + size}, Color: color}
	east := MarkerVertex{Pos: [3]float32{pos[0] + size, pos[1], pos[2]}, Color: color}
	west := MarkerVertex{Pos: [3]float32{pos[0] - size, pos[1], pos[2]}, Color: color}

	return []MarkerVertex{
		north, west, east,
		south, east, west,
	}
}
