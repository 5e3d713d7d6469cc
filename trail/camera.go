package trail

// depthOffset keeps the projection divisor strictly positive: trail
// points never get ahead of the camera in z, so 10-(p.Z-cam.Z) >= 10.
const depthOffset = 10.0

// Camera holds the viewpoint for projecting trail points. It chases the
// trail's head in y and z only; x stays pinned so projected trail motion
// reads as horizontal pitch deviation.
type Camera struct {
	Pos Point
}

// Follow moves the camera onto the target's y/z, leaving x untouched.
// Called once per update tick with the trail's newest point.
func (c *Camera) Follow(target Point) {
	c.Pos.Y = target.Y
	c.Pos.Z = target.Z
}

// Project maps a world point to 2D screen coordinates with a pinhole
// divide-by-depth transform relative to the camera. ok is false for
// points at or behind the screen plane, which cannot be drawn.
func (c *Camera) Project(p Point) (x, y float64, ok bool) {
	rx := p.X - c.Pos.X
	ry := p.Y - c.Pos.Y
	rz := p.Z - c.Pos.Z
	depth := depthOffset - rz
	if depth <= 0 {
		return 0, 0, false
	}
	scale := 10.0 / (0.01 * depth)
	return rx * scale, ry * scale, true
}
