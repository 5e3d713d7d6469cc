// Package trail models recent pitch history as a bounded 3D path: x
// encodes mapped pitch, y drifts downward and z forward by a fixed step
// per analysis window. A camera chases the path's head for perspective
// projection.
package trail

// Per-window position steps. The vertical drift is downward and depth
// increases toward the viewer's horizon; the projection in camera.go
// assumes these signs.
const (
	StepY = -0.1
	StepZ = 0.3
)

// Point is a position on the trail.
type Point struct {
	X, Y, Z float64
}

// Trail is a capacity-bounded FIFO of trail points. It starts Idle: until
// the first accepted pitch, Advance only tracks position and records
// nothing. The first accepted pitch switches it to Running, after which
// every processed window appends a point (whether or not that window's
// pitch was accepted). Reset returns it to Idle and clears the points.
//
// Storage is a ring; Points returns a chronological copy.
type Trail struct {
	points  []Point
	head    int // index of the oldest point
	n       int
	running bool
	pos     Point
}

// New creates an empty Trail with the given capacity.
func New(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]Point, capacity)}
}

// Running reports whether the trail has seen an accepted pitch since the
// last reset.
func (t *Trail) Running() bool {
	return t.running
}

// BeginTick re-anchors the working position at the start of an update
// tick: the newest recorded point while running, the origin while idle.
// Idle position bookkeeping therefore never accumulates across ticks.
func (t *Trail) BeginTick() {
	if last, ok := t.Last(); ok {
		t.pos = last
	} else {
		t.pos = Point{}
	}
}

// Advance moves the position one window forward: x jumps to the mapped
// pitch position when the window's estimate was accepted (otherwise it
// holds), then y and z take their fixed steps. The resulting point is
// recorded only while running; an accepted estimate starts running.
func (t *Trail) Advance(accepted bool, x float64) {
	if accepted {
		t.running = true
		t.pos.X = x
	}
	t.pos.Y += StepY
	t.pos.Z += StepZ
	if t.running {
		t.append(t.pos)
	}
}

// append inserts a point, evicting the oldest when at capacity.
func (t *Trail) append(p Point) {
	if t.n == len(t.points) {
		t.points[t.head] = p
		t.head = (t.head + 1) % len(t.points)
		return
	}
	t.points[(t.head+t.n)%len(t.points)] = p
	t.n++
}

// Position returns the current working position: the point the next
// Advance will move from. Tracked while Idle too, so the camera can
// settle before any point is recorded.
func (t *Trail) Position() Point {
	return t.pos
}

// Reset clears all points and returns the trail to Idle.
func (t *Trail) Reset() {
	t.head = 0
	t.n = 0
	t.running = false
	t.pos = Point{}
}

// Points returns the recorded points in chronological order.
func (t *Trail) Points() []Point {
	out := make([]Point, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.points[(t.head+i)%len(t.points)]
	}
	return out
}

// Last returns the newest point, if any.
func (t *Trail) Last() (Point, bool) {
	if t.n == 0 {
		return Point{}, false
	}
	return t.points[(t.head+t.n-1)%len(t.points)], true
}

// Len returns the number of recorded points.
func (t *Trail) Len() int {
	return t.n
}

// Cap returns the trail's capacity.
func (t *Trail) Cap() int {
	return len(t.points)
}
