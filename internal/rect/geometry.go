package rect

// Edges are distances from the parent's matching edge.
type Edges struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Size is a width/height pair.
type Size struct {
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// Rect is the presentation view of the geometry.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge in parent space.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge in parent space.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// store owns the rectangle. raw holds the last requested edges and settled
// the values after clamping. Width and height are always derived.
type store struct {
	parent  Size
	raw     Edges
	settled Edges

	bounds Bounds
	lock   bool
	aspect float64
	handle Handle
}

func newStore(parent Size, left, top, width, height float64) store {
	e := Edges{
		Left:   left,
		Top:    top,
		Right:  parent.W - width - left,
		Bottom: parent.H - height - top,
	}
	return store{parent: parent, raw: e, settled: e}
}

func (s *store) width() float64  { return s.parent.W - s.settled.Left - s.settled.Right }
func (s *store) height() float64 { return s.parent.H - s.settled.Top - s.settled.Bottom }

func (s *store) rect() Rect {
	return Rect{Left: s.settled.Left, Top: s.settled.Top, Width: s.width(), Height: s.height()}
}

func (s *store) follows(onX bool) bool {
	if !s.lock || s.aspect == 0 {
		return false
	}
	if onX {
		return s.handle.MovesX()
	}
	return s.handle.MovesY()
}

func (s *store) setLeft(v float64) {
	s.raw.Left = v
	v = s.bounds.clampLeft(v)
	prev := s.settled.Left
	s.settled.Left = v
	if s.follows(true) {
		s.setTop(s.settled.Top - (prev-v)/s.aspect)
	}
}

func (s *store) setRight(v float64) {
	s.raw.Right = v
	v = s.bounds.clampRight(v)
	prev := s.settled.Right
	s.settled.Right = v
	if s.follows(true) {
		s.setBottom(s.settled.Bottom - (prev-v)/s.aspect)
	}
}

func (s *store) setTop(v float64) {
	s.raw.Top = v
	v = s.bounds.clampTop(v)
	prev := s.settled.Top
	s.settled.Top = v
	if s.follows(false) {
		s.setLeft(s.settled.Left - (prev-v)*s.aspect)
	}
}

func (s *store) setBottom(v float64) {
	s.raw.Bottom = v
	v = s.bounds.clampBottom(v)
	prev := s.settled.Bottom
	s.settled.Bottom = v
	if s.follows(false) {
		s.setRight(s.settled.Right - (prev-v)*s.aspect)
	}
}

// resync drops any pending raw values in favour of the settled ones.
func (s *store) resync() {
	s.raw = s.settled
}

// resize shifts right and bottom so the rectangle keeps its position and
// size inside a parent of a new size.
func (s *store) resize(parent Size) {
	dx := s.parent.W - parent.W
	dy := s.parent.H - parent.H
	s.parent = parent
	s.settled.Right -= dx
	s.settled.Bottom -= dy
	s.resync()
}
