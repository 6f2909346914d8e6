package rect

import "math"

// Grid is the snap step on each axis. Steps must be positive.
type Grid struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// DefaultGrid disables snapping for integer pointer coordinates.
var DefaultGrid = Grid{X: 1, Y: 1}

func (g Grid) normalized() Grid {
	if g.X <= 0 {
		g.X = 1
	}
	if g.Y <= 0 {
		g.Y = 1
	}
	return g
}

// Snap rounds each pending delta to the nearest multiple of its step.
// Halves round toward positive infinity so a pointer moving back and forth
// across a half step resolves the same way in both directions.
func (g Grid) Snap(dx, dy float64) (float64, float64) {
	g = g.normalized()
	return roundHalfUp(dx/g.X) * g.X, roundHalfUp(dy/g.Y) * g.Y
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Limit is a nullable bound. The zero value is unconstrained.
type Limit struct {
	Value float64
	Set   bool
}

// At returns a Limit fixed at v.
func At(v float64) Limit {
	return Limit{Value: v, Set: true}
}

// Unbounded is the unconstrained Limit.
var Unbounded = Limit{}

// raiseTo returns the tighter of two lower bounds.
func (l Limit) raiseTo(v float64) Limit {
	if !l.Set || v > l.Value {
		return At(v)
	}
	return l
}

// lowerTo returns the tighter of two upper bounds.
func (l Limit) lowerTo(v float64) Limit {
	if !l.Set || v < l.Value {
		return At(v)
	}
	return l
}

// floorTo rounds v down to whole steps. The slack absorbs the float noise
// an aspect-scaled companion edge leaves behind at its minimum.
func floorTo(v, step float64) float64 {
	return math.Floor(v/step+1e-9) * step
}

// Bounds holds the legal range of every edge for one gesture.
type Bounds struct {
	MinLeft, MaxLeft     Limit
	MinRight, MaxRight   Limit
	MinTop, MaxTop       Limit
	MinBottom, MaxBottom Limit
}

func clamp(v float64, lo, hi Limit) float64 {
	if lo.Set && v < lo.Value {
		return lo.Value
	}
	if hi.Set && hi.Value < v {
		return hi.Value
	}
	return v
}

func (b Bounds) clampLeft(v float64) float64   { return clamp(v, b.MinLeft, b.MaxLeft) }
func (b Bounds) clampRight(v float64) float64  { return clamp(v, b.MinRight, b.MaxRight) }
func (b Bounds) clampTop(v float64) float64    { return clamp(v, b.MinTop, b.MaxTop) }
func (b Bounds) clampBottom(v float64) float64 { return clamp(v, b.MinBottom, b.MaxBottom) }

// Limits are the size constraints the solver works from. A zero maximum is
// unconstrained.
type Limits struct {
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Solver computes Bounds Snapshots from settled geometry.
type Solver struct {
	Parent  Size
	Grid    Grid
	Limits  Limits
	Lock    bool
	Aspect  float64
	Contain bool
}

// DragBounds keeps the whole rectangle inside the parent while moving it by
// grid steps. Without containment every edge is free.
func (s Solver) DragBounds(e Edges) Bounds {
	if !s.Contain {
		return Bounds{}
	}
	g := s.Grid.normalized()
	pw, ph := s.Parent.W, s.Parent.H
	w := pw - e.Left - e.Right
	h := ph - e.Top - e.Bottom
	return Bounds{
		MinLeft:   At(math.Mod(pw+e.Left, g.X)),
		MaxLeft:   At(math.Floor((pw-w-e.Left)/g.X)*g.X + e.Left),
		MinRight:  At(math.Mod(pw+e.Right, g.X)),
		MaxRight:  At(math.Floor((pw-w-e.Right)/g.X)*g.X + e.Right),
		MinTop:    At(math.Mod(ph+e.Top, g.Y)),
		MaxTop:    At(math.Floor((ph-h-e.Top)/g.Y)*g.Y + e.Top),
		MinBottom: At(math.Mod(ph+e.Bottom, g.Y)),
		MaxBottom: At(math.Floor((ph-h-e.Bottom)/g.Y)*g.Y + e.Bottom),
	}
}

// EffectiveLimits applies the aspect lock and grid to the configured limits.
// A zero minimum becomes one grid step so a resize never collapses an axis.
func (s Solver) EffectiveLimits() Limits {
	g := s.Grid.normalized()
	l := s.Limits
	if l.MinWidth <= 0 {
		l.MinWidth = g.X
	}
	if l.MinHeight <= 0 {
		l.MinHeight = g.Y
	}
	if s.Lock && s.Aspect > 0 {
		if l.MinWidth/l.MinHeight > s.Aspect {
			l.MinHeight = l.MinWidth / s.Aspect
		} else {
			l.MinWidth = s.Aspect * l.MinHeight
		}
		switch {
		case l.MaxWidth > 0 && l.MaxHeight > 0:
			l.MaxWidth = math.Min(l.MaxWidth, s.Aspect*l.MaxHeight)
			l.MaxHeight = math.Min(l.MaxHeight, l.MaxWidth/s.Aspect)
		case l.MaxWidth > 0:
			l.MaxHeight = l.MaxWidth / s.Aspect
		case l.MaxHeight > 0:
			l.MaxWidth = s.Aspect * l.MaxHeight
		}
	}
	if l.MaxWidth > 0 {
		l.MaxWidth -= math.Mod(l.MaxWidth, g.X)
	}
	if l.MaxHeight > 0 {
		l.MaxHeight -= math.Mod(l.MaxHeight, g.Y)
	}
	return l
}

// ResizeBounds limits each edge so the resized rectangle honors min/max size,
// containment, and the aspect lock at the same time. Candidate bounds for the
// same direction combine tightest-wins.
func (s Solver) ResizeBounds(e Edges) Bounds {
	g := s.Grid.normalized()
	l := s.EffectiveLimits()
	pw, ph := s.Parent.W, s.Parent.H
	w := pw - e.Left - e.Right
	h := ph - e.Top - e.Bottom

	// Shrinking stops at the minimum size, in whole grid steps.
	shrinkX := floorTo(w-l.MinWidth, g.X)
	shrinkY := floorTo(h-l.MinHeight, g.Y)
	b := Bounds{
		MaxLeft:   At(e.Left + shrinkX),
		MaxRight:  At(e.Right + shrinkX),
		MaxTop:    At(e.Top + shrinkY),
		MaxBottom: At(e.Bottom + shrinkY),
	}

	if s.Contain {
		b.MinLeft = At(math.Mod(pw+e.Left, g.X))
		b.MinRight = At(math.Mod(pw+e.Right, g.X))
		b.MinTop = At(math.Mod(ph+e.Top, g.Y))
		b.MinBottom = At(math.Mod(ph+e.Bottom, g.Y))
	}

	// Growing stops at the maximum size, measured from the stationary edge.
	if l.MaxWidth > 0 {
		b.MinLeft = b.MinLeft.raiseTo(pw - e.Right - l.MaxWidth)
		b.MinRight = b.MinRight.raiseTo(pw - e.Left - l.MaxWidth)
	}
	if l.MaxHeight > 0 {
		b.MinTop = b.MinTop.raiseTo(ph - e.Bottom - l.MaxHeight)
		b.MinBottom = b.MinBottom.raiseTo(ph - e.Top - l.MaxHeight)
	}

	if s.Lock && s.Aspect > 0 {
		b = b.coupled(e, s.Aspect)
	}
	return b
}

// coupled limits each edge to the travel its aspect companion can follow.
// Left drags top and right drags bottom (and back), each pair scaled by the
// aspect factor, so the narrower of the two ranges bounds both.
func (b Bounds) coupled(e Edges, aspect float64) Bounds {
	out := b
	couple := func(lo, hi *Limit, self float64, cLo, cHi Limit, cSelf, k float64) {
		if cHi.Set {
			*hi = hi.lowerTo(self + (cHi.Value-cSelf)*k)
		}
		if cLo.Set {
			*lo = lo.raiseTo(self - (cSelf-cLo.Value)*k)
		}
	}
	couple(&out.MinLeft, &out.MaxLeft, e.Left, b.MinTop, b.MaxTop, e.Top, aspect)
	couple(&out.MinTop, &out.MaxTop, e.Top, b.MinLeft, b.MaxLeft, e.Left, 1/aspect)
	couple(&out.MinRight, &out.MaxRight, e.Right, b.MinBottom, b.MaxBottom, e.Bottom, aspect)
	couple(&out.MinBottom, &out.MaxBottom, e.Bottom, b.MinRight, b.MaxRight, e.Right, 1/aspect)
	return out
}
