package game

import "math"

// vec2 is a 2D vector in screen space (x right, y down)
type vec2 struct {
	x, y float64
}

// add returns the component-wise sum of two vectors
func (v vec2) add(o vec2) vec2 {
	return vec2{v.x + o.x, v.y + o.y}
}

// scale returns the vector multiplied by a scalar
func (v vec2) scale(s float64) vec2 {
	return vec2{v.x * s, v.y * s}
}

// length returns the euclidean length of the vector
func (v vec2) length() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

// normalized returns a unit-length copy, or the zero vector unchanged
func (v vec2) normalized() vec2 {
	l := v.length()
	if l == 0 {
		return v
	}
	return vec2{v.x / l, v.y / l}
}

// rotatePoint rotates a point around the origin by the given angle in radians
func rotatePoint(p vec2, angle float64) vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return vec2{
		x: p.x*cos - p.y*sin,
		y: p.x*sin + p.y*cos,
	}
}

// clamp limits a value to the range [min, max]
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// rect is an axis-aligned bounding box used for collision tests
type rect struct {
	x, y, w, h float64
}

// rectAround builds a rect of the given side lengths centered on a position
func rectAround(center vec2, w, h float64) rect {
	return rect{x: center.x - w/2, y: center.y - h/2, w: w, h: h}
}

// intersects reports whether two rects overlap
func (r rect) intersects(o rect) bool {
	return r.x < o.x+o.w && r.x+r.w > o.x && r.y < o.y+o.h && r.y+r.h > o.y
}

// degToRad converts degrees to radians
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
