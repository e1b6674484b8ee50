package shared

import "math"

// Position represents a 2D position in world units
type Position struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Add returns p translated by d
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by k
func (p Position) Scale(k float64) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Distance returns the Euclidean distance between two positions
func Distance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Angle returns the heading in radians from one position toward another
func Angle(from, to Position) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Heading returns the unit vector for an angle scaled by speed
func Heading(angle, speed float64) Position {
	return Position{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

// Clamp limits v to the closed interval [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeAngle normalizes an angle to be between -π and π
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Bounds is an axis-aligned rectangle anchored at the origin
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether p lies strictly inside the rectangle
func (b Bounds) Contains(p Position) bool {
	return p.X > 0 && p.X < b.Width && p.Y > 0 && p.Y < b.Height
}

// ClampInset keeps p at least inset units away from every edge
func (b Bounds) ClampInset(p Position, inset float64) Position {
	return Position{
		X: Clamp(p.X, inset, b.Width-inset),
		Y: Clamp(p.Y, inset, b.Height-inset),
	}
}

// Center returns the midpoint of the rectangle
func (b Bounds) Center() Position {
	return Position{X: b.Width / 2, Y: b.Height / 2}
}
