// Package geometry provides the planar primitives shared by all floor plan
// elements: points measured in meters, rotations about arbitrary origins,
// and polar offsets.
//
// Angles are always expressed in degrees and grow counterclockwise, with 0
// pointing along the positive X axis. The positive Y axis points up, so the
// coordinate system matches the drawing surface rather than screen space.
package geometry

import "math"

// RightAngle is the angle between a direction and its perpendicular,
// in degrees. Elements use it to step "sideways" from an anchor.
const RightAngle = 90.0

// Point is a position on the plan, in meters.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by the negation of q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p with both coordinates scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{k * p.X, k * p.Y}
}

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Rotate rotates p about origin by angle degrees counterclockwise.
func Rotate(p, origin Point, angle float64) Point {
	sin, cos := math.Sincos(Radians(angle))
	d := p.Sub(origin)
	return Point{
		X: origin.X + cos*d.X - sin*d.Y,
		Y: origin.Y + sin*d.X + cos*d.Y,
	}
}

// PointAtAngle returns the point at the given distance from origin in the
// direction of angle degrees.
func PointAtAngle(origin Point, distance, angle float64) Point {
	sin, cos := math.Sincos(Radians(angle))
	return Point{
		X: origin.X + distance*cos,
		Y: origin.Y + distance*sin,
	}
}
