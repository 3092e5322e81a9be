package vmath

// Vec2 is a float64 2D vector in logical viewport space
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Center returns the midpoint of a width x height area anchored at origin
func V2Center(width, height float64) Vec2 {
	return Vec2{width / 2, height / 2}
}
