package game

// Box is an axis-aligned rectangle
type Box struct {
	X, Y, W, H int
}

// Overlap reports whether two boxes share at least one pixel. Intervals
// are half-open, so boxes that only touch edges do not overlap.
func Overlap(a, b Box) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
