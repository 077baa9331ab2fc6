package tweety

import "github.com/vovakirdan/tweety-escape/internal/core"

// Obstacle is a pair of trees with a vertical gap between them.
// Gap and Speed are captured from the tier active at spawn time and
// never change afterwards.
type Obstacle struct {
	X      float64
	Width  float64
	Top    float64 // Height of the upper tree
	Bottom float64 // Height of the lower tree
	Gap    float64
	Speed  float64
	Scored bool
}

// Advance moves the obstacle left by its speed.
func (o *Obstacle) Advance() {
	o.X -= o.Speed
}

// Right returns the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// TopBox returns the upper tree's box.
func (o Obstacle) TopBox() core.Box {
	return core.NewBox(o.X, 0, o.Width, o.Top)
}

// BottomBox returns the lower tree's box on a surface of height surfaceH.
func (o Obstacle) BottomBox(surfaceH float64) core.Box {
	return core.NewBox(o.X, surfaceH-o.Bottom, o.Width, o.Bottom)
}

// Intersects reports whether the actor overlaps the obstacle horizontally
// while sticking out of the gap vertically. Touching edges do not collide.
func Intersects(a Actor, o Obstacle, surfaceH float64) bool {
	return a.X+a.Width > o.X &&
		a.X < o.X+o.Width &&
		(a.Y < o.Top || a.Y+a.Height > surfaceH-o.Bottom)
}

// Passed reports whether the actor's left edge is past the obstacle's
// trailing edge and the obstacle has not been scored yet.
// It does not mark the obstacle.
func Passed(a Actor, o Obstacle) bool {
	return a.X > o.X+o.Width && !o.Scored
}

// Offscreen reports whether the obstacle left the surface on the left.
func Offscreen(o Obstacle) bool {
	return o.X < -o.Width
}
