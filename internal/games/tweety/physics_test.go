package tweety

import (
	"testing"

	"github.com/vovakirdan/tweety-escape/internal/config"
)

const surfaceH = 648.0

func testActor(y float64) Actor {
	a := NewActor(config.DefaultTweetyConfig().Actor)
	a.Y = y
	return a
}

func TestActorAdvanceCeilingClamp(t *testing.T) {
	a := testActor(0)
	a.Velocity = -5

	hit := a.Advance(surfaceH)

	if !hit {
		t.Error("Crossing the ceiling should report a boundary hit")
	}
	if a.Y != 0 {
		t.Errorf("Y should clamp to 0, got %f", a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("Velocity should reset to 0, got %f", a.Velocity)
	}
}

func TestActorAdvanceFloorClamp(t *testing.T) {
	a := testActor(surfaceH - 41)
	a.Velocity = 3

	if !a.Advance(surfaceH) {
		t.Error("Crossing the floor should report a boundary hit")
	}
	if a.Y != surfaceH-a.Height {
		t.Errorf("Y should clamp to %f, got %f", surfaceH-a.Height, a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("Velocity should reset to 0, got %f", a.Velocity)
	}
}

func TestActorAdvanceFreeFall(t *testing.T) {
	a := testActor(300)

	if a.Advance(surfaceH) {
		t.Error("Mid-air actor should not hit a boundary")
	}
	if a.Velocity != 0.5 || a.Y != 300.5 {
		t.Errorf("After one tick expected v=0.5 y=300.5, got v=%f y=%f", a.Velocity, a.Y)
	}

	// Resting exactly on the floor is not a hit.
	b := testActor(surfaceH - 40 - 0.5)
	if b.Advance(surfaceH) {
		t.Error("Touching the floor exactly should not clamp")
	}
}

func TestActorFlapAndRotation(t *testing.T) {
	a := testActor(300)
	a.Flap()

	if a.Velocity != -8 {
		t.Errorf("Flap should set velocity to lift, got %f", a.Velocity)
	}
	if a.Rotation() != -0.2 {
		t.Errorf("Climbing rotation should be -0.2, got %f", a.Rotation())
	}

	a.Velocity = 0
	if a.Rotation() != 0.2 {
		t.Errorf("Zero velocity should use the diving tilt, got %f", a.Rotation())
	}
}

func TestActorPlace(t *testing.T) {
	a := NewActor(config.DefaultTweetyConfig().Actor)
	if a.Y != -50 {
		t.Errorf("New actor should start off-surface at -50, got %f", a.Y)
	}

	a.Velocity = 7
	a.Place(surfaceH)
	if a.Y != surfaceH/2 || a.Velocity != 0 {
		t.Errorf("Place should center at rest, got y=%f v=%f", a.Y, a.Velocity)
	}
}

func TestIntersects(t *testing.T) {
	// Gap spans y in [200, 350] on a 648 surface.
	o := Obstacle{X: 340, Width: 80, Top: 200, Bottom: surfaceH - 350}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside gap, full overlap", 350, 250, false},
		{"inside gap, touching top edge", 350, 200, false},
		{"inside gap, touching bottom edge", 350, 310, false},
		{"above gap", 350, 199, true},
		{"below gap", 350, 311, true},
		{"left of obstacle", 299, 0, false},
		{"left edge touching", 300, 0, false},
		{"right edge touching", 420, 0, false},
		{"just overlapping left", 300.5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testActor(tt.y)
			a.X = tt.x
			if got := Intersects(a, o, surfaceH); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestIntersectsGapNeverCollides(t *testing.T) {
	a := testActor(0)
	for top := 0.0; top <= 300; top += 25 {
		o := Obstacle{X: 330, Width: 80, Top: top, Bottom: surfaceH - (top + 150)}
		for y := top; y+a.Height <= top+150; y += 5 {
			for x := 260.0; x <= 420; x += 10 {
				a.X, a.Y = x, y
				if Intersects(a, o, surfaceH) {
					t.Fatalf("Actor inside the gap collided: actor=(%f,%f) top=%f", x, y, top)
				}
			}
		}
	}
}

func TestPassed(t *testing.T) {
	a := testActor(300)

	tests := []struct {
		name   string
		x      float64
		scored bool
		want   bool
	}{
		{"trailing edge left of actor", 269, false, true},
		{"trailing edge at actor", 270, false, false},
		{"still overlapping", 300, false, false},
		{"already scored", 200, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Obstacle{X: tt.x, Width: 80, Scored: tt.scored}
			if got := Passed(a, o); got != tt.want {
				t.Errorf("Passed() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestOffscreen(t *testing.T) {
	if Offscreen(Obstacle{X: -80, Width: 80}) {
		t.Error("Right edge exactly at 0 is still on the surface")
	}
	if !Offscreen(Obstacle{X: -80.5, Width: 80}) {
		t.Error("Right edge left of 0 should be offscreen")
	}
}

func TestObstacleAdvanceKeepsSpeed(t *testing.T) {
	o := Obstacle{X: 100, Speed: 4}
	o.Advance()
	o.Advance()
	if o.X != 92 {
		t.Errorf("X after two advances = %f, expected 92", o.X)
	}
}

func TestObstacleBoxes(t *testing.T) {
	o := Obstacle{X: 10, Width: 80, Top: 100, Bottom: 200}
	if b := o.TopBox(); b.Y != 0 || b.H != 100 {
		t.Errorf("TopBox = %+v", b)
	}
	if b := o.BottomBox(surfaceH); b.Y != surfaceH-200 || b.Bottom() != surfaceH {
		t.Errorf("BottomBox = %+v", b)
	}
}
