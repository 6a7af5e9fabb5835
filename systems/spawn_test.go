package systems

import (
	"math"
	"math/rand"
	"testing"
)

func TestEdgePointLiesOnEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const w, h = 800, 600

	var seen [4]int
	for i := 0; i < 4000; i++ {
		p := EdgePoint(rng, w, h)
		switch {
		case p.Y == 0:
			seen[EdgeTop]++
		case p.Y == h:
			seen[EdgeBottom]++
		case p.X == 0:
			seen[EdgeLeft]++
		case p.X == w:
			seen[EdgeRight]++
		default:
			t.Fatalf("point %v is not on an edge", p)
		}
		if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
			t.Fatalf("point %v outside field", p)
		}
	}
	for edge, n := range seen {
		if n < 800 || n > 1200 {
			t.Errorf("edge %d picked %d times of 4000", edge, n)
		}
	}
}

func TestRandomHeadingSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		v := RandomHeading(rng, 1.5)
		if math.Abs(Magnitude(v)-1.5) > 1e-9 {
			t.Fatalf("speed = %v, want 1.5", Magnitude(v))
		}
	}
}
