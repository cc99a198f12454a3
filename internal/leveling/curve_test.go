package leveling

import "testing"

func TestLevelZeroPoints(t *testing.T) {
	for _, max := range []int{1, 100, 1000, 5000} {
		if got := Level(0, max); got != 1 {
			t.Errorf("Level(0, %d) = %d, want 1", max, got)
		}
		if got := Level(-5, max); got != 1 {
			t.Errorf("Level(-5, %d) = %d, want 1", max, got)
		}
	}
}

func TestLevelMidpoint(t *testing.T) {
	// At exactly half the points the logistic sits at 0.5,
	// so the level should land on 50 after flooring.
	got := Level(500, 1000)
	if got < 49 || got > 51 {
		t.Errorf("Level(500, 1000) = %d, want ~50", got)
	}
}

func TestLevelMonotonic(t *testing.T) {
	const max = 1000
	prev := 0
	for pts := 0; pts <= max; pts++ {
		lvl := Level(pts, max)
		if lvl < prev {
			t.Fatalf("Level(%d, %d) = %d, below previous %d", pts, max, lvl, prev)
		}
		prev = lvl
	}
}

func TestLevelBounds(t *testing.T) {
	const max = 1000
	// Includes inputs well past maxPoints to exercise the explicit clamp.
	for _, pts := range []int{0, 1, 10, 500, 999, 1000, 1500, 10000} {
		lvl := Level(pts, max)
		if lvl < MinLevel || lvl > MaxLevel {
			t.Errorf("Level(%d, %d) = %d, outside [%d, %d]", pts, max, lvl, MinLevel, MaxLevel)
		}
	}
}

func TestLevelCurveShape(t *testing.T) {
	const max = 1000
	// Slow start: a tenth of the points should still be near the floor.
	if lvl := Level(100, max); lvl > 5 {
		t.Errorf("Level(100, %d) = %d, expected near floor", max, lvl)
	}
	// Plateau: nine tenths should already be close to the ceiling.
	if lvl := Level(900, max); lvl < 95 {
		t.Errorf("Level(900, %d) = %d, expected near ceiling", max, lvl)
	}
	// The middle stretch grows faster than the edges.
	lowGain := Level(200, max) - Level(100, max)
	midGain := Level(550, max) - Level(450, max)
	if midGain <= lowGain {
		t.Errorf("mid gain %d not greater than low gain %d", midGain, lowGain)
	}
}

func TestLevelDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if Level(347, 1000) != Level(347, 1000) {
			t.Fatal("Level is not deterministic for identical inputs")
		}
	}
}
