package life

import "testing"

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5, true)
	life.Set(2, 1, true)
	life.Set(2, 2, true)
	life.Set(2, 3, true)

	if changed := life.Step(); changed != 4 {
		t.Fatalf("expected 4 changed cells, got %d", changed)
	}

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := life.Alive(x, y); shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	born, died := 0, 0
	life.Changes(func(x, y int, alive bool) {
		if alive {
			born++
		} else {
			died++
		}
	})
	if born != 2 || died != 2 {
		t.Fatalf("changes reported %d born, %d died", born, died)
	}

	life.Step()
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if !life.Alive(p[0], p[1]) {
			t.Fatalf("after second step cell %v should be alive", p)
		}
	}
	if life.Population() != 3 {
		t.Fatalf("population %d", life.Population())
	}
}

func TestEdgesWithoutWrap(t *testing.T) {
	life := New(3, 3, false)
	life.Set(0, 0, true)
	life.Set(0, 1, true)
	life.Set(0, 2, true)
	life.Step()
	if life.Alive(2, 1) {
		t.Fatal("wrapping neighbour counted on a bounded board")
	}
	if !life.Alive(1, 1) || !life.Alive(0, 1) {
		t.Fatal("blinker on the edge did not rotate")
	}
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(16, 16, false), New(16, 16, false)
	a.Reset(5, 0.3)
	b.Reset(5, 0.3)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs between equal seeds", i)
		}
	}
	if p := a.Population(); p == 0 || p == 256 {
		t.Fatalf("density 0.3 produced population %d", p)
	}
}
