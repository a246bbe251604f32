package game

import "testing"

func TestShooterFireReloadCycle(t *testing.T) {
	seq := []BubbleColor{Red, Green, Blue, Yellow, Cyan, Magenta}
	i := 0
	draw := func() BubbleColor {
		c := seq[i%len(seq)]
		i++
		return c
	}

	s := NewShooter(draw)
	if s.State != ShooterReady {
		t.Fatal("new shooter should be ready")
	}
	if s.Loaded != Red {
		t.Fatalf("Loaded = %v, expected Red", s.Loaded)
	}
	if len(s.Queue) != 3 {
		t.Fatalf("queue length = %d, expected 3", len(s.Queue))
	}

	if got := s.Fire(); got != Red {
		t.Errorf("Fire() = %v, expected Red", got)
	}
	if s.State != ShooterReloading {
		t.Error("shooter should be reloading after Fire")
	}

	s.Reload(draw)
	if s.State != ShooterReady {
		t.Error("shooter should be ready after Reload")
	}
	if s.Loaded != Green {
		t.Errorf("Loaded = %v, expected Green from queue head", s.Loaded)
	}
	want := []BubbleColor{Blue, Yellow, Cyan}
	for j, c := range want {
		if s.Queue[j] != c {
			t.Errorf("Queue[%d] = %v, expected %v", j, s.Queue[j], c)
		}
	}
}

func TestShooterAimClamp(t *testing.T) {
	s := Shooter{}
	for i := 0; i < 100; i++ {
		s.Aim(0.1, 1.3)
	}
	if s.Angle != 1.3 {
		t.Errorf("Angle = %f, expected clamp at 1.3", s.Angle)
	}
	for i := 0; i < 100; i++ {
		s.Aim(-0.1, 1.3)
	}
	if s.Angle != -1.3 {
		t.Errorf("Angle = %f, expected clamp at -1.3", s.Angle)
	}
}
