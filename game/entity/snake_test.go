package entity

import (
	"testing"

	"dp-effects/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 2}, 3)

	want := []types.Point{{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Fatalf("expected body %v, got %v", want, s.Body)
		}
	}
	if s.GetHead() != (types.Point{X: 5, Y: 2}) {
		t.Errorf("expected head (5,2), got %v", s.GetHead())
	}
	if s.Direction != types.Right || s.NextDirection != types.Right {
		t.Errorf("expected heading right, got %v/%v", s.Direction, s.NextDirection)
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name    string
		current types.Direction
		input   types.Direction
		ok      bool
	}{
		{"turn up", types.Right, types.Up, true},
		{"turn down", types.Right, types.Down, true},
		{"same way", types.Right, types.Right, true},
		{"reverse right", types.Right, types.Left, false},
		{"reverse up", types.Up, types.Down, false},
		{"zero", types.Up, types.Direction{}, false},
		{"diagonal", types.Up, types.Direction{X: 1, Y: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{Body: []types.Point{{}}, Direction: tc.current, NextDirection: tc.current}
			if got := s.SetDirection(tc.input); got != tc.ok {
				t.Fatalf("expected %v, got %v", tc.ok, got)
			}
			want := tc.current
			if tc.ok {
				want = tc.input
			}
			if s.NextDirection != want {
				t.Errorf("expected next %v, got %v", want, s.NextDirection)
			}
		})
	}
}

func TestCellsIsACopy(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3)
	cells := s.Cells()
	cells[0] = types.Point{X: 99, Y: 99}
	if s.Body[0] == cells[0] {
		t.Error("expected Cells to return a copy")
	}
}

func TestParticleOpacity(t *testing.T) {
	p := Particle{Life: 15, MaxLife: 60}
	if p.Opacity() != 0.25 {
		t.Errorf("expected opacity 0.25, got %f", p.Opacity())
	}
	p.Life = 0
	if p.Alive() || p.Opacity() != 0 {
		t.Error("expected dead particle to be invisible")
	}
}
