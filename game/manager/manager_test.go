package manager

import (
	"testing"

	"dp-effects/game/entity"
	"dp-effects/game/types"

	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return rand.New(src)
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(grid, newRand(1))
	snake := entity.NewSnake(types.Point{X: 3, Y: 1}, 3)

	for i := 0; i < 200; i++ {
		if !fm.GenerateFood(snake) {
			t.Fatal("expected food to be placed")
		}
		food, ok := fm.GetFood()
		if !ok || !grid.Contains(food) {
			t.Fatalf("expected food on grid, got %v", food)
		}
		if snake.Occupies(food) {
			t.Fatalf("food %v placed on the snake", food)
		}
	}
}

func TestGenerateFoodCoversFreeCells(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, newRand(5))
	snake := entity.NewSnake(types.Point{X: 2, Y: 1}, 3)

	free := fm.FreeCells(snake)
	if len(free) != 6 {
		t.Fatalf("expected 6 free cells, got %d", len(free))
	}

	seen := make(map[types.Point]int)
	for i := 0; i < 600; i++ {
		fm.GenerateFood(snake)
		food, _ := fm.GetFood()
		seen[food]++
	}
	for _, p := range free {
		if seen[p] == 0 {
			t.Errorf("free cell %v never chosen", p)
		}
	}
}

func TestFreeCellsIgnoresBodyOffGrid(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, newRand(1))
	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, 12)

	free := fm.FreeCells(snake)
	if len(free) != 7 {
		t.Fatalf("expected 7 free cells, got %d", len(free))
	}
	if !fm.GenerateFood(snake) {
		t.Error("expected food to be placed")
	}
}

func TestGenerateFoodFullGrid(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, newRand(1))
	snake := &entity.Snake{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			snake.Body = append(snake.Body, types.Point{X: x, Y: y})
		}
	}
	fm.PlaceFood(types.Point{X: 1, Y: 1})

	if fm.GenerateFood(snake) {
		t.Error("expected no food on a full grid")
	}
	if food, ok := fm.GetFood(); !ok || food != (types.Point{X: 1, Y: 1}) {
		t.Errorf("expected food left at (1,1), got %v (placed=%v)", food, ok)
	}
}

func TestFoodClear(t *testing.T) {
	fm := NewFoodManager(types.Grid{Width: 5, Height: 5}, newRand(1))
	fm.PlaceFood(types.Point{X: 2, Y: 2})
	fm.Clear()
	if _, ok := fm.GetFood(); ok {
		t.Error("expected no food after Clear")
	}
}

func TestNextHeadWraps(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 4})
	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
		want types.Point
	}{
		{"inside", types.Point{X: 2, Y: 2}, types.Right, types.Point{X: 3, Y: 2}},
		{"right", types.Point{X: 4, Y: 0}, types.Right, types.Point{X: 0, Y: 0}},
		{"left", types.Point{X: 0, Y: 3}, types.Left, types.Point{X: 4, Y: 3}},
		{"up", types.Point{X: 1, Y: 0}, types.Up, types.Point{X: 1, Y: 3}},
		{"down", types.Point{X: 1, Y: 3}, types.Down, types.Point{X: 1, Y: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snake := &entity.Snake{Body: []types.Point{tc.head}}
			if got := cm.NextHead(snake, tc.dir); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCheckCollisionCountsTail(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, 3)

	if got := cm.CheckCollision(types.Point{X: 3, Y: 5}, snake); got != SelfCollision {
		t.Errorf("expected tail cell to collide, got %v", got)
	}
	if got := cm.CheckCollision(types.Point{X: 6, Y: 5}, snake); got != NoCollision {
		t.Errorf("expected free cell not to collide, got %v", got)
	}
}

func TestCheckBounds(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snake := entity.NewSnake(types.Point{X: 8, Y: 5}, 3)
	if got := cm.CheckBounds(snake); got != NoCollision {
		t.Errorf("expected in bounds, got %v", got)
	}

	cm.SetGrid(types.Grid{Width: 8, Height: 10})
	if got := cm.CheckBounds(snake); got != OutOfBounds {
		t.Errorf("expected out of bounds, got %v", got)
	}
	if cm.ValidateFood(types.Point{X: 8, Y: 0}) {
		t.Error("expected food at x=8 to be invalid on an 8-wide grid")
	}
	if !cm.ValidateFood(types.Point{X: 7, Y: 9}) {
		t.Error("expected food at (7,9) to be valid")
	}
}

func TestStateTransitions(t *testing.T) {
	sm := NewStateManager()
	if sm.State() != types.NotStarted {
		t.Fatalf("expected NotStarted, got %s", sm.State())
	}
	if sm.End(5) {
		t.Error("expected End to be refused before Begin")
	}
	if !sm.Begin() {
		t.Fatal("expected Begin from NotStarted")
	}
	if sm.Begin() {
		t.Error("expected Begin to be refused while running")
	}
	if !sm.End(7) {
		t.Fatal("expected End while running")
	}
	if sm.GetHighScore() != 7 {
		t.Errorf("expected high score 7, got %d", sm.GetHighScore())
	}
	if !sm.Begin() {
		t.Fatal("expected Begin from GameOver")
	}
	sm.End(3)
	if sm.GetHighScore() != 7 {
		t.Errorf("expected high score to stay 7, got %d", sm.GetHighScore())
	}
	sm.Reset()
	if sm.State() != types.NotStarted || sm.Games() != 2 {
		t.Errorf("expected NotStarted after 2 games, got %s after %d", sm.State(), sm.Games())
	}
}
