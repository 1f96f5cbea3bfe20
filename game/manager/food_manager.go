package manager

import (
	"dp-effects/game/entity"
	"dp-effects/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager keeps the single food cell of a game
type FoodManager struct {
	grid   types.Grid
	food   types.Point
	placed bool
	rng    *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// SetGrid updates the bounds used for the next spawn
func (fm *FoodManager) SetGrid(grid types.Grid) {
	fm.grid = grid
}

// FreeCells lists every grid cell the snake does not occupy, row by row.
// After a shrinking resize part of the body may lie off the grid; those
// cells are not counted.
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.Body {
		if fm.grid.Contains(part) {
			occupied[part] = struct{}{}
		}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

// GenerateFood picks uniformly among free cells. With no free cell the
// current food is left where it is and false is returned.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) bool {
	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return false
	}
	fm.food = free[fm.rng.Intn(len(free))]
	fm.placed = true
	return true
}

// GetFood returns the food cell and whether one has been placed
func (fm *FoodManager) GetFood() (types.Point, bool) {
	return fm.food, fm.placed
}

// PlaceFood puts the food on a given cell
func (fm *FoodManager) PlaceFood(p types.Point) {
	fm.food = p
	fm.placed = true
}

func (fm *FoodManager) Clear() {
	fm.food = types.Point{}
	fm.placed = false
}
