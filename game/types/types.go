package types

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps p onto the grid, wrapping across edges
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is a unit step on the grid
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Reverse returns the opposite heading
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// Valid reports whether d is one of the four unit headings
func (d Direction) Valid() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Color is an 8-bit RGBA colour
type Color struct {
	R, G, B, A uint8
}

// WithAlpha returns c with its alpha scaled by a in [0,1]
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// State is the lifecycle of a grid simulation
type State int

const (
	NotStarted State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Game constants
const (
	InitialLength = 3  // Cells in a freshly spawned snake
	MinGridSide   = 3  // Smallest cols/rows a game can start on
	CellSize      = 40 // Pixels per cell
)
