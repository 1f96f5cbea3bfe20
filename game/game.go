package game

import (
	"log/slog"
	"time"

	"dp-effects/game/entity"
	"dp-effects/game/manager"
	"dp-effects/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Options tunes a GridSimulation. Zero fields fall back to DefaultOptions.
type Options struct {
	CellSize      int
	BaseTick      time.Duration
	MinTick       time.Duration
	SpeedStep     time.Duration
	PointsPerGear int
	Seed          uint64
	Logger        *slog.Logger
}

// DefaultOptions matches the page game: ~8 moves/s, 10ms faster every 5
// points, capped at ~15 moves/s.
func DefaultOptions() Options {
	return Options{
		CellSize:      types.CellSize,
		BaseTick:      125 * time.Millisecond,
		MinTick:       67 * time.Millisecond,
		SpeedStep:     10 * time.Millisecond,
		PointsPerGear: 5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CellSize <= 0 {
		o.CellSize = d.CellSize
	}
	if o.BaseTick <= 0 {
		o.BaseTick = d.BaseTick
	}
	if o.MinTick <= 0 {
		o.MinTick = d.MinTick
	}
	if o.SpeedStep < 0 {
		o.SpeedStep = d.SpeedStep
	}
	if o.PointsPerGear <= 0 {
		o.PointsPerGear = d.PointsPerGear
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// GridSimulation is a snake game on a toroidal grid. It never reads a clock;
// callers pass the frame time to Advance.
type GridSimulation struct {
	opts Options
	log  *slog.Logger

	Grid     types.Grid
	OffsetX  float64 // Pixel offset that centres the grid on the surface
	OffsetY  float64
	widthPx  int
	heightPx int

	RunID    string
	snake    *entity.Snake
	score    int
	lastTick time.Time

	rng          *rand.Rand
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
}

func NewGridSimulation(opts Options) *GridSimulation {
	opts = opts.withDefaults()

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := &rand.PCGSource{}
	src.Seed(seed)
	rng := rand.New(src)

	return &GridSimulation{
		opts:         opts,
		log:          opts.Logger,
		rng:          rng,
		foodMgr:      manager.NewFoodManager(types.Grid{}, rng),
		collisionMgr: manager.NewCollisionManager(types.Grid{}),
		stateMgr:     manager.NewStateManager(),
	}
}

// updateGrid derives cols/rows and centring offsets from the surface size
func (g *GridSimulation) updateGrid(widthPx, heightPx int) {
	cell := g.opts.CellSize
	g.widthPx = widthPx
	g.heightPx = heightPx
	g.Grid = types.Grid{Width: max(widthPx/cell, 0), Height: max(heightPx/cell, 0)}
	g.OffsetX = float64(widthPx-g.Grid.Width*cell) / 2
	g.OffsetY = float64(heightPx-g.Grid.Height*cell) / 2
	g.foodMgr.SetGrid(g.Grid)
	g.collisionMgr.SetGrid(g.Grid)
}

// Start begins a new game sized to the surface. A grid smaller than 3x3
// leaves the simulation NotStarted and returns false.
func (g *GridSimulation) Start(widthPx, heightPx int) bool {
	g.Reset()
	g.updateGrid(widthPx, heightPx)
	if g.Grid.Width < types.MinGridSide || g.Grid.Height < types.MinGridSide {
		g.log.Debug("snake: surface too small", "width", widthPx, "height", heightPx,
			"cols", g.Grid.Width, "rows", g.Grid.Height)
		return false
	}

	// Centre the head, but keep the tail on the grid when cols == 3
	head := types.Point{
		X: max(g.Grid.Width/2, types.InitialLength-1),
		Y: g.Grid.Height / 2,
	}
	g.snake = entity.NewSnake(head, types.InitialLength)
	g.score = 0
	g.lastTick = time.Time{}
	g.foodMgr.GenerateFood(g.snake)
	g.stateMgr.Begin()
	g.RunID = uuid.New().String()

	g.log.Info("snake: game started", "run_id", g.RunID, "game", g.stateMgr.Games(),
		"cols", g.Grid.Width, "rows", g.Grid.Height)
	return true
}

// Restart is only legal after GameOver
func (g *GridSimulation) Restart() bool {
	if g.stateMgr.State() != types.GameOver {
		return false
	}
	return g.Start(g.widthPx, g.heightPx)
}

// Reset discards the game and returns to NotStarted. Safe to call at any time.
func (g *GridSimulation) Reset() {
	g.snake = nil
	g.score = 0
	g.lastTick = time.Time{}
	g.foodMgr.Clear()
	g.stateMgr.Reset()
	g.RunID = ""
}

// OnDirectionInput buffers a heading for the next tick. Reversals and input
// outside a running game are ignored.
func (g *GridSimulation) OnDirectionInput(dir types.Direction) bool {
	if !g.stateMgr.Running() {
		return false
	}
	return g.snake.SetDirection(dir)
}

// TickInterval returns the step period for the current score
func (g *GridSimulation) TickInterval() time.Duration {
	return TickIntervalFor(g.score, g.opts)
}

// TickIntervalFor is the speed curve: BaseTick minus SpeedStep for every
// PointsPerGear points, never below MinTick.
func TickIntervalFor(score int, opts Options) time.Duration {
	opts = opts.withDefaults()
	gears := time.Duration(max(score, 0) / opts.PointsPerGear)
	return max(opts.BaseTick-gears*opts.SpeedStep, opts.MinTick)
}

// Advance runs at most one Step when a full tick has elapsed since the last
// one. The first call after Start only records the time.
func (g *GridSimulation) Advance(now time.Time) bool {
	if !g.stateMgr.Running() {
		return false
	}
	if g.lastTick.IsZero() {
		g.lastTick = now
		return false
	}
	if now.Sub(g.lastTick) < g.TickInterval() {
		return false
	}
	g.lastTick = now
	g.Step()
	return true
}

// Step advances the game by one tick
func (g *GridSimulation) Step() {
	if !g.stateMgr.Running() {
		return
	}

	g.snake.ApplyDirection()
	newHead := g.collisionMgr.NextHead(g.snake, g.snake.Direction)

	if g.collisionMgr.CheckCollision(newHead, g.snake) != manager.NoCollision {
		g.die("self")
		return
	}

	g.snake.Move(newHead)

	if food, ok := g.foodMgr.GetFood(); ok && newHead == food {
		g.score++
		g.foodMgr.GenerateFood(g.snake)
		g.log.Debug("snake: food eaten", "run_id", g.RunID, "score", g.score, "tick", g.TickInterval())
	} else {
		g.snake.RemoveTail()
	}
}

func (g *GridSimulation) die(cause string) {
	if g.stateMgr.End(g.score) {
		g.log.Info("snake: game over", "run_id", g.RunID, "cause", cause, "score", g.score,
			"length", g.snake.Len(), "best", g.stateMgr.GetHighScore())
	}
}

// Resize re-derives the grid for a new surface size. Score is kept; a head
// that no longer fits ends the game, food that no longer fits moves.
func (g *GridSimulation) Resize(widthPx, heightPx int) {
	g.updateGrid(widthPx, heightPx)
	if g.stateMgr.State() == types.NotStarted || g.snake == nil {
		return
	}

	if g.stateMgr.Running() && g.collisionMgr.CheckBounds(g.snake) == manager.OutOfBounds {
		g.die("resize")
		return
	}
	if food, ok := g.foodMgr.GetFood(); ok && !g.collisionMgr.ValidateFood(food) {
		g.foodMgr.GenerateFood(g.snake)
	}
}

func (g *GridSimulation) State() types.State {
	return g.stateMgr.State()
}

func (g *GridSimulation) Score() int {
	return g.score
}

// HighScore is the best score of this session
func (g *GridSimulation) HighScore() int {
	return g.stateMgr.GetHighScore()
}

// Body returns a copy of the snake, tail first. Empty when not started.
func (g *GridSimulation) Body() []types.Point {
	if g.snake == nil {
		return nil
	}
	return g.snake.Cells()
}

// Games counts the games started this session, restarts included
func (g *GridSimulation) Games() int {
	return g.stateMgr.Games()
}

func (g *GridSimulation) Food() (types.Point, bool) {
	return g.foodMgr.GetFood()
}

// Direction returns the committed heading and the buffered one
func (g *GridSimulation) Direction() (current, next types.Direction) {
	if g.snake == nil {
		return types.Direction{}, types.Direction{}
	}
	return g.snake.Direction, g.snake.NextDirection
}

func (g *GridSimulation) CellSize() int {
	return g.opts.CellSize
}

// CellOrigin converts a grid cell to its top-left pixel
func (g *GridSimulation) CellOrigin(p types.Point) (float64, float64) {
	cell := float64(g.opts.CellSize)
	return g.OffsetX + float64(p.X)*cell, g.OffsetY + float64(p.Y)*cell
}
