package entity

import (
	"dp-effects/game/types"
)

// Snake is the player's body on the grid. Body[0] is the tail and the last
// element is the head.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction
	NextDirection types.Direction
}

// NewSnake lays out a snake of length cells ending at head, heading right
func NewSnake(head types.Point, length int) *Snake {
	body := make([]types.Point, 0, length)
	for i := length - 1; i >= 0; i-- {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{
		Body:          body,
		Direction:     types.Right,
		NextDirection: types.Right,
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

// Occupies reports whether any body cell equals p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection buffers dir for the next tick. A turn straight back into the
// neck is dropped; the check runs against the heading of the last tick, not
// the buffered one, so two quick turns cannot fold the head onto itself.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Reverse() {
		return false
	}
	s.NextDirection = dir
	return true
}

// ApplyDirection commits the buffered heading. Called once per tick.
func (s *Snake) ApplyDirection() {
	s.Direction = s.NextDirection
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body, tail first
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
