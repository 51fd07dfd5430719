package entity

import (
	"gridsnake/game/types"
)

// Snake is the ordered body of the snake. Body[0] is the head, the last element is the tail.
type Snake struct {
	Body []types.GridPosition
}

// NewSnake lays out length segments starting at head and trailing away opposite to heading.
func NewSnake(head types.GridPosition, heading types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := heading.Opposite()
	body := make([]types.GridPosition, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return &Snake{Body: body}
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.GridPosition {
	out := make([]types.GridPosition, len(s.Body))
	copy(out, s.Body)
	return out
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) GetHead() types.GridPosition {
	return s.Body[0]
}

func (s *Snake) GetTail() types.GridPosition {
	return s.Body[len(s.Body)-1]
}

// Advance moves every segment one slot toward the head and puts the head on target.
// Iterates tail to head so each segment reads its predecessor's old position.
func (s *Snake) Advance(target types.GridPosition) {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = target
}

// Grow stacks n new segments on the tail's current cell.
func (s *Snake) Grow(n int) {
	tail := s.GetTail()
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, tail)
	}
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.GridPosition) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
