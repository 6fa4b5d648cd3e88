package entity

import (
	"classic-snake/game/types"
)

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	Body []types.Point
}

// NewSnake lays out length cells in a row, head at start and the body
// trailing behind it opposite to heading.
func NewSnake(start types.Point, heading types.Direction, length, cell int) *Snake {
	body := make([]types.Point, 0, length)
	p := start
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Step(heading.Opposite(), cell)
	}
	return &Snake{Body: body}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move inserts newHead at the front without touching the tail.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveHead undoes the last Move.
func (s *Snake) RemoveHead() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// HasDuplicates reports whether any cell appears twice in the body.
func (s *Snake) HasDuplicates() bool {
	seen := make(map[types.Point]struct{}, len(s.Body))
	for _, part := range s.Body {
		if _, ok := seen[part]; ok {
			return true
		}
		seen[part] = struct{}{}
	}
	return false
}

// Cells returns a copy of the body that callers may keep.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
