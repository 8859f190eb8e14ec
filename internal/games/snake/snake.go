package snake

import (
	"time"

	"github.com/vovakirdan/gameloop/internal/core"
	"github.com/vovakirdan/gameloop/internal/world"
)

// minRadius is the smallest circle the snake is drawn with.
const minRadius = 1.0

// Snake is the placeholder entity: a stationary filled circle.
type Snake struct {
	world.Base
	radius float64
	color  core.Color
}

// NewSnake creates a snake at pos. The radius is half of width, minimum 1.
func NewSnake(pos core.Vector, width float64, color core.Color) *Snake {
	return &Snake{
		Base:   world.NewBase(pos),
		radius: max(width/2, minRadius),
		color:  color,
	}
}

// Radius returns the drawn circle radius.
func (s *Snake) Radius() float64 {
	return s.radius
}

// Update implements world.Entity. The snake does not move yet.
func (s *Snake) Update(time.Duration) error {
	return nil
}

// Render implements world.Entity.
func (s *Snake) Render(dst core.Surface) error {
	dst.DrawCircle(s.Position(), s.radius, s.color)
	return nil
}
