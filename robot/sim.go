// Package robot provides a small single-robot grid simulation that
// satisfies interp.Robot. Every actuator call is one turn; the robot dies
// when it runs out of fuel or the world's turn limit is reached.
package robot

import (
	"context"
	"fmt"

	"github.com/rubiojr/robo/interp"
)

type heading int

const (
	north heading = iota
	east
	south
	west
)

var headingNames = [...]string{north: "N", east: "E", south: "S", west: "W"}

func (h heading) String() string { return headingNames[h] }

func parseHeading(s string) (heading, bool) {
	for i, n := range headingNames {
		if n == s {
			return heading(i), true
		}
	}
	return 0, false
}

// forward returns the unit vector the heading points along.
func (h heading) forward() (int, int) {
	switch h {
	case east:
		return 1, 0
	case south:
		return 0, -1
	case west:
		return -1, 0
	}
	return 0, 1
}

var _ interp.Robot = (*Sim)(nil)

// Sim is a simulated robot. It is not safe for concurrent use.
type Sim struct {
	world   World
	pos     Point
	heading heading
	fuel    int
	shield  bool
	turns   int
	barrels []Point
	dead    bool
}

// New places a robot in world w. The world is assumed valid.
func New(w World) *Sim {
	h, _ := parseHeading(w.Heading)
	return &Sim{
		world:   w,
		pos:     w.Start,
		heading: h,
		fuel:    w.Fuel,
		barrels: append([]Point(nil), w.Barrels...),
	}
}

// Status summarizes the robot's state.
type Status struct {
	Pos     Point
	Heading string
	Fuel    int
	Shield  bool
	Turns   int
	Barrels int
	Dead    bool
}

func (s Status) String() string {
	state := "alive"
	if s.Dead {
		state = "dead"
	}
	return fmt.Sprintf("%s at (%d,%d) facing %s, fuel %d, %d turns, %d barrels left",
		state, s.Pos.X, s.Pos.Y, s.Heading, s.Fuel, s.Turns, s.Barrels)
}

// Status returns a snapshot of the robot's state.
func (s *Sim) Status() Status {
	return Status{
		Pos:     s.pos,
		Heading: s.heading.String(),
		Fuel:    s.fuel,
		Shield:  s.shield,
		Turns:   s.turns,
		Barrels: len(s.barrels),
		Dead:    s.dead,
	}
}

// IsDead reports whether the robot has stopped for good.
func (s *Sim) IsDead() bool { return s.dead }

// Move advances up to |distance| cells, backwards when distance is
// negative, stopping at the arena walls.
func (s *Sim) Move(ctx context.Context, distance int) error {
	return s.turn(ctx, func() {
		dx, dy := s.heading.forward()
		step := 1
		if distance < 0 {
			step, distance = -1, -distance
		}
		for range distance {
			next := Point{X: s.pos.X + dx*step, Y: s.pos.Y + dy*step}
			if !s.world.inside(next) {
				break
			}
			s.pos = next
		}
	})
}

func (s *Sim) IdleWait(ctx context.Context) error {
	return s.turn(ctx, func() {})
}

func (s *Sim) TurnLeft(ctx context.Context) error {
	return s.turn(ctx, func() { s.heading = (s.heading + 3) % 4 })
}

func (s *Sim) TurnRight(ctx context.Context) error {
	return s.turn(ctx, func() { s.heading = (s.heading + 1) % 4 })
}

func (s *Sim) TurnAround(ctx context.Context) error {
	return s.turn(ctx, func() { s.heading = (s.heading + 2) % 4 })
}

// TakeFuel refuels from a barrel on the robot's cell, if there is one.
func (s *Sim) TakeFuel(ctx context.Context) error {
	return s.turn(ctx, func() {
		for i, b := range s.barrels {
			if b == s.pos {
				s.fuel += s.world.BarrelFuel
				s.barrels = append(s.barrels[:i], s.barrels[i+1:]...)
				return
			}
		}
	})
}

// SetShield switches the shield. A raised shield burns one extra fuel
// per turn.
func (s *Sim) SetShield(ctx context.Context, on bool) error {
	return s.turn(ctx, func() { s.shield = on })
}

func (s *Sim) Fuel(ctx context.Context) (int, error) {
	return s.sense(ctx, func() int { return s.fuel })
}

func (s *Sim) OpponentLR(ctx context.Context) (int, error) {
	return s.sense(ctx, func() int { lr, _ := s.relative(s.world.Opponent); return lr })
}

func (s *Sim) OpponentFB(ctx context.Context) (int, error) {
	return s.sense(ctx, func() int { _, fb := s.relative(s.world.Opponent); return fb })
}

func (s *Sim) NumBarrels(ctx context.Context) (int, error) {
	return s.sense(ctx, func() int { return len(s.barrels) })
}

func (s *Sim) ClosestBarrelLR(ctx context.Context) (int, error) {
	return s.sense(ctx, func() int {
		b, ok := s.closestBarrel()
		if !ok {
			return 0
		}
		lr, _ := s.relative(b)
		return lr
	})
}

func (s *Sim) ClosestBarrelFB(ctx context.Context) (int, error) {
	return s.sense(ctx, func() int {
		b, ok := s.closestBarrel()
		if !ok {
			return 0
		}
		_, fb := s.relative(b)
		return fb
	})
}

// DistanceToWall counts the free cells straight ahead.
func (s *Sim) DistanceToWall(ctx context.Context) (int, error) {
	return s.sense(ctx, func() int {
		switch s.heading {
		case east:
			return s.world.Width - 1 - s.pos.X
		case south:
			return s.pos.Y
		case west:
			return s.pos.X
		}
		return s.world.Height - 1 - s.pos.Y
	})
}

// turn applies one actuator action and advances the clock.
func (s *Sim) turn(ctx context.Context, action func()) error {
	if err := s.alive(ctx); err != nil {
		return err
	}
	action()
	s.turns++
	s.fuel--
	if s.shield {
		s.fuel--
	}
	if s.fuel <= 0 || (s.world.MaxTurns > 0 && s.turns >= s.world.MaxTurns) {
		s.fuel = max(s.fuel, 0)
		s.dead = true
	}
	return nil
}

func (s *Sim) sense(ctx context.Context, read func() int) (int, error) {
	if err := s.alive(ctx); err != nil {
		return 0, err
	}
	return read(), nil
}

func (s *Sim) alive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", interp.ErrCancelled, err)
	}
	if s.dead {
		return interp.ErrCancelled
	}
	return nil
}

// relative converts p to robot-relative coordinates: lr is positive to
// the right, fb positive ahead.
func (s *Sim) relative(p Point) (lr, fb int) {
	dx, dy := p.X-s.pos.X, p.Y-s.pos.Y
	fx, fy := s.heading.forward()
	rx, ry := fy, -fx
	return dx*rx + dy*ry, dx*fx + dy*fy
}

func (s *Sim) closestBarrel() (Point, bool) {
	best, found := Point{}, false
	bestDist := 0
	for _, b := range s.barrels {
		d := abs(b.X-s.pos.X) + abs(b.Y-s.pos.Y)
		if !found || d < bestDist {
			best, bestDist, found = b, d, true
		}
	}
	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
