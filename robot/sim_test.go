package robot

import (
	"context"
	"testing"

	"github.com/rubiojr/robo/env"
	"github.com/rubiojr/robo/interp"
	"github.com/rubiojr/robo/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallWorld() World {
	return World{
		Width:      6,
		Height:     6,
		Fuel:       100,
		BarrelFuel: 10,
		Start:      Point{X: 0, Y: 0},
		Heading:    "N",
		Opponent:   Point{X: 3, Y: 4},
		Barrels:    []Point{{X: 0, Y: 2}, {X: 5, Y: 5}},
	}
}

func TestDefaultWorldIsValid(t *testing.T) {
	assert.NoError(t, DefaultWorld().Validate())
}

func TestMoveStopsAtWall(t *testing.T) {
	ctx := context.Background()
	s := New(smallWorld())

	require.NoError(t, s.Move(ctx, 10))
	st := s.Status()
	assert.Equal(t, Point{X: 0, Y: 5}, st.Pos)
	assert.Equal(t, 99, st.Fuel, "a move costs one turn regardless of distance")

	require.NoError(t, s.Move(ctx, -2))
	assert.Equal(t, Point{X: 0, Y: 3}, s.Status().Pos)
}

func TestTurning(t *testing.T) {
	ctx := context.Background()
	s := New(smallWorld())

	require.NoError(t, s.TurnRight(ctx))
	assert.Equal(t, "E", s.Status().Heading)
	require.NoError(t, s.TurnAround(ctx))
	assert.Equal(t, "W", s.Status().Heading)
	require.NoError(t, s.TurnLeft(ctx))
	assert.Equal(t, "S", s.Status().Heading)
	assert.Equal(t, 3, s.Status().Turns)
}

func TestRelativeSensors(t *testing.T) {
	ctx := context.Background()
	s := New(smallWorld())

	read := func(fn func(context.Context) (int, error)) int {
		t.Helper()
		v, err := fn(ctx)
		require.NoError(t, err)
		return v
	}

	// Facing north from (0,0) the opponent at (3,4) is right and ahead.
	assert.Equal(t, 3, read(s.OpponentLR))
	assert.Equal(t, 4, read(s.OpponentFB))
	assert.Equal(t, 5, read(s.DistanceToWall))
	assert.Equal(t, 0, read(s.ClosestBarrelLR))
	assert.Equal(t, 2, read(s.ClosestBarrelFB))
	assert.Equal(t, 2, read(s.NumBarrels))

	require.NoError(t, s.TurnRight(ctx))
	// Facing east, north is to the left.
	assert.Equal(t, -4, read(s.OpponentLR))
	assert.Equal(t, 3, read(s.OpponentFB))
	assert.Equal(t, -2, read(s.ClosestBarrelLR))
	assert.Equal(t, 0, read(s.ClosestBarrelFB))
	assert.Equal(t, 5, read(s.DistanceToWall))

	require.NoError(t, s.TurnRight(ctx))
	assert.Equal(t, 0, read(s.DistanceToWall), "facing south at the bottom edge")
}

func TestSensorsDoNotSpendTurns(t *testing.T) {
	ctx := context.Background()
	s := New(smallWorld())
	for range 5 {
		_, err := s.Fuel(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, s.Status().Turns)
	assert.Equal(t, 100, s.Status().Fuel)
}

func TestTakeFuel(t *testing.T) {
	ctx := context.Background()
	s := New(smallWorld())

	require.NoError(t, s.TakeFuel(ctx))
	assert.Equal(t, 99, s.Status().Fuel, "no barrel under the robot")
	assert.Equal(t, 2, s.Status().Barrels)

	require.NoError(t, s.Move(ctx, 2))
	require.NoError(t, s.TakeFuel(ctx))
	st := s.Status()
	assert.Equal(t, 107, st.Fuel)
	assert.Equal(t, 1, st.Barrels)

	n, err := s.ClosestBarrelFB(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestNoBarrelsLeft(t *testing.T) {
	w := smallWorld()
	w.Barrels = nil
	s := New(w)
	lr, err := s.ClosestBarrelLR(context.Background())
	require.NoError(t, err)
	assert.Zero(t, lr)
}

func TestShieldBurnsExtraFuel(t *testing.T) {
	ctx := context.Background()
	s := New(smallWorld())

	require.NoError(t, s.SetShield(ctx, true))
	assert.Equal(t, 98, s.Status().Fuel)
	require.NoError(t, s.IdleWait(ctx))
	assert.Equal(t, 96, s.Status().Fuel)
	require.NoError(t, s.SetShield(ctx, false))
	assert.Equal(t, 95, s.Status().Fuel)
	assert.False(t, s.Status().Shield)
}

func TestDiesWhenOutOfFuel(t *testing.T) {
	ctx := context.Background()
	w := smallWorld()
	w.Fuel = 2
	s := New(w)

	require.NoError(t, s.IdleWait(ctx))
	assert.False(t, s.IsDead())
	require.NoError(t, s.IdleWait(ctx))
	assert.True(t, s.IsDead())

	err := s.TurnLeft(ctx)
	assert.ErrorIs(t, err, interp.ErrCancelled)
	_, err = s.Fuel(ctx)
	assert.ErrorIs(t, err, interp.ErrCancelled)
	assert.Equal(t, 2, s.Status().Turns)
}

func TestDiesAtTurnLimit(t *testing.T) {
	ctx := context.Background()
	w := smallWorld()
	w.MaxTurns = 3
	s := New(w)
	for range 3 {
		require.NoError(t, s.TurnLeft(ctx))
	}
	assert.True(t, s.IsDead())
	assert.Equal(t, 97, s.Status().Fuel)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(smallWorld())
	err := s.Move(ctx, 1)
	assert.ErrorIs(t, err, interp.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.Status().Turns)
}

func TestRunProgram(t *testing.T) {
	vars := env.New()
	prog, err := parser.ParseSource("walk.prog", "while (gt(wallDist, 0)) { move; } turnR;", vars)
	require.NoError(t, err)

	s := New(smallWorld())
	require.NoError(t, interp.New(s, vars).Run(context.Background(), prog))

	st := s.Status()
	assert.Equal(t, Point{X: 0, Y: 5}, st.Pos)
	assert.Equal(t, "E", st.Heading)
	assert.Equal(t, 6, st.Turns)
	assert.Equal(t, 94, st.Fuel)
}

func TestLoopEndsWhenRobotDies(t *testing.T) {
	vars := env.New()
	prog, err := parser.ParseSource("spin.prog", "loop { turnL; }", vars)
	require.NoError(t, err)

	w := smallWorld()
	w.Fuel = 4
	s := New(w)
	err = interp.New(s, vars).Run(context.Background(), prog)
	require.NoError(t, err)
	assert.True(t, s.IsDead())
	assert.Equal(t, 4, s.Status().Turns)
}

func TestStatusString(t *testing.T) {
	s := New(smallWorld())
	assert.Equal(t, "alive at (0,0) facing N, fuel 100, 0 turns, 2 barrels left", s.Status().String())
}
