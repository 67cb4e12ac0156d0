package interp

import "context"

// Robot is the capability surface a program drives. Every call may block
// until the surrounding simulation has advanced a turn. Once the robot is
// dead, implementations should return an error wrapping ErrCancelled.
type Robot interface {
	Move(ctx context.Context, distance int) error
	IdleWait(ctx context.Context) error
	TurnLeft(ctx context.Context) error
	TurnRight(ctx context.Context) error
	TurnAround(ctx context.Context) error
	TakeFuel(ctx context.Context) error
	SetShield(ctx context.Context, on bool) error

	Fuel(ctx context.Context) (int, error)
	OpponentLR(ctx context.Context) (int, error)
	OpponentFB(ctx context.Context) (int, error)
	NumBarrels(ctx context.Context) (int, error)
	ClosestBarrelLR(ctx context.Context) (int, error)
	ClosestBarrelFB(ctx context.Context) (int, error)
	DistanceToWall(ctx context.Context) (int, error)

	// IsDead is the termination signal. It is consulted between loop
	// iterations and before every capability call.
	IsDead() bool
}
