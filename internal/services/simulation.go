package services

import (
	"errors"
	"fmt"
	"village-delivery-sim/internal/domain"
)

var (
	// ErrTurnLimit is returned when a run exceeds the limit set by WithMaxTurns.
	ErrTurnLimit = errors.New("turn limit reached")

	// ErrOptionViolation is returned when an invalid RunOption is supplied.
	ErrOptionViolation = errors.New("invalid run option")
)

// RunOption configures RunRobot.
type RunOption func(*runOptions)

type runOptions struct {
	maxTurns int
	onMove   func(turn int, direction string, state domain.VillageState)
	err      error
}

// Abort the run with ErrTurnLimit once more than n turns were taken.
// Zero means no limit, which is the default.
func WithMaxTurns(n int) RunOption {
	return func(o *runOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max turns cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxTurns = n
	}
}

// Call fn after every move with the 1-based turn number, the direction the
// robot chose and the resulting state.
func WithOnMove(fn func(turn int, direction string, state domain.VillageState)) RunOption {
	return func(o *runOptions) {
		if fn != nil {
			o.onMove = fn
		}
	}
}

// RunResult is the outcome of a single simulation.
type RunResult struct {
	Turns int
	Moves []string
}

// Drive robot from state until every parcel is delivered and report how
// many turns it took. Each turn asks the robot for a direction, applies the
// move and hands the robot's memory back on the next turn.
func RunRobot(
	g *domain.Graph,
	state domain.VillageState,
	robot Robot,
	memory domain.Route,
	opts ...RunOption,
) (*RunResult, error) {
	if g == nil {
		return nil, errors.New("run robot: graph must be non-nil")
	}
	if robot == nil {
		return nil, errors.New("run robot: robot must be non-nil")
	}

	o := runOptions{onMove: func(int, string, domain.VillageState) {}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("run robot: %w", o.err)
	}

	res := &RunResult{Moves: []string{}}
	for turn := 0; ; turn++ {
		if state.Delivered() {
			res.Turns = turn
			return res, nil
		}
		if o.maxTurns > 0 && turn >= o.maxTurns {
			return nil, fmt.Errorf("run robot: after %d turns with %d parcels left: %w", turn, len(state.Parcels), ErrTurnLimit)
		}

		action, err := robot(state, memory)
		if err != nil {
			return nil, fmt.Errorf("run robot: turn %d: %w", turn+1, err)
		}

		state = state.Move(g, action.Direction)
		memory = action.Memory
		res.Moves = append(res.Moves, action.Direction)
		o.onMove(turn+1, action.Direction, state)
	}
}
