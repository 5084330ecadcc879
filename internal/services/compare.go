package services

import (
	"errors"
	"fmt"
	"village-delivery-sim/internal/domain"
)

const DefaultTrials = 100

// CompareOptions controls CompareRobots. Zero values use defaults.
type CompareOptions struct {
	Trials   int
	Scenario ScenarioOptions
	// MaxTurns bounds every single run; zero means unbounded.
	MaxTurns int
}

// Comparison holds the aggregated outcome of CompareRobots.
type Comparison struct {
	RobotA   string
	RobotB   string
	Trials   int
	TotalA   int
	TotalB   int
	AverageA float64
	AverageB float64
}

// Run both robots on the same randomly generated states and report the
// average number of turns each needed.
//
// Every trial draws one fresh state from src and runs a then b on it, so
// both robots always face identical tasks.
func CompareRobots(
	g *domain.Graph,
	a RobotEntry,
	b RobotEntry,
	opts CompareOptions,
	src RandomSource,
) (*Comparison, error) {
	if a.Robot == nil || b.Robot == nil {
		return nil, errors.New("compare robots: both robots must be non-nil")
	}
	if src == nil {
		return nil, errors.New("compare robots: random source must be non-nil")
	}

	trials := opts.Trials
	if trials == 0 {
		trials = DefaultTrials
	}
	if trials < 0 {
		return nil, fmt.Errorf("compare robots: trials must not be negative (%d)", trials)
	}

	runOpts := []RunOption{WithMaxTurns(opts.MaxTurns)}

	totalA, totalB := 0, 0
	for i := 0; i < trials; i++ {
		state, err := RandomVillageState(g, src, opts.Scenario)
		if err != nil {
			return nil, fmt.Errorf("compare robots: trial %d: %w", i+1, err)
		}

		resA, err := RunRobot(g, state, a.Robot, a.Memory, runOpts...)
		if err != nil {
			return nil, fmt.Errorf("compare robots: trial %d robot %q: %w", i+1, a.Name, err)
		}

		resB, err := RunRobot(g, state, b.Robot, b.Memory, runOpts...)
		if err != nil {
			return nil, fmt.Errorf("compare robots: trial %d robot %q: %w", i+1, b.Name, err)
		}

		totalA += resA.Turns
		totalB += resB.Turns
	}

	cmp := &Comparison{
		RobotA: a.Name,
		RobotB: b.Name,
		Trials: trials,
		TotalA: totalA,
		TotalB: totalB,
	}
	if trials > 0 {
		cmp.AverageA = float64(totalA) / float64(trials)
		cmp.AverageB = float64(totalB) / float64(trials)
	}
	return cmp, nil
}
