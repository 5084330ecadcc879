package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/platform/obs"
	"village-delivery-sim/internal/village"
)

// SimulationRequest describes a single robot run on a random village state.
type SimulationRequest struct {
	Robot       string
	ParcelCount int
	Start       string
	Seed        int64
	MaxTurns    int
}

// Simulation is the initial state of a run together with its result.
type Simulation struct {
	Robot   string
	Initial domain.VillageState
	Result  *RunResult
}

// Simulate generates a random state on m and runs the named robot on it.
func Simulate(ctx context.Context, req SimulationRequest, m *village.Map) (_ *Simulation, err error) {
	defer obs.Time(ctx, "services.Simulate")(&err)

	if m == nil || m.Graph == nil {
		return nil, errors.New("simulate: village map must be non-nil")
	}

	src := SourceForSeed(req.Seed)
	name := strings.TrimSpace(req.Robot)
	entry, err := RobotByName(name, m.Graph, m.MailRoute, src)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	state, err := RandomVillageState(m.Graph, src, ScenarioOptions{ParcelCount: req.ParcelCount, Start: req.Start})
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	res, err := RunRobot(m.Graph, state, entry.Robot, entry.Memory, WithMaxTurns(req.MaxTurns))
	if err != nil {
		return nil, fmt.Errorf("simulate: robot %q: %w", name, err)
	}

	return &Simulation{Robot: name, Initial: state, Result: res}, nil
}
