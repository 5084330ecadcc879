package services

import (
	"testing"
	"village-delivery-sim/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCompareRobotsGoalBeatsRoute(t *testing.T) {
	m := villageMap(t)

	cmp, err := CompareRobots(
		m.Graph,
		RobotEntry{Name: RobotRoute, Robot: RouteRobot(m.MailRoute)},
		RobotEntry{Name: RobotGoal, Robot: GoalOrientedRobot(m.Graph)},
		CompareOptions{MaxTurns: 1000},
		NewSeededSource(2024),
	)
	require.NoError(t, err)
	require.Equal(t, DefaultTrials, cmp.Trials)
	require.LessOrEqual(t, cmp.AverageB, cmp.AverageA)
	require.InDelta(t, float64(cmp.TotalA)/float64(cmp.Trials), cmp.AverageA, 1e-9)
	require.InDelta(t, float64(cmp.TotalB)/float64(cmp.Trials), cmp.AverageB, 1e-9)
}

func TestCompareRobotsUsesSameStatePerTrial(t *testing.T) {
	m := villageMap(t)

	// The sentinel memory marks the first turn of each run.
	const marker = "<start>"
	recorder := func(seen *[]domain.VillageState) Robot {
		goal := GoalOrientedRobot(m.Graph)
		return func(state domain.VillageState, memory domain.Route) (Action, error) {
			if len(memory) == 1 && memory[0] == marker {
				*seen = append(*seen, state)
				memory = nil
			}
			return goal(state, memory)
		}
	}

	var seenA, seenB []domain.VillageState
	cmp, err := CompareRobots(
		m.Graph,
		RobotEntry{Name: "a", Robot: recorder(&seenA), Memory: domain.Route{marker}},
		RobotEntry{Name: "b", Robot: recorder(&seenB), Memory: domain.Route{marker}},
		CompareOptions{Trials: 20},
		NewSeededSource(5),
	)
	require.NoError(t, err)
	require.Len(t, seenA, 20)
	require.Equal(t, seenA, seenB)
	require.Equal(t, cmp.TotalA, cmp.TotalB)
}

func TestCompareRobotsValidation(t *testing.T) {
	m := villageMap(t)
	goal := RobotEntry{Name: RobotGoal, Robot: GoalOrientedRobot(m.Graph)}

	_, err := CompareRobots(m.Graph, goal, RobotEntry{}, CompareOptions{}, NewSeededSource(1))
	require.Error(t, err)

	_, err = CompareRobots(m.Graph, goal, goal, CompareOptions{}, nil)
	require.Error(t, err)

	_, err = CompareRobots(m.Graph, goal, goal, CompareOptions{Trials: -1}, NewSeededSource(1))
	require.Error(t, err)

	_, err = CompareRobots(m.Graph, goal, goal, CompareOptions{Scenario: ScenarioOptions{Start: "Moon"}}, NewSeededSource(1))
	require.ErrorIs(t, err, domain.ErrUnknownLocation)
}
