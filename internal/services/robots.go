package services

import (
	"errors"
	"fmt"
	"sort"
	"village-delivery-sim/internal/domain"
)

var ErrUnknownRobot = errors.New("unknown robot")

// Action is a robot's decision for one turn: where to go next and the
// memory it wants back on the following turn.
type Action struct {
	Direction string
	Memory    domain.Route
}

// Robot decides the next move from the current state and its own memory.
// Robots are pure apart from any randomness they are given.
type Robot func(state domain.VillageState, memory domain.Route) (Action, error)

// Walk to a uniformly random neighbor every turn. Memory is ignored.
func RandomRobot(g *domain.Graph, src RandomSource) Robot {
	return func(state domain.VillageState, _ domain.Route) (Action, error) {
		nbrs, err := g.Neighbors(state.Place)
		if err != nil {
			return Action{}, fmt.Errorf("random robot: %w", err)
		}

		next, err := PickRandom(src, nbrs)
		if err != nil {
			return Action{}, fmt.Errorf("random robot: at %q: %w", state.Place, err)
		}
		return Action{Direction: next}, nil
	}
}

// Follow mailRoute over and over, regardless of where parcels are.
// The route must be non-empty.
func RouteRobot(mailRoute domain.Route) Robot {
	full := make(domain.Route, len(mailRoute))
	copy(full, mailRoute)

	return func(_ domain.VillageState, memory domain.Route) (Action, error) {
		if len(memory) == 0 {
			memory = full
		}

		next, rest, ok := memory.Next()
		if !ok {
			return Action{}, errors.New("route robot: mail route is empty")
		}
		return Action{Direction: next, Memory: rest}, nil
	}
}

// Serve parcels one at a time in list order.
//
// With no route in memory the robot looks at the first parcel only: it
// plans a route to the parcel if it is elsewhere, or to the parcel's
// address if the robot is already there. It does not consider the other
// parcels when choosing; see LazyRobot for that.
func GoalOrientedRobot(g *domain.Graph) Robot {
	return func(state domain.VillageState, memory domain.Route) (Action, error) {
		if len(memory) == 0 {
			if len(state.Parcels) == 0 {
				return Action{}, errors.New("goal robot: no parcels left")
			}

			parcel := state.Parcels[0]
			target := parcel.Place
			if parcel.Place == state.Place {
				target = parcel.Address
			}

			route, err := FindRoute(g, state.Place, target)
			if err != nil {
				return Action{}, fmt.Errorf("goal robot: %w", err)
			}
			memory = route
		}

		next, rest, ok := memory.Next()
		if !ok {
			return Action{}, fmt.Errorf("goal robot: empty route from %q", state.Place)
		}
		return Action{Direction: next, Memory: rest}, nil
	}
}

// Plan a route for every parcel and take the best one.
//
// Shorter routes win. Between routes of equal length a pickup beats a
// delivery, since it lets the robot carry more at once, and remaining ties
// go to the earlier parcel so the choice stays deterministic.
func LazyRobot(g *domain.Graph) Robot {
	return func(state domain.VillageState, memory domain.Route) (Action, error) {
		if len(memory) == 0 {
			if len(state.Parcels) == 0 {
				return Action{}, errors.New("lazy robot: no parcels left")
			}

			type candidate struct {
				route  domain.Route
				pickUp bool
			}

			var best *candidate
			for _, p := range state.Parcels {
				c := candidate{pickUp: p.Place != state.Place}
				target := p.Address
				if c.pickUp {
					target = p.Place
				}

				route, err := FindRoute(g, state.Place, target)
				if err != nil {
					return Action{}, fmt.Errorf("lazy robot: %w", err)
				}
				c.route = route

				if best == nil ||
					len(c.route) < len(best.route) ||
					(len(c.route) == len(best.route) && c.pickUp && !best.pickUp) {
					best = &c
				}
			}
			memory = best.route
		}

		next, rest, ok := memory.Next()
		if !ok {
			return Action{}, fmt.Errorf("lazy robot: empty route from %q", state.Place)
		}
		return Action{Direction: next, Memory: rest}, nil
	}
}

const (
	RobotRandom = "random"
	RobotRoute  = "route"
	RobotGoal   = "goal"
	RobotLazy   = "lazy"
)

// RobotEntry pairs a robot with the memory it starts from.
type RobotEntry struct {
	Name   string
	Robot  Robot
	Memory domain.Route
}

// Return the names accepted by RobotByName, sorted.
func RobotNames() []string {
	names := []string{RobotRandom, RobotRoute, RobotGoal, RobotLazy}
	sort.Strings(names)
	return names
}

// Resolve a robot by name. The random robot draws from src; the route
// robot follows mailRoute.
func RobotByName(name string, g *domain.Graph, mailRoute domain.Route, src RandomSource) (RobotEntry, error) {
	switch name {
	case RobotRandom:
		return RobotEntry{Name: name, Robot: RandomRobot(g, src)}, nil
	case RobotRoute:
		if len(mailRoute) == 0 {
			return RobotEntry{}, errors.New("robot by name: route robot needs a non-empty mail route")
		}
		return RobotEntry{Name: name, Robot: RouteRobot(mailRoute)}, nil
	case RobotGoal:
		return RobotEntry{Name: name, Robot: GoalOrientedRobot(g)}, nil
	case RobotLazy:
		return RobotEntry{Name: name, Robot: LazyRobot(g)}, nil
	default:
		return RobotEntry{}, fmt.Errorf("robot by name %q: %w", name, ErrUnknownRobot)
	}
}
