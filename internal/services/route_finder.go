package services

import (
	"errors"
	"fmt"
	"village-delivery-sim/internal/domain"
)

var ErrNoPath = errors.New("no path")

type frontierItem struct {
	at    string
	route domain.Route
}

// Find a shortest route from one place to another.
//
// The search is breadth-first over unweighted roads, so the first time the
// target is discovered the route to it has the fewest steps. Among routes of
// equal length the one found first in adjacency order wins. The returned
// route excludes from and ends with to; it is empty when from == to.
func FindRoute(g *domain.Graph, from, to string) (domain.Route, error) {
	if !g.HasLocation(from) {
		return nil, fmt.Errorf("find route: from %q: %w", from, domain.ErrUnknownLocation)
	}
	if !g.HasLocation(to) {
		return nil, fmt.Errorf("find route: to %q: %w", to, domain.ErrUnknownLocation)
	}
	if from == to {
		return domain.Route{}, nil
	}

	seen := map[string]struct{}{from: {}}
	frontier := []frontierItem{{at: from, route: domain.Route{}}}

	for len(frontier) > 0 {
		item := frontier[0]
		frontier = frontier[1:]

		nbrs, err := g.Neighbors(item.at)
		if err != nil {
			return nil, fmt.Errorf("find route: %w", err)
		}

		for _, n := range nbrs {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}

			// Full slice expression forces a copy on append so sibling
			// routes never share a tail.
			route := append(item.route[:len(item.route):len(item.route)], n)
			if n == to {
				return route, nil
			}
			frontier = append(frontier, frontierItem{at: n, route: route})
		}
	}

	return nil, fmt.Errorf("find route: from %q to %q: %w", from, to, ErrNoPath)
}
