package services

import (
	"testing"
	"village-delivery-sim/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFindRouteOnCycle(t *testing.T) {
	g, err := domain.BuildGraph([]string{"A-B", "B-C", "C-D", "D-A"})
	require.NoError(t, err)

	route, err := FindRoute(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, domain.Route{"B", "C"}, route)

	route, err = FindRoute(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, domain.Route{"D"}, route)

	route, err = FindRoute(g, "A", "A")
	require.NoError(t, err)
	require.Empty(t, route)
}

func TestFindRouteInVillage(t *testing.T) {
	m := villageMap(t)

	tests := []struct {
		from, to string
		want     domain.Route
	}{
		{"Post Office", "Grete's House", domain.Route{"Marketplace", "Farm", "Grete's House"}},
		{"Post Office", "Cabin", domain.Route{"Alice's House", "Cabin"}},
		{"Alice's House", "Town Hall", domain.Route{"Bob's House", "Town Hall"}},
		{"Cabin", "Farm", domain.Route{"Alice's House", "Post Office", "Marketplace", "Farm"}},
	}

	for _, tt := range tests {
		got, err := FindRoute(m.Graph, tt.from, tt.to)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestFindRouteIsShortestForAllPairs(t *testing.T) {
	m := villageMap(t)
	places := m.Graph.Locations()

	for _, from := range places {
		dist := hopDistances(t, m.Graph, from)
		for _, to := range places {
			route, err := FindRoute(m.Graph, from, to)
			require.NoError(t, err)
			require.Len(t, route, dist[to], "%s -> %s", from, to)

			// Every step must follow a road.
			at := from
			for _, step := range route {
				require.True(t, m.Graph.HasRoad(at, step), "%s -> %s has no road", at, step)
				at = step
			}
			require.Equal(t, to, at)
		}
	}
}

func TestFindRouteErrors(t *testing.T) {
	g, err := domain.BuildGraph([]string{"A-B", "C-D"})
	require.NoError(t, err)

	_, err = FindRoute(g, "A", "D")
	require.ErrorIs(t, err, ErrNoPath)

	_, err = FindRoute(g, "Z", "A")
	require.ErrorIs(t, err, domain.ErrUnknownLocation)

	_, err = FindRoute(g, "A", "Z")
	require.ErrorIs(t, err, domain.ErrUnknownLocation)
}

func TestFindRouteIsDeterministic(t *testing.T) {
	m := villageMap(t)

	first, err := FindRoute(m.Graph, "Cabin", "Shop")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := FindRoute(m.Graph, "Cabin", "Shop")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
