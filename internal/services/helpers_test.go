package services

import (
	"testing"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/village"

	"github.com/stretchr/testify/require"
)

func villageMap(t *testing.T) *village.Map {
	t.Helper()
	m, err := village.Default()
	require.NoError(t, err)
	return m
}

// fixedSource replays values in order and then repeats the last one.
func fixedSource(values ...float64) RandomSource {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

// hopDistances computes hop counts from start layer by layer, independently
// of FindRoute.
func hopDistances(t *testing.T, g *domain.Graph, start string) map[string]int {
	t.Helper()

	dist := map[string]int{start: 0}
	layer := []string{start}
	for d := 1; len(layer) > 0; d++ {
		var next []string
		for _, p := range layer {
			nbrs, err := g.Neighbors(p)
			require.NoError(t, err)
			for _, n := range nbrs {
				if _, ok := dist[n]; !ok {
					dist[n] = d
					next = append(next, n)
				}
			}
		}
		layer = next
	}
	return dist
}
