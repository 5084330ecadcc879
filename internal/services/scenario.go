package services

import (
	"errors"
	"fmt"
	"village-delivery-sim/internal/domain"
)

const (
	DefaultParcelCount = 5
	DefaultStart       = "Post Office"
)

// ScenarioOptions controls RandomVillageState. Zero values use defaults.
type ScenarioOptions struct {
	ParcelCount int
	Start       string
}

// Generate a random starting state: the robot at opts.Start and
// opts.ParcelCount parcels, each sent between two distinct random places.
func RandomVillageState(g *domain.Graph, src RandomSource, opts ScenarioOptions) (domain.VillageState, error) {
	count := opts.ParcelCount
	if count == 0 {
		count = DefaultParcelCount
	}
	if count < 0 {
		return domain.VillageState{}, fmt.Errorf("random village state: parcel count must not be negative (%d)", count)
	}

	start := opts.Start
	if start == "" {
		start = DefaultStart
	}

	places := g.Locations()
	if len(places) < 2 {
		return domain.VillageState{}, errors.New("random village state: need at least two places")
	}

	parcels := make([]domain.Parcel, 0, count)
	for i := 0; i < count; i++ {
		address, err := PickRandom(src, places)
		if err != nil {
			return domain.VillageState{}, fmt.Errorf("random village state: %w", err)
		}

		// The parcel starts anywhere except its address.
		others := make([]string, 0, len(places)-1)
		for _, p := range places {
			if p != address {
				others = append(others, p)
			}
		}
		place, err := PickRandom(src, others)
		if err != nil {
			return domain.VillageState{}, fmt.Errorf("random village state: %w", err)
		}

		parcels = append(parcels, domain.Parcel{Place: place, Address: address})
	}

	state, err := domain.NewVillageState(g, start, parcels)
	if err != nil {
		return domain.VillageState{}, fmt.Errorf("random village state: %w", err)
	}
	return state, nil
}
