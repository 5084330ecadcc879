package domain

import "fmt"

// Snapshot of the village: where the robot is and which parcels are
// still undelivered.
//
// A VillageState is a value. Move never changes the receiver or its Parcels
// slice; it computes the state after the move. States may share their
// Parcels backing array, so callers must treat Parcels as read-only.
type VillageState struct {
	Place   string
	Parcels []Parcel
}

// Create a state after checking every location against g.
func NewVillageState(g *Graph, place string, parcels []Parcel) (VillageState, error) {
	if !g.HasLocation(place) {
		return VillageState{}, fmt.Errorf("new village state: robot at %q: %w", place, ErrUnknownLocation)
	}

	for i, p := range parcels {
		if !g.HasLocation(p.Place) {
			return VillageState{}, fmt.Errorf("new village state: parcel %d at %q: %w", i, p.Place, ErrUnknownLocation)
		}
		if !g.HasLocation(p.Address) {
			return VillageState{}, fmt.Errorf("new village state: parcel %d addressed to %q: %w", i, p.Address, ErrUnknownLocation)
		}
		if p.Place == p.Address {
			return VillageState{}, fmt.Errorf("new village state: parcel %d: %w", i, ErrTrivialParcel)
		}
	}

	out := make([]Parcel, len(parcels))
	copy(out, parcels)
	return VillageState{Place: place, Parcels: out}, nil
}

// Move the robot to destination and return the resulting state.
//
// Without a road from s.Place to destination the robot cannot move and s is
// returned as is. Otherwise parcels at the robot's current place travel
// with it, and parcels that reach their address are delivered (dropped).
func (s VillageState) Move(g *Graph, destination string) VillageState {
	if !g.HasRoad(s.Place, destination) {
		return s
	}

	carried := false
	for _, p := range s.Parcels {
		if p.Place == s.Place {
			carried = true
			break
		}
	}
	// Nothing picked up means nothing can be delivered either.
	if !carried {
		return VillageState{Place: destination, Parcels: s.Parcels}
	}

	parcels := make([]Parcel, 0, len(s.Parcels))
	for _, p := range s.Parcels {
		if p.Place == s.Place {
			p = Parcel{Place: destination, Address: p.Address}
		}
		if p.Place == p.Address {
			continue
		}
		parcels = append(parcels, p)
	}

	return VillageState{Place: destination, Parcels: parcels}
}

// Report whether every parcel has been delivered.
func (s VillageState) Delivered() bool { return len(s.Parcels) == 0 }
