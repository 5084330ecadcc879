package domain

import (
	"errors"
	"fmt"
)

var ErrTrivialParcel = errors.New("parcel is already at its address")

// A single parcel waiting at Place to be carried to Address.
type Parcel struct {
	Place   string
	Address string
}

func NewParcel(place, address string) (Parcel, error) {
	if place == address {
		return Parcel{}, fmt.Errorf("new parcel at %q: %w", place, ErrTrivialParcel)
	}
	return Parcel{Place: place, Address: address}, nil
}
