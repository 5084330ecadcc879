// Package village holds the built-in village map used when no roads file
// is configured.
package village

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"village-delivery-sim/internal/domain"
)

var (
	// ErrDisconnected is returned when some place cannot be reached by road.
	ErrDisconnected = errors.New("village: road network is not connected")

	// ErrInvalidMailRoute is returned when a mail route leaves the roads or
	// skips a place.
	ErrInvalidMailRoute = errors.New("village: invalid mail route")
)

// Place where the robot starts and where the mail route ends.
const PostOffice = "Post Office"

// Roads of the default village.
var Roads = []string{
	"Alice's House-Bob's House",
	"Alice's House-Cabin",
	"Alice's House-Post Office",
	"Bob's House-Town Hall",
	"Daria's House-Ernie's House",
	"Daria's House-Town Hall",
	"Ernie's House-Grete's House",
	"Grete's House-Farm",
	"Grete's House-Shop",
	"Marketplace-Farm",
	"Marketplace-Post Office",
	"Marketplace-Shop",
	"Marketplace-Town Hall",
	"Shop-Town Hall",
}

// MailRoute visits every place of the default village. Starting at the
// Post Office and following it twice guarantees every parcel is picked up
// and delivered.
var MailRoute = domain.Route{
	"Alice's House", "Cabin", "Alice's House", "Bob's House",
	"Town Hall", "Daria's House", "Ernie's House",
	"Grete's House", "Shop", "Grete's House", "Farm",
	"Marketplace", "Post Office",
}

// Map is the road network plus the fixed route used by the route robot.
type Map struct {
	Graph     *domain.Graph
	MailRoute domain.Route
}

// Return the built-in village.
func Default() (*Map, error) {
	g, err := domain.BuildGraph(Roads)
	if err != nil {
		return nil, fmt.Errorf("default village: %w", err)
	}

	route := make(domain.Route, len(MailRoute))
	copy(route, MailRoute)
	return &Map{Graph: g, MailRoute: route}, nil
}

type mapSeed struct {
	Roads     []string `json:"roads"`
	MailRoute []string `json:"mail_route"`
}

// Load a village from a JSON file of the form
// {"roads": ["A-B", ...], "mail_route": ["B", "A", ...]}.
func LoadJSON(path string) (*Map, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load village: read %q: %w", path, err)
	}

	var data mapSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load village: parse json: %w", err)
	}

	if len(data.Roads) == 0 {
		return nil, errors.New("load village: roads must not be empty")
	}

	g, err := domain.BuildGraph(data.Roads)
	if err != nil {
		return nil, fmt.Errorf("load village: %w", err)
	}

	if !g.Connected() {
		return nil, fmt.Errorf("load village: %w", ErrDisconnected)
	}

	route := make(domain.Route, 0, len(data.MailRoute))
	for i, place := range data.MailRoute {
		place = strings.TrimSpace(place)
		if !g.HasLocation(place) {
			return nil, fmt.Errorf("load village: mail route stop %d %q: %w", i+1, place, domain.ErrUnknownLocation)
		}
		route = append(route, place)
	}

	if err := checkMailRoute(g, route); err != nil {
		return nil, fmt.Errorf("load village: %w", err)
	}

	return &Map{Graph: g, MailRoute: route}, nil
}

// checkMailRoute requires a closed loop over the roads that visits every
// place, so a robot following it from any stop reaches every parcel. An
// empty route is allowed; the route robot then refuses to run.
func checkMailRoute(g *domain.Graph, route domain.Route) error {
	if len(route) == 0 {
		return nil
	}

	visited := make(map[string]bool, len(route))
	for i, stop := range route {
		prev := route[(i+len(route)-1)%len(route)]
		if !g.HasRoad(prev, stop) {
			return fmt.Errorf("mail route stop %d %q: no road from %q: %w", i+1, stop, prev, ErrInvalidMailRoute)
		}
		visited[stop] = true
	}

	for _, place := range g.Locations() {
		if !visited[place] {
			return fmt.Errorf("mail route skips %q: %w", place, ErrInvalidMailRoute)
		}
	}
	return nil
}

// Load the village at path, or the built-in one when path is empty.
func Load(path string) (*Map, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadJSON(path)
}
