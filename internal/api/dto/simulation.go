package dto

import "time"

type SimulationRequest struct {
	Robot       string `json:"robot"`
	ParcelCount int    `json:"parcel_count"`
	Start       string `json:"start"`
	Seed        int64  `json:"seed"`
	MaxTurns    int    `json:"max_turns"`
}

type ParcelResponse struct {
	Place   string `json:"place"`
	Address string `json:"address"`
}

type SimulationResponse struct {
	Robot   string           `json:"robot"`
	Start   string           `json:"start"`
	Parcels []ParcelResponse `json:"parcels"`
	Turns   int              `json:"turns"`
	Moves   []string         `json:"moves"`
}

type ComparisonRequest struct {
	RobotA      string `json:"robot_a"`
	RobotB      string `json:"robot_b"`
	Trials      int    `json:"trials"`
	ParcelCount int    `json:"parcel_count"`
	Start       string `json:"start"`
	Seed        int64  `json:"seed"`
	MaxTurns    int    `json:"max_turns"`
}

type ComparisonResponse struct {
	ID          string    `json:"id"`
	RobotA      string    `json:"robot_a"`
	RobotB      string    `json:"robot_b"`
	Trials      int       `json:"trials"`
	ParcelCount int       `json:"parcel_count"`
	Start       string    `json:"start"`
	Seed        int64     `json:"seed"`
	MaxTurns    int       `json:"max_turns"`
	AverageA    float64   `json:"average_a"`
	AverageB    float64   `json:"average_b"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListComparisonsResponse struct {
	Comparisons []ComparisonResponse `json:"comparisons"`
}
