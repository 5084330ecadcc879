package domain

import "time"

// Represents one stored comparison between two robots.
// Seed is zero when the run used the system random source and therefore
// cannot be reproduced. MaxTurns is the per-run turn limit, zero when
// runs were unbounded.
type ComparisonRun struct {
	ID          string
	RobotA      string
	RobotB      string
	Trials      int
	ParcelCount int
	Start       string
	Seed        int64
	MaxTurns    int
	TotalA      int
	TotalB      int
	AverageA    float64
	AverageB    float64
	CreatedAt   time.Time
}
