package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/platform/obs"
	"village-delivery-sim/internal/ports"
	"village-delivery-sim/internal/village"

	"github.com/google/uuid"
)

// ComparisonRequest describes a comparison between two named robots.
type ComparisonRequest struct {
	RobotA      string
	RobotB      string
	Trials      int
	ParcelCount int
	Start       string
	// Seed fixes the random source. Zero uses the system source, and such
	// runs are never served from or written to the cache.
	Seed     int64
	MaxTurns int
}

// Return the source for seed: deterministic when seed is set, system otherwise.
func SourceForSeed(seed int64) RandomSource {
	if seed == 0 {
		return SystemSource()
	}
	return NewSeededSource(uint64(seed))
}

func comparisonCacheKey(req ComparisonRequest) string {
	return fmt.Sprintf(
		"comparison:%s:%s:%d:%d:%s:%d:%d",
		req.RobotA, req.RobotB, req.Trials, req.ParcelCount, req.Start, req.Seed, req.MaxTurns,
	)
}

// RecordComparison compares two robots on m and stores the run.
//
// Seeded requests are looked up in cache first; a hit is returned without
// running or storing anything. repo and cache are optional.
func RecordComparison(
	ctx context.Context,
	req ComparisonRequest,
	m *village.Map,
	repo ports.RunRepository,
	cache ports.ComparisonCache,
) (_ *domain.ComparisonRun, err error) {
	defer obs.Time(ctx, "services.RecordComparison")(&err)

	if m == nil || m.Graph == nil {
		return nil, errors.New("record comparison: village map must be non-nil")
	}

	req.RobotA = strings.TrimSpace(req.RobotA)
	req.RobotB = strings.TrimSpace(req.RobotB)
	if req.Trials == 0 {
		req.Trials = DefaultTrials
	}
	if req.ParcelCount == 0 {
		req.ParcelCount = DefaultParcelCount
	}
	if strings.TrimSpace(req.Start) == "" {
		req.Start = DefaultStart
	}

	key := comparisonCacheKey(req)
	useCache := cache != nil && req.Seed != 0
	if useCache {
		cached, ok, err := cache.Get(ctx, key)
		if err != nil {
			// Cache failures fall through to a fresh run.
			log.Printf("op=comparison.cache.Get key=%s err=%v", key, err)
		} else if ok {
			return cached, nil
		}
	}

	src := SourceForSeed(req.Seed)

	a, err := RobotByName(req.RobotA, m.Graph, m.MailRoute, src)
	if err != nil {
		return nil, fmt.Errorf("record comparison: robot a: %w", err)
	}
	b, err := RobotByName(req.RobotB, m.Graph, m.MailRoute, src)
	if err != nil {
		return nil, fmt.Errorf("record comparison: robot b: %w", err)
	}

	cmp, err := CompareRobots(m.Graph, a, b, CompareOptions{
		Trials:   req.Trials,
		Scenario: ScenarioOptions{ParcelCount: req.ParcelCount, Start: req.Start},
		MaxTurns: req.MaxTurns,
	}, src)
	if err != nil {
		return nil, fmt.Errorf("record comparison: %w", err)
	}

	run := &domain.ComparisonRun{
		ID:          uuid.NewString(),
		RobotA:      cmp.RobotA,
		RobotB:      cmp.RobotB,
		Trials:      cmp.Trials,
		ParcelCount: req.ParcelCount,
		Start:       req.Start,
		Seed:        req.Seed,
		MaxTurns:    req.MaxTurns,
		TotalA:      cmp.TotalA,
		TotalB:      cmp.TotalB,
		AverageA:    cmp.AverageA,
		AverageB:    cmp.AverageB,
		CreatedAt:   time.Now().UTC(),
	}

	if repo != nil {
		if err := repo.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("record comparison: save run %s: %w", run.ID, err)
		}
	}

	if useCache {
		if err := cache.Put(ctx, key, run); err != nil {
			log.Printf("op=comparison.cache.Put key=%s err=%v", key, err)
		}
	}

	return run, nil
}
