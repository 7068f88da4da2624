package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/repositories"
)

const (
	// ActivitySourceRandom generates demo counts.
	ActivitySourceRandom = "random"
	// ActivitySourceStored reads the imported contribution log.
	ActivitySourceStored = "stored"

	coverageKey = "contributionCoverage"
)

// RandomActivitySource draws every day's count uniformly from [0, maxCount].
type RandomActivitySource struct {
	mu       sync.Mutex
	rng      *rand.Rand
	maxCount int
}

// NewRandomActivitySource seeds the generator with seed, or randomly when seed is 0
func NewRandomActivitySource(maxCount int, seed int64) *RandomActivitySource {
	if maxCount < 0 {
		maxCount = 0
	}

	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(uint64(seed), uint64(seed))
	}

	return &RandomActivitySource{
		rng:      rand.New(src),
		maxCount: maxCount,
	}
}

func (s *RandomActivitySource) ActivityLog(ctx context.Context, from, through time.Time) (*models.ActivityLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int, models.CalendarDays)
	throughKey := models.DayKey(through)
	for date := models.CivilDay(from); models.DayKey(date) <= throughKey; date = models.AddDays(date, 1) {
		counts[models.DayKey(date)] = s.rng.IntN(s.maxCount + 1)
	}

	return &models.ActivityLog{From: from, Through: through, Counts: counts}, nil
}

// StoredActivitySource serves the contribution log imported into the database.
// The log only covers the range recorded by the last successful import.
type StoredActivitySource struct {
	contributionRepo *repositories.ContributionRepository
	store            KeyValueStore
}

func NewStoredActivitySource(contributionRepo *repositories.ContributionRepository, store KeyValueStore) *StoredActivitySource {
	return &StoredActivitySource{
		contributionRepo: contributionRepo,
		store:            store,
	}
}

func (s *StoredActivitySource) ActivityLog(ctx context.Context, from, through time.Time) (*models.ActivityLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	coverage, err := LoadCoverage(s.store)
	if err != nil {
		return nil, err
	}
	if coverage == nil {
		return nil, fmt.Errorf("%w: nothing imported yet", ErrIncompleteActivityLog)
	}

	counts, err := s.contributionRepo.GetRange(from, through)
	if err != nil {
		return nil, fmt.Errorf("failed to read contribution log: %w", err)
	}

	return &models.ActivityLog{From: coverage.From, Through: coverage.Through, Counts: counts}, nil
}

// LoadCoverage returns the recorded import coverage, nil when nothing was imported
func LoadCoverage(store KeyValueStore) (*models.Coverage, error) {
	raw, ok, err := store.Get(coverageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var coverage models.Coverage
	if err := json.Unmarshal([]byte(raw), &coverage); err != nil {
		return nil, fmt.Errorf("failed to parse coverage: %w", err)
	}
	return &coverage, nil
}

// SaveCoverage records the range the contribution log is complete for
func SaveCoverage(store KeyValueStore, coverage models.Coverage) error {
	data, err := json.Marshal(coverage)
	if err != nil {
		return err
	}
	return store.Set(coverageKey, string(data))
}
