package matching

import (
	"context"
	"sort"

	"coliving/internal/config"
	"coliving/internal/domain/models"

	"golang.org/x/sync/errgroup"
)

// Ranker scores a candidate pool against one profile and returns the top N.
// It holds no mutable state and is safe for concurrent use.
type Ranker struct {
	scorer  *Scorer
	workers int
}

// NewRanker creates a ranker that scores with up to workers goroutines.
// workers <= 1 scores sequentially; the output is identical either way.
func NewRanker(scorer *Scorer, workers int) *Ranker {
	if workers < 1 {
		workers = 1
	}
	return &Ranker{scorer: scorer, workers: workers}
}

// Rank orders pool by compatibility with subject, best first, ties broken by
// ascending tenant id, truncated to limit. limit <= 0 means config.DefaultMatchLimit.
// The subject itself is never part of the output, even if present in pool.
func (r *Ranker) Rank(ctx context.Context, subject *models.PreferenceProfile, pool []models.CandidateProfile, limit int) ([]models.MatchResult, error) {
	if limit <= 0 {
		limit = config.DefaultMatchLimit
	}

	candidates := make([]*models.CandidateProfile, 0, len(pool))
	for i := range pool {
		if pool[i].TenantID == subject.TenantID {
			continue
		}
		candidates = append(candidates, &pool[i])
	}

	results := make([]models.MatchResult, len(candidates))
	subjectInterests := newInterestSet(subject.Interests)

	scoreAt := func(i int) {
		c := candidates[i]
		res := r.scorer.score(subject, &c.PreferenceProfile, subjectInterests, newInterestSet(c.Interests))
		results[i] = models.MatchResult{
			TenantID:           c.TenantID,
			Email:              c.Email,
			CurrentRoomID:      c.CurrentRoomID,
			CompatibilityScore: res.Score,
			Breakdown:          res.Breakdown,
			CommonInterests:    res.CommonInterests,
		}
	}

	if r.workers == 1 {
		for i := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			scoreAt(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.workers)
		for i := range candidates {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				scoreAt(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		// errgroup only reports errors from its goroutines
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	SortMatches(results)

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// SortMatches sorts by score descending, then tenant id ascending
func SortMatches(results []models.MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].CompatibilityScore != results[j].CompatibilityScore {
			return results[i].CompatibilityScore > results[j].CompatibilityScore
		}
		return results[i].TenantID.String() < results[j].TenantID.String()
	})
}
