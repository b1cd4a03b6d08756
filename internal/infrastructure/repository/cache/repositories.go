package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
)

const topScorersKeyPrefix = "topscorers:"

// TopScorersRepository caches leaderboards per window and limit.
type TopScorersRepository struct {
	next  topscorers.Repository
	cache *basecache.Store
}

func NewTopScorersRepository(next topscorers.Repository, cache *basecache.Store) *TopScorersRepository {
	return &TopScorersRepository{next: next, cache: cache}
}

func (r *TopScorersRepository) ListTopScorers(ctx context.Context, w topscorers.Window, limit int) ([]topscorers.TopScorer, error) {
	key := topScorersKeyPrefix + w.Key() + ":" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTopScorers(ctx, w, limit)
		if err != nil {
			return nil, err
		}
		return append([]topscorers.TopScorer{}, items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]topscorers.TopScorer)
	return append([]topscorers.TopScorer{}, items...), nil
}

// InvalidateLeaderboards drops every cached window.
func (r *TopScorersRepository) InvalidateLeaderboards(ctx context.Context) {
	r.cache.DeletePrefix(ctx, topScorersKeyPrefix)
}
