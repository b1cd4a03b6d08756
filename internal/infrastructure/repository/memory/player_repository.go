package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	err := r.store.write(ctx, func() error {
		for _, existing := range r.store.players {
			if existing.Name == p.Name {
				return player.ErrNameTaken
			}
		}
		r.store.nextPlayerID++
		p.ID = r.store.nextPlayerID
		p.TotalGoals = 0
		r.store.players[p.ID] = p
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}
	return p, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.players[id]
	return p, ok, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.players {
		if p.Name == name {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.store.mu.RLock()
	out := make([]player.Player, 0, len(r.store.players))
	for _, p := range r.store.players {
		out = append(out, p)
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PlayerRepository) IncrementGoals(ctx context.Context, id int64, amount int64) error {
	return r.store.write(ctx, func() error {
		p, ok := r.store.players[id]
		if !ok {
			return player.ErrNotFound
		}
		p.TotalGoals += amount
		r.store.players[id] = p
		return nil
	})
}
