package usecase

import (
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type memoryFixture struct {
	store      *memory.Store
	tx         *memory.Transactor
	players    *memory.PlayerRepository
	matches    *memory.MatchRepository
	goals      *memory.GoalRepository
	topScorers *memory.TopScorersRepository
}

func newMemoryFixture() memoryFixture {
	store := memory.NewStore()
	return memoryFixture{
		store:      store,
		tx:         memory.NewTransactor(store),
		players:    memory.NewPlayerRepository(store),
		matches:    memory.NewMatchRepository(store),
		goals:      memory.NewGoalRepository(store),
		topScorers: memory.NewTopScorersRepository(store),
	}
}

func (f memoryFixture) playerService() *PlayerService {
	return NewPlayerService(f.players, f.tx, nil, logging.NewNop())
}

func (f memoryFixture) goalService(invalidator LeaderboardInvalidator) *GoalService {
	return NewGoalService(f.goals, f.players, f.tx, invalidator, nil, logging.NewNop())
}

func (f memoryFixture) matchService() *MatchService {
	return NewMatchService(f.matches, logging.NewNop())
}

func (f memoryFixture) topScoreService() *TopScoreService {
	return NewTopScoreService(f.topScorers, 10, nil)
}
