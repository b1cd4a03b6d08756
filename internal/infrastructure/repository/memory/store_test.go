package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/goal"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	ctx := t.Context()
	store := NewStore()
	players := NewPlayerRepository(store)
	goals := NewGoalRepository(store)
	tx := NewTransactor(store)

	ana, err := players.Create(ctx, player.Player{Name: "Ana", Position: player.PositionForward})
	require.NoError(t, err)

	failure := errors.New("boom")
	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := goals.Create(ctx, goal.Goal{PlayerID: ana.ID, Quantity: 2, Date: day(2024, 3, 1)}); err != nil {
			return err
		}
		if err := players.IncrementGoals(ctx, ana.ID, 2); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	got, _, err := players.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.TotalGoals)

	items, err := goals.ListByPlayer(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	created, err := goals.Create(ctx, goal.Goal{PlayerID: ana.ID, Quantity: 1, Date: day(2024, 3, 2)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID, "sequence must be restored with the snapshot")
}

func TestTransactor_RollsBackOnPanic(t *testing.T) {
	ctx := t.Context()
	store := NewStore()
	players := NewPlayerRepository(store)
	tx := NewTransactor(store)

	assert.Panics(t, func() {
		_ = tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := players.Create(ctx, player.Player{Name: "Ana", Position: player.PositionForward}); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	items, err := players.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// the transaction lock must have been released
	_, err = players.Create(ctx, player.Player{Name: "Bia", Position: player.PositionDefender})
	require.NoError(t, err)
}

func TestTransactor_NestedCallsJoinOuter(t *testing.T) {
	ctx := t.Context()
	store := NewStore()
	players := NewPlayerRepository(store)
	tx := NewTransactor(store)

	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		return tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := players.Create(ctx, player.Player{Name: "Ana", Position: player.PositionForward})
			return err
		})
	})
	require.NoError(t, err)

	items, err := players.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPlayerRepository_DuplicateNameAndOrdering(t *testing.T) {
	ctx := t.Context()
	players := NewPlayerRepository(NewStore())

	for _, name := range []string{"Carla", "Ana", "Bia"} {
		_, err := players.Create(ctx, player.Player{Name: name, Position: player.PositionMidfielder})
		require.NoError(t, err)
	}
	_, err := players.Create(ctx, player.Player{Name: "Ana", Position: player.PositionGoalkeeper})
	require.ErrorIs(t, err, player.ErrNameTaken)

	items, err := players.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Ana", "Bia", "Carla"}, []string{items[0].Name, items[1].Name, items[2].Name})

	require.ErrorIs(t, players.IncrementGoals(ctx, 99, 1), player.ErrNotFound)
}

func TestGoalRepository_RejectsUnknownReferences(t *testing.T) {
	ctx := t.Context()
	store := NewStore()
	players := NewPlayerRepository(store)
	matches := NewMatchRepository(store)
	goals := NewGoalRepository(store)

	ana, err := players.Create(ctx, player.Player{Name: "Ana", Position: player.PositionForward})
	require.NoError(t, err)
	game, err := matches.Create(ctx, match.Match{Date: day(2024, 3, 1), Team1: "A", Team2: "B", Winner: "A"})
	require.NoError(t, err)

	_, err = goals.Create(ctx, goal.Goal{PlayerID: 42, Quantity: 1, Date: day(2024, 3, 1)})
	require.ErrorIs(t, err, goal.ErrUnknownReference)

	missingMatch := int64(77)
	_, err = goals.Create(ctx, goal.Goal{PlayerID: ana.ID, MatchID: &missingMatch, Quantity: 1, Date: day(2024, 3, 1)})
	require.ErrorIs(t, err, goal.ErrUnknownReference)

	created, err := goals.Create(ctx, goal.Goal{PlayerID: ana.ID, MatchID: &game.ID, Quantity: 3, Date: day(2024, 3, 1)})
	require.NoError(t, err)
	require.NotNil(t, created.MatchID)
	assert.Equal(t, game.ID, *created.MatchID)

	sum, err := goals.SumByPlayer(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum)
}

func TestMatchRepository_ListNewestFirst(t *testing.T) {
	ctx := t.Context()
	matches := NewMatchRepository(NewStore())

	_, err := matches.Create(ctx, match.Match{Date: day(2024, 1, 1), Team1: "A", Team2: "B"})
	require.NoError(t, err)
	_, err = matches.Create(ctx, match.Match{Date: day(2024, 2, 1), Team1: "C", Team2: "D"})
	require.NoError(t, err)

	items, err := matches.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "C", items[0].Team1)
}

func TestTopScorersRepository_GroupsOrdersAndLimits(t *testing.T) {
	ctx := t.Context()
	store := NewStore()
	players := NewPlayerRepository(store)
	goals := NewGoalRepository(store)
	board := NewTopScorersRepository(store)

	ids := make([]int64, 0, 4)
	for _, name := range []string{"Ana", "Bia", "Carla", "Duda"} {
		p, err := players.Create(ctx, player.Player{Name: name, Position: player.PositionForward})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	entries := []goal.Goal{
		{PlayerID: ids[0], Quantity: 2, Date: day(2024, 3, 1)},
		{PlayerID: ids[1], Quantity: 3, Date: day(2024, 3, 5)},
		{PlayerID: ids[2], Quantity: 1, Date: day(2024, 3, 10)},
		{PlayerID: ids[0], Quantity: 1, Date: day(2024, 3, 31)},
		{PlayerID: ids[3], Quantity: 9, Date: day(2024, 4, 1)},
	}
	for _, g := range entries {
		_, err := goals.Create(ctx, g)
		require.NoError(t, err)
	}

	got, err := board.ListTopScorers(ctx, topscorers.MonthWindow(2024, time.March), 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Ana and Bia tie on 3; the lower player id ranks first.
	assert.Equal(t, "Ana", got[0].Player.Name)
	assert.Equal(t, int64(3), got[0].TotalGoals)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "Bia", got[1].Player.Name)
	assert.Equal(t, 2, got[1].Rank)
	assert.Equal(t, "Carla", got[2].Player.Name)

	limited, err := board.ListTopScorers(ctx, topscorers.YearWindow(2024), 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "Duda", limited[0].Player.Name)

	empty, err := board.ListTopScorers(ctx, topscorers.YearWindow(2020), 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
