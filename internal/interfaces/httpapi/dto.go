package httpapi

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/goal"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

type linkDTO struct {
	Rel    string `json:"rel"`
	Method string `json:"method"`
	Href   string `json:"href"`
}

type indexDTO struct {
	Flash string    `json:"flash,omitempty"`
	Links []linkDTO `json:"links"`
}

type playerDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	TotalGoals int64  `json:"totalGoals"`
}

type playerFormDTO struct {
	Fields    []string `json:"fields"`
	Positions []string `json:"positions"`
}

type playerDetailDTO struct {
	Player playerDTO `json:"player"`
	Goals  []goalDTO `json:"goals"`
}

type matchDTO struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Winner string `json:"winner"`
}

type goalDTO struct {
	ID       int64  `json:"id"`
	PlayerID int64  `json:"playerId"`
	MatchID  *int64 `json:"matchId,omitempty"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

type goalFormDTO struct {
	Players []playerDTO `json:"players"`
	Matches []matchDTO  `json:"matches"`
}

type topScorerDTO struct {
	Rank       int       `json:"rank"`
	Player     playerDTO `json:"player"`
	TotalGoals int64     `json:"totalGoals"`
}

type topScorersDTO struct {
	Month       int            `json:"month,omitempty"`
	Year        int            `json:"year"`
	CurrentYear int            `json:"currentYear"`
	Items       []topScorerDTO `json:"items"`
}

type topScorersFormDTO struct {
	CurrentYear int `json:"currentYear"`
}

type mismatchDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	Cached     int64  `json:"cached"`
	Ledger     int64  `json:"ledger"`
}

type reconcileDTO struct {
	Checked    int           `json:"checked"`
	InSync     bool          `json:"inSync"`
	Mismatches []mismatchDTO `json:"mismatches"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:         v.ID,
		Name:       v.Name,
		Position:   string(v.Position),
		TotalGoals: v.TotalGoals,
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:     v.ID,
		Date:   v.Date.UTC().Format(time.RFC3339),
		Team1:  v.Team1,
		Team2:  v.Team2,
		Winner: v.Winner,
	}
}

func goalToDTO(v goal.Goal) goalDTO {
	return goalDTO{
		ID:       v.ID,
		PlayerID: v.PlayerID,
		MatchID:  v.MatchID,
		Quantity: v.Quantity,
		Date:     v.Date.Format(time.DateOnly),
	}
}

func topScorersToDTO(items []topscorers.TopScorer) []topScorerDTO {
	out := make([]topScorerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, topScorerDTO{
			Rank:       item.Rank,
			Player:     playerToDTO(item.Player),
			TotalGoals: item.TotalGoals,
		})
	}
	return out
}

func reconcileToDTO(report usecase.ReconcileReport) reconcileDTO {
	out := reconcileDTO{
		Checked:    report.Checked,
		InSync:     len(report.Mismatches) == 0,
		Mismatches: make([]mismatchDTO, 0, len(report.Mismatches)),
	}
	for _, m := range report.Mismatches {
		out.Mismatches = append(out.Mismatches, mismatchDTO{
			PlayerID:   m.PlayerID,
			PlayerName: m.PlayerName,
			Cached:     m.Cached,
			Ledger:     m.Ledger,
		})
	}
	return out
}
