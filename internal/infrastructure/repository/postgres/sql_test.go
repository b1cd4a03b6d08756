package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
)

func TestPQErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert player: %w", &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	foreign := fmt.Errorf("insert goal: %w", &pq.Error{Code: "23503", Message: "violates foreign key constraint"})
	other := fmt.Errorf("select: %w", &pq.Error{Code: "42P01", Message: "relation does not exist"})

	if !isUniqueViolation(unique) || isForeignKeyViolation(unique) {
		t.Fatalf("expected unique violation classification")
	}
	if !isForeignKeyViolation(foreign) || isUniqueViolation(foreign) {
		t.Fatalf("expected foreign key violation classification")
	}
	if isUniqueViolation(other) || isForeignKeyViolation(other) {
		t.Fatalf("expected unrelated pq error to be ignored")
	}
	if pqErrorCode(fmt.Errorf("plain")) != "" {
		t.Fatalf("expected empty code for non-pq error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get player: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to match")
	}
	if isNotFound(fmt.Errorf("other")) {
		t.Fatalf("expected unrelated error not to match")
	}
}

func TestTopScorersQuery(t *testing.T) {
	query, args, err := topScorersQuery(topscorers.MonthWindow(2023, time.December), 10)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT p.id AS player_id, p.name, p.position, p.total_goals, SUM(g.quantity) AS period_goals " +
		"FROM goals g JOIN players p ON p.id = g.player_id " +
		"WHERE g.scored_on >= $1 AND g.scored_on < $2 " +
		"GROUP BY p.id, p.name, p.position, p.total_goals " +
		"ORDER BY period_goals DESC, p.id ASC LIMIT 10"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != "2023-12-01" || args[1] != "2024-01-01" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestGoalFromRow(t *testing.T) {
	row := goalTableModel{
		ID:       3,
		PlayerID: 1,
		MatchID:  sql.NullInt64{Int64: 9, Valid: true},
		Quantity: 2,
		ScoredOn: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	got := goalFromRow(row)
	if got.MatchID == nil || *got.MatchID != 9 {
		t.Fatalf("expected match id 9, got %v", got.MatchID)
	}
	if !got.Date.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", got.Date)
	}

	row.MatchID = sql.NullInt64{}
	if goalFromRow(row).MatchID != nil {
		t.Fatalf("expected nil match id for NULL column")
	}
}
