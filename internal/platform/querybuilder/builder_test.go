package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("name", "Ana"), Expr("total_goals >= ?", 0)).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE name = $1 AND total_goals >= $2 ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"Ana", 0}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinGroupRange(t *testing.T) {
	query, args, err := Select("p.id", "SUM(g.quantity) AS period_goals").
		From("goals g").
		Join("JOIN players p ON p.id = g.player_id").
		Where(Gte("g.scored_on", "2024-03-01"), Lt("g.scored_on", "2024-04-01")).
		GroupBy("p.id").
		OrderBy("period_goals DESC", "p.id ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.id, SUM(g.quantity) AS period_goals FROM goals g JOIN players p ON p.id = g.player_id " +
		"WHERE g.scored_on >= $1 AND g.scored_on < $2 GROUP BY p.id ORDER BY period_goals DESC, p.id ASC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"2024-03-01", "2024-04-01"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestExpr_ExtraArgsAndLiteralMarks(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(Expr("lower(name) = lower(?)", "ANA"), Expr("position <> 'Goleiro'")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM players WHERE lower(name) = lower($1) AND position <> 'Goleiro'"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "ANA" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
	if _, _, err := Select().From("players").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("name", "position").
		Values("Ana", "Atacante").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (name, position) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Ana" || args[1] != "Atacante" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("players").Columns("name", "position").Values("Ana").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	var nilRow *struct {
		Name string `db:"name"`
	}
	for _, model := range []any{nil, nilRow, "players", struct{ skipped string }{}} {
		if _, _, err := InsertModel("players", model, ""); err == nil {
			t.Fatalf("expected error for model %#v", model)
		}
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("position", "Zagueiro").
		SetExpr("total_goals", "total_goals + ?", int64(3)).
		Where(Eq("id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET position = $1, total_goals = total_goals + $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"Zagueiro", int64(3), int64(9)}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := Update("players").Set("name", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID       int64  `db:"id,omitinsert"`
		Name     string `db:"name"`
		Position string `db:"position"`
		internal string
	}

	query, args, err := InsertModel("players", row{ID: 5, Name: "Ana", Position: "Goleiro", internal: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO players (name, position) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"Ana", "Goleiro"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
