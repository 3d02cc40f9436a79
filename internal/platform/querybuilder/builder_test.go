package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectWithJoinAndWindow(t *testing.T) {
	sql, args, err := Select("m.id", "h.name", "a.name").
		From("matches m").
		Join("JOIN teams h ON h.id = m.home_team_id").
		Join("JOIN teams a ON a.id = m.away_team_id").
		Where(Eq("m.league_id", int64(2)), Gte("m.match_date", "2026-08-01")).
		OrderBy("m.match_date ASC").
		Limit(5).
		Offset(10).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT m.id, h.name, a.name FROM matches m" +
		" JOIN teams h ON h.id = m.home_team_id" +
		" JOIN teams a ON a.id = m.away_team_id" +
		" WHERE m.league_id = $1 AND m.match_date >= $2" +
		" ORDER BY m.match_date ASC LIMIT 5 OFFSET 10"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if !reflect.DeepEqual(args, []any{int64(2), "2026-08-01"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectWithOrAndNullConditions(t *testing.T) {
	sql, args, err := Select("id", "title").
		From("gallery_photos").
		Where(
			NotNull("image"),
			Or(Eq("album_id", int64(7)), IsNull("album_id")),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id, title FROM gallery_photos" +
		" WHERE image IS NOT NULL AND (album_id = $1 OR album_id IS NULL)"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{int64(7)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectWithILikeAndIn(t *testing.T) {
	sql, args, err := Select("id").
		From("players").
		Where(
			ILike("last_name", "%nov%"),
			In("position", []any{"DEF", "MID"}),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id FROM players WHERE last_name ILIKE $1 AND position IN ($2, $3)"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"%nov%", "DEF", "MID"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectWithEmptyIn(t *testing.T) {
	sql, args, err := Select("id").
		From("news_articles").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sql != "SELECT id FROM news_articles WHERE 1=0" {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestSelectRequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsertWithSuffix(t *testing.T) {
	sql, args, err := InsertInto("page_visits").
		Columns("page_name", "ip_address", "user_agent").
		Values("home", "203.0.113.8", "curl/8.0").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO page_visits (page_name, ip_address, user_agent)" +
		" VALUES ($1, $2, $3) RETURNING id"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"home", "203.0.113.8", "curl/8.0"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertMultipleRows(t *testing.T) {
	sql, args, err := InsertInto("gallery_photos").
		Columns("album_id", "title").
		Values(int64(3), "Zápas 1").
		Values(int64(3), "Zápas 2").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO gallery_photos (album_id, title) VALUES ($1, $2), ($3, $4)"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertRejectsRowMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").
		Columns("name", "city").
		Values("TJ Hlavnice").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for row length mismatch")
	}
}

func TestUpdateWithSetExpr(t *testing.T) {
	sql, args, err := Update("players").
		Set("goals", 12).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(4))).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE players SET goals = $1, updated_at = NOW() WHERE id = $2"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{12, int64(4)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateExprPlaceholderRewrite(t *testing.T) {
	sql, args, err := Update("gallery_albums").
		SetExpr("description", "COALESCE(?, description)", "Turnaj 2026").
		Where(Eq("id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE gallery_albums SET description = COALESCE($1, description) WHERE id = $2"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"Turnaj 2026", int64(9)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("news_articles").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without conditions")
	}
}

func TestDelete(t *testing.T) {
	sql, args, err := DeleteFrom("events").
		Where(Eq("id", int64(11))).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sql != "DELETE FROM events WHERE id = $1" {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{int64(11)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		PageName  string `db:"page_name"`
		IPAddress string `db:"ip_address"`
		Skipped   string `db:"-"`
		Untagged  string
	}

	sql, args, err := InsertModel("page_visits", row{PageName: "news", IPAddress: "198.51.100.2", Skipped: "x", Untagged: "y"}, "RETURNING id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO page_visits (page_name, ip_address) VALUES ($1, $2) RETURNING id"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"news", "198.51.100.2"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModelRejectsNil(t *testing.T) {
	var m *struct {
		Name string `db:"name"`
	}
	if _, _, err := InsertModel("teams", m, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
