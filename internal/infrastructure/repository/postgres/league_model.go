package postgres

type leagueTableModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Season      string `db:"season"`
	Description string `db:"description"`
}
