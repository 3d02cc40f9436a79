package postgres

type clubInfoTableModel struct {
	SingletonKey bool   `db:"singleton_key"`
	Name         string `db:"name"`
	FoundedYear  int    `db:"founded_year"`
	History      string `db:"history"`
	Logo         string `db:"logo"`
	Address      string `db:"address"`
	ContactEmail string `db:"contact_email"`
	ContactPhone string `db:"contact_phone"`
}
