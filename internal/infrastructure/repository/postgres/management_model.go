package postgres

type managementMemberTableModel struct {
	ID           int64  `db:"id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Role         string `db:"role"`
	Photo        string `db:"photo"`
	Bio          string `db:"bio"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	DisplayOrder int    `db:"display_order"`
}
