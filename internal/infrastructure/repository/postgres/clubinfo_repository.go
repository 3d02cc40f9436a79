package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

type ClubInfoRepository struct {
	db *sqlx.DB
}

func NewClubInfoRepository(db *sqlx.DB) *ClubInfoRepository {
	return &ClubInfoRepository{db: db}
}

func (r *ClubInfoRepository) Get(ctx context.Context) (clubinfo.ClubInfo, bool, error) {
	query, args, err := qb.Select("*").From("club_info").
		Where(qb.Eq("singleton_key", true)).
		ToSQL()
	if err != nil {
		return clubinfo.ClubInfo{}, false, fmt.Errorf("build get club info query: %w", err)
	}

	var row clubInfoTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clubinfo.ClubInfo{}, false, nil
		}
		return clubinfo.ClubInfo{}, false, fmt.Errorf("get club info: %w", err)
	}

	return clubinfo.ClubInfo{
		Name:         row.Name,
		FoundedYear:  row.FoundedYear,
		History:      row.History,
		LogoPath:     row.Logo,
		Address:      row.Address,
		ContactEmail: row.ContactEmail,
		ContactPhone: row.ContactPhone,
	}, true, nil
}

func (r *ClubInfoRepository) Save(ctx context.Context, info clubinfo.ClubInfo) error {
	query, args, err := qb.InsertInto("club_info").
		Columns("singleton_key", "name", "founded_year", "history", "logo", "address", "contact_email", "contact_phone").
		Values(true, info.Name, info.FoundedYear, info.History, info.LogoPath, info.Address, info.ContactEmail, info.ContactPhone).
		Suffix(`ON CONFLICT (singleton_key) DO UPDATE SET
			name = EXCLUDED.name,
			founded_year = EXCLUDED.founded_year,
			history = EXCLUDED.history,
			logo = EXCLUDED.logo,
			address = EXCLUDED.address,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save club info query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save club info: %w", err)
	}

	return nil
}
