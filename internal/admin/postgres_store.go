package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	qb "github.com/liborpaciorek/tjhlavnice/internal/platform/querybuilder"
)

// PostgresStore runs administration reads and writes against the real
// database, building SQL from the resource configuration.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, res Resource, q ListQuery) ([]Row, int, error) {
	conditions := listConditions(res, q)

	countQuery, countArgs, err := qb.Select("COUNT(*)").
		From(res.Table).
		Where(conditions...).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", res.Table, err)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	builder := qb.Select("*").
		From(res.Table).
		Where(conditions...).
		Limit(ListPageSize).
		Offset((page - 1) * ListPageSize)
	if len(res.DefaultOrder) > 0 {
		builder = builder.OrderBy(res.DefaultOrder...)
	} else {
		builder = builder.OrderBy("id DESC")
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", res.Table, err)
	}
	defer rows.Close()

	out := make([]Row, 0, ListPageSize)
	for rows.Next() {
		row := Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, 0, fmt.Errorf("scan %s row: %w", res.Table, err)
		}
		out = append(out, normalizeRow(res, row))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s rows: %w", res.Table, err)
	}

	return out, total, nil
}

func (s *PostgresStore) Get(ctx context.Context, res Resource, id int64) (Row, bool, error) {
	query, args, err := qb.Select("*").
		From(res.Table).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return nil, false, fmt.Errorf("build get query: %w", err)
	}

	return s.getRow(ctx, res, query, args)
}

func (s *PostgresStore) Create(ctx context.Context, res Resource, values Row) (int64, error) {
	columns, args := insertColumns(values)

	query, args, err := qb.InsertInto(res.Table).
		Columns(columns...).
		Values(args...).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert query: %w", err)
	}

	var id int64
	if err := s.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert %s: %w", res.Table, err)
	}

	return id, nil
}

func (s *PostgresStore) Update(ctx context.Context, res Resource, id int64, values Row) (bool, error) {
	builder := qb.Update(res.Table)
	for _, column := range sortedColumns(values) {
		builder = builder.Set(column, writeValue(values[column]))
	}
	builder = builder.Where(qb.Eq("id", id))

	query, args, err := builder.ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", res.Table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update %s rows affected: %w", res.Table, err)
	}

	return affected > 0, nil
}

func (s *PostgresStore) ClearBool(ctx context.Context, res Resource, column string, exceptID int64) error {
	query, args, err := qb.Update(res.Table).
		Set(column, false).
		Where(qb.Eq(column, true), qb.Expr("id <> ?", exceptID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s.%s: %w", res.Table, column, err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, res Resource, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom(res.Table).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", res.Table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s rows affected: %w", res.Table, err)
	}

	return affected > 0, nil
}

func (s *PostgresStore) GetSingleton(ctx context.Context, res Resource) (Row, bool, error) {
	query, args, err := qb.Select("*").
		From(res.Table).
		Where(qb.Eq("singleton_key", true)).
		ToSQL()
	if err != nil {
		return nil, false, fmt.Errorf("build singleton query: %w", err)
	}

	return s.getRow(ctx, res, query, args)
}

func (s *PostgresStore) UpsertSingleton(ctx context.Context, res Resource, values Row) error {
	columns, args := insertColumns(values)

	updates := make([]string, 0, len(columns))
	for _, column := range columns {
		updates = append(updates, column+" = EXCLUDED."+column)
	}

	query, args, err := qb.InsertInto(res.Table).
		Columns(append([]string{"singleton_key"}, columns...)...).
		Values(append([]any{true}, args...)...).
		Suffix("ON CONFLICT (singleton_key) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", res.Table, err)
	}

	return nil
}

func (s *PostgresStore) getRow(ctx context.Context, res Resource, query string, args []any) (Row, bool, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", res.Table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("get %s: %w", res.Table, err)
		}
		return nil, false, nil
	}

	row := Row{}
	if err := rows.MapScan(row); err != nil {
		return nil, false, fmt.Errorf("scan %s row: %w", res.Table, err)
	}

	return normalizeRow(res, row), true, nil
}

func listConditions(res Resource, q ListQuery) []qb.Condition {
	var conditions []qb.Condition

	if search := strings.TrimSpace(q.Search); search != "" && len(res.SearchColumns) > 0 {
		pattern := "%" + search + "%"
		matches := make([]qb.Condition, 0, len(res.SearchColumns))
		for _, column := range res.SearchColumns {
			matches = append(matches, qb.ILike(column, pattern))
		}
		conditions = append(conditions, qb.Or(matches...))
	}

	for _, column := range res.FilterColumns {
		value, ok := q.Filters[column]
		if !ok {
			continue
		}
		conditions = append(conditions, qb.Eq(column, value))
	}

	return conditions
}

// insertColumns flattens a value map into parallel column and argument
// slices with a stable order.
func insertColumns(values Row) ([]string, []any) {
	columns := sortedColumns(values)
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		args = append(args, writeValue(values[column]))
	}
	return columns, args
}

func sortedColumns(values Row) []string {
	columns := make([]string, 0, len(values))
	for column := range values {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

func writeValue(value any) any {
	if ids, ok := value.([]int64); ok {
		return pq.Int64Array(ids)
	}
	return value
}

// normalizeRow converts driver-level values into JSON-friendly ones and
// strips the singleton marker column.
func normalizeRow(res Resource, row Row) Row {
	delete(row, "singleton_key")

	for column, value := range row {
		raw, ok := value.([]byte)
		if !ok {
			continue
		}
		if f, found := res.field(column); found && f.Kind == FieldIDList {
			var ids pq.Int64Array
			if err := ids.Scan(raw); err == nil {
				row[column] = []int64(ids)
				continue
			}
		}
		row[column] = string(raw)
	}

	return row
}
