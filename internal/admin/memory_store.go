package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps administration records in process memory. It backs the
// in-memory storage driver and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*memoryTable
}

type memoryTable struct {
	nextID     int64
	rows       map[int64]Row
	singleton  Row
	insertions []int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]*memoryTable)}
}

func (s *MemoryStore) table(name string) *memoryTable {
	t, ok := s.tables[name]
	if !ok {
		t = &memoryTable{nextID: 1, rows: make(map[int64]Row)}
		s.tables[name] = t
	}
	return t
}

func (s *MemoryStore) List(_ context.Context, res Resource, q ListQuery) ([]Row, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.table(res.Table)
	matched := make([]Row, 0, len(t.rows))
	for _, id := range t.insertions {
		row, ok := t.rows[id]
		if !ok {
			continue
		}
		if matchesQuery(res, row, q) {
			matched = append(matched, copyRow(row))
		}
	}

	sortRows(res, matched)

	total := len(matched)
	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * ListPageSize
	if start >= total {
		return []Row{}, total, nil
	}
	end := start + ListPageSize
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (s *MemoryStore) Get(_ context.Context, res Resource, id int64) (Row, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.table(res.Table).rows[id]
	if !ok {
		return nil, false, nil
	}
	return copyRow(row), true, nil
}

func (s *MemoryStore) Create(_ context.Context, res Resource, values Row) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(res.Table)
	id := t.nextID
	t.nextID++

	row := copyRow(values)
	row["id"] = id
	t.rows[id] = row
	t.insertions = append(t.insertions, id)

	return id, nil
}

func (s *MemoryStore) Update(_ context.Context, res Resource, id int64, values Row) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(res.Table)
	row, ok := t.rows[id]
	if !ok {
		return false, nil
	}
	for column, value := range values {
		row[column] = value
	}

	return true, nil
}

func (s *MemoryStore) ClearBool(_ context.Context, res Resource, column string, exceptID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range s.table(res.Table).rows {
		if id == exceptID {
			continue
		}
		if flag, ok := row[column].(bool); ok && flag {
			row[column] = false
		}
	}

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, res Resource, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(res.Table)
	if _, ok := t.rows[id]; !ok {
		return false, nil
	}
	delete(t.rows, id)

	return true, nil
}

func (s *MemoryStore) GetSingleton(_ context.Context, res Resource) (Row, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.table(res.Table)
	if t.singleton == nil {
		return nil, false, nil
	}
	return copyRow(t.singleton), true, nil
}

func (s *MemoryStore) UpsertSingleton(_ context.Context, res Resource, values Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(res.Table)
	if t.singleton == nil {
		t.singleton = Row{}
	}
	for column, value := range values {
		t.singleton[column] = value
	}

	return nil
}

func matchesQuery(res Resource, row Row, q ListQuery) bool {
	if search := strings.TrimSpace(q.Search); search != "" && len(res.SearchColumns) > 0 {
		found := false
		needle := strings.ToLower(search)
		for _, column := range res.SearchColumns {
			if s, ok := row[column].(string); ok && strings.Contains(strings.ToLower(s), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, column := range res.FilterColumns {
		want, ok := q.Filters[column]
		if !ok {
			continue
		}
		if fmt.Sprint(row[column]) != fmt.Sprint(want) {
			return false
		}
	}

	return true
}

// sortRows applies the first default order part. Listings that need finer
// ordering go through the database-backed store.
func sortRows(res Resource, rows []Row) {
	if len(res.DefaultOrder) == 0 {
		sort.SliceStable(rows, func(i, j int) bool {
			return asInt64(rows[i]["id"]) > asInt64(rows[j]["id"])
		})
		return
	}

	column, desc := parseOrderPart(res.DefaultOrder[0])
	sort.SliceStable(rows, func(i, j int) bool {
		less := lessValue(rows[i][column], rows[j][column])
		if desc {
			return !less && !equalValue(rows[i][column], rows[j][column])
		}
		return less
	})
}

func parseOrderPart(part string) (string, bool) {
	fields := strings.Fields(part)
	if len(fields) == 0 {
		return "id", false
	}
	desc := len(fields) > 1 && strings.EqualFold(fields[1], "DESC")
	return fields[0], desc
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return av < bv
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Before(bv)
	}
	return asInt64(a) < asInt64(b)
}

func equalValue(a, b any) bool {
	return !lessValue(a, b) && !lessValue(b, a)
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func copyRow(row Row) Row {
	out := make(Row, len(row))
	for column, value := range row {
		out[column] = value
	}
	return out
}
