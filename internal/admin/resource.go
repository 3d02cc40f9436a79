package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/infrastructure/media"
)

// FieldKind drives payload coercion and rendering hints for one column.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldRichText FieldKind = "richtext"
	FieldInt      FieldKind = "int"
	FieldBool     FieldKind = "bool"
	FieldDateTime FieldKind = "datetime"
	FieldImage    FieldKind = "image"
	FieldRef      FieldKind = "ref"
	FieldIDList   FieldKind = "idlist"
)

// Field describes one editable column of a resource.
type Field struct {
	Column   string
	Kind     FieldKind
	Required bool
	// Nullable stores NULL instead of a zero value when the payload
	// omits the field or sends null. Used for optional references.
	Nullable bool
	// Validate is a validator tag applied to the coerced value,
	// e.g. "min=1900,max=2100" or "oneof=GK DEF MID FWD".
	Validate string
	// Image names the media kind for image path columns. The kind picks
	// the storage subdirectory and the downscale bound.
	Image media.Kind
}

// Resource is one declaratively configured administration screen.
type Resource struct {
	// Name is the URL slug, e.g. "players".
	Name  string
	Table string
	// Label is the operator-facing name shown in the admin listing.
	Label string

	// Singleton resources hold at most one row, addressed without an id.
	Singleton bool
	// ReadOnly resources reject create, update and delete.
	ReadOnly bool

	Fields []Field

	ListColumns   []string
	SearchColumns []string
	FilterColumns []string
	// DefaultOrder is a list of SQL order parts, e.g. "display_order ASC".
	DefaultOrder []string

	// CreatedAtColumn and UpdatedAtColumn are stamped by the handler
	// rather than taken from the payload.
	CreatedAtColumn string
	UpdatedAtColumn string

	// ExclusiveBoolColumn names a flag column at most one row may hold.
	// Writes that set it clear the flag on every other row first.
	ExclusiveBoolColumn string
}

func (r Resource) field(column string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// Row is one record in transit between the handler and a store.
type Row = map[string]any

// coerce converts a decoded JSON value into the field's storage type.
// Numbers arrive as float64 and id lists as []any.
func coerce(f Field, value any) (any, error) {
	if value == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, fmt.Errorf("hodnota je povinná")
	}

	switch f.Kind {
	case FieldText, FieldRichText, FieldImage:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("očekáván řetězec")
		}
		return strings.TrimSpace(s), nil

	case FieldInt, FieldRef:
		switch v := value.(type) {
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("očekáváno celé číslo")
			}
			return int64(v), nil
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		}
		return nil, fmt.Errorf("očekáváno celé číslo")

	case FieldBool:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("očekávána logická hodnota")
		}
		return b, nil

	case FieldDateTime:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("očekáváno datum")
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC(), nil
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t.UTC(), nil
		}
		return nil, fmt.Errorf("neplatné datum %q", s)

	case FieldIDList:
		items, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("očekáván seznam identifikátorů")
		}
		out := make([]int64, 0, len(items))
		for _, item := range items {
			n, ok := item.(float64)
			if !ok || n != float64(int64(n)) {
				return nil, fmt.Errorf("očekáván seznam identifikátorů")
			}
			out = append(out, int64(n))
		}
		return out, nil
	}

	return nil, fmt.Errorf("neznámý typ pole")
}

// zeroValue is stored when an optional field is absent from the payload.
func zeroValue(f Field) any {
	if f.Nullable {
		return nil
	}
	switch f.Kind {
	case FieldText, FieldRichText, FieldImage:
		return ""
	case FieldInt, FieldRef:
		return int64(0)
	case FieldBool:
		return false
	case FieldIDList:
		return []int64{}
	}
	return nil
}
