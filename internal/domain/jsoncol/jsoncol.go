// Package jsoncol holds column types stored as JSON text so list fields work
// the same on MySQL, PostgreSQL and SQLite.
package jsoncol

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string persisted as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, (*[]string)(l))
}

// GormDataType keeps AutoMigrate on a text column for every dialect.
func (StringList) GormDataType() string { return "text" }

// Contains reports whether v is an element of l.
func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}

func scanJSON(src any, dst any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("jsoncol: unsupported source type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// Scan is exported for other JSON column types declared in domain packages.
func Scan(src any, dst any) error { return scanJSON(src, dst) }

// Value marshals v for a JSON text column, storing nil as SQL NULL.
func Value(v any, isNil bool) (driver.Value, error) {
	if isNil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
