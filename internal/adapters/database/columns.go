package database

import (
	"github.com/doug-martin/goqu/v9"
)

// columnSet accumulates (column, value) pairs in insertion order so that the
// column list, placeholder list and argument list of an INSERT are rendered
// together by goqu.
type columnSet struct {
	cols []interface{}
	vals goqu.Vals
}

func (s *columnSet) add(column string, value interface{}) {
	s.cols = append(s.cols, column)
	s.vals = append(s.vals, value)
}

func (s *columnSet) len() int {
	return len(s.cols)
}

// addIfSet adds column only when v is non-nil, dereferencing it so the
// driver receives a plain value.
func addIfSet[T any](s *columnSet, column string, v *T) {
	if v != nil {
		s.add(column, *v)
	}
}

// insert renders INSERT INTO table (cols...) VALUES ($1, ...) RETURNING *.
func (s *columnSet) insert(db *goqu.Database, table string) *goqu.InsertDataset {
	return db.Insert(table).
		Prepared(true).
		Cols(s.cols...).
		Vals(s.vals).
		Returning(goqu.Star())
}
