package output

import (
	"fmt"
	"io"
	"iter"

	"github.com/eriklarko/booleval/src/boolexpr"
)

// Report counts the rows of a truth table by result. It keeps counts only, so
// tracking a table of any size takes the same memory.
type Report struct {
	Satisfying uint64
	Falsifying uint64
}

func (r *Report) RecordRow(row boolexpr.TruthRow) {
	if row.Result {
		r.RecordSatisfying()
	} else {
		r.RecordFalsifying()
	}
}

// RecordSatisfying records a row that makes the expression true
func (r *Report) RecordSatisfying() {
	r.Satisfying++
}

// RecordFalsifying records a row that makes the expression false
func (r *Report) RecordFalsifying() {
	r.Falsifying++
}

// Track records every row that passes through the returned sequence.
func (r *Report) Track(rows iter.Seq[boolexpr.TruthRow]) iter.Seq[boolexpr.TruthRow] {
	return func(yield func(boolexpr.TruthRow) bool) {
		for row := range rows {
			r.RecordRow(row)
			if !yield(row) {
				return
			}
		}
	}
}

func (r *Report) Rows() uint64 {
	return r.Satisfying + r.Falsifying
}

func (r *Report) IsTautology() bool {
	return r.Rows() > 0 && r.Falsifying == 0
}

func (r *Report) IsContradiction() bool {
	return r.Rows() > 0 && r.Satisfying == 0
}

func (r *Report) IsSatisfiable() bool {
	return r.Satisfying > 0
}

func (r *Report) Summary() string {
	switch {
	case r.Rows() == 0:
		return "no rows"
	case r.IsTautology():
		return fmt.Sprintf("tautology, true in all %d rows", r.Rows())
	case r.IsContradiction():
		return fmt.Sprintf("contradiction, false in all %d rows", r.Rows())
	}
	return fmt.Sprintf("true in %d of %d rows", r.Satisfying, r.Rows())
}

func (r *Report) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Summary())
	return err
}
