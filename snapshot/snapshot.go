package snapshot

import "errors"

var (
	// ErrEmptyGrid indicates a recorder built over an empty spatial grid.
	ErrEmptyGrid = errors.New("snapshot: grid must have at least one point")

	// ErrNoFields indicates a recorder declared without any field names.
	ErrNoFields = errors.New("snapshot: at least one field name is required")

	// ErrUnknownField indicates a lookup for a name that was never declared.
	ErrUnknownField = errors.New("snapshot: no field recorded under that name")

	// ErrRowCount indicates a Record call with the wrong number of rows.
	ErrRowCount = errors.New("snapshot: record needs exactly one row per declared field")

	// ErrRowLength indicates a recorded row whose length differs from the grid.
	ErrRowLength = errors.New("snapshot: row length must match the grid")

	// ErrAxisMismatch indicates two fields that disagree on time or space axes.
	ErrAxisMismatch = errors.New("snapshot: fields disagree on time or space axes")
)

// Field is one captured trajectory: an ordered time axis, the native
// spatial grid, and a Values block of shape len(Times) × len(Grid).
// A Field returned by a Store is a private copy; callers may mutate it
// freely without touching the stored data.
type Field struct {
	Name   string
	Times  []float64
	Grid   []float64
	Values [][]float64
}

// Store is the read side of snapshot storage: the only surface the
// estimation pipeline depends on.
type Store interface {
	// Field returns the captured trajectory recorded under name,
	// or ErrUnknownField.
	Field(name string) (Field, error)

	// Names lists the declared field names in declaration order.
	Names() []string
}

// Recorder accumulates captured steps for a fixed set of named fields over
// one spatial grid. It implements Store.
type Recorder struct {
	grid   []float64
	names  []string
	times  []float64
	values map[string][][]float64
}

// NewRecorder declares the capture layout: one spatial grid shared by all
// fields, one slot per field name, in order.
//
// Errors:
//   - ErrEmptyGrid — empty grid.
//   - ErrNoFields  — no names.
func NewRecorder(grid []float64, names ...string) (*Recorder, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(names) == 0 {
		return nil, ErrNoFields
	}

	r := &Recorder{
		grid:   append([]float64(nil), grid...),
		names:  append([]string(nil), names...),
		values: make(map[string][][]float64, len(names)),
	}
	for _, name := range r.names {
		r.values[name] = nil
	}

	return r, nil
}

// Record appends one captured step at simulation time t: one row per
// declared field, in declaration order. Rows are copied, so the caller may
// reuse its buffers.
//
// Errors:
//   - ErrRowCount  — len(rows) != number of declared fields.
//   - ErrRowLength — any row length differs from the grid.
func (r *Recorder) Record(t float64, rows ...[]float64) error {
	if len(rows) != len(r.names) {
		return ErrRowCount
	}
	for _, row := range rows {
		if len(row) != len(r.grid) {
			return ErrRowLength
		}
	}

	r.times = append(r.times, t)
	for i, name := range r.names {
		r.values[name] = append(r.values[name], append([]float64(nil), rows[i]...))
	}

	return nil
}

// Len returns the number of captured steps so far.
func (r *Recorder) Len() int {
	return len(r.times)
}

// Field returns a deep copy of the trajectory recorded under name.
func (r *Recorder) Field(name string) (Field, error) {
	rows, ok := r.values[name]
	if !ok {
		return Field{}, ErrUnknownField
	}

	out := Field{
		Name:   name,
		Times:  append([]float64(nil), r.times...),
		Grid:   append([]float64(nil), r.grid...),
		Values: make([][]float64, len(rows)),
	}
	for t, row := range rows {
		out.Values[t] = append([]float64(nil), row...)
	}

	return out, nil
}

// Names lists the declared field names in declaration order.
func (r *Recorder) Names() []string {
	return append([]string(nil), r.names...)
}

// Aligned reports ErrAxisMismatch unless a and b share identical time and
// space axes, element for element. Estimators that combine a field with
// its stored derivative require this exact alignment.
func Aligned(a, b Field) error {
	if len(a.Times) != len(b.Times) || len(a.Grid) != len(b.Grid) {
		return ErrAxisMismatch
	}
	for i := range a.Times {
		if a.Times[i] != b.Times[i] {
			return ErrAxisMismatch
		}
	}
	for i := range a.Grid {
		if a.Grid[i] != b.Grid[i] {
			return ErrAxisMismatch
		}
	}

	return nil
}
