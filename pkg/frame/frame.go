package frame

import (
	"fmt"
	"sort"
	"time"
)

// Kind enumerates supported logical column types.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindTime
)

// ColumnSchema describes one column of a dataset.
type ColumnSchema struct {
	Name     string
	Type     Kind
	Nullable bool
}

// Schema describes the logical shape of a dataset.
type Schema struct {
	Columns []ColumnSchema
}

// Column is a typed, nullable column abstraction.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	SetNull(i int)
	appendNull()
	permute(idx []int)
}

type IntColumn struct {
	name  string
	data  []int64
	nulls []bool
}

func NewIntColumn(name string, n int) *IntColumn {
	return &IntColumn{name: name, data: make([]int64, n), nulls: make([]bool, n)}
}
func (c *IntColumn) Name() string            { return c.name }
func (c *IntColumn) Kind() Kind              { return KindInt }
func (c *IntColumn) Len() int                { return len(c.data) }
func (c *IntColumn) IsNull(i int) bool       { return c.nulls[i] }
func (c *IntColumn) SetNull(i int)           { c.nulls[i] = true }
func (c *IntColumn) Get(i int) (int64, bool) { return c.data[i], !c.nulls[i] }
func (c *IntColumn) Set(i int, v int64)      { c.data[i] = v; c.nulls[i] = false }
func (c *IntColumn) Append(v int64)          { c.data = append(c.data, v); c.nulls = append(c.nulls, false) }
func (c *IntColumn) AppendNull()             { c.appendNull() }
func (c *IntColumn) appendNull()             { c.data = append(c.data, 0); c.nulls = append(c.nulls, true) }
func (c *IntColumn) permute(idx []int) {
	c.data = permuteSlice(c.data, idx)
	c.nulls = permuteSlice(c.nulls, idx)
}

type FloatColumn struct {
	name  string
	data  []float64
	nulls []bool
}

func NewFloatColumn(name string, n int) *FloatColumn {
	return &FloatColumn{name: name, data: make([]float64, n), nulls: make([]bool, n)}
}
func (c *FloatColumn) Name() string              { return c.name }
func (c *FloatColumn) Kind() Kind                { return KindFloat }
func (c *FloatColumn) Len() int                  { return len(c.data) }
func (c *FloatColumn) IsNull(i int) bool         { return c.nulls[i] }
func (c *FloatColumn) SetNull(i int)             { c.nulls[i] = true }
func (c *FloatColumn) Get(i int) (float64, bool) { return c.data[i], !c.nulls[i] }
func (c *FloatColumn) Set(i int, v float64)      { c.data[i] = v; c.nulls[i] = false }
func (c *FloatColumn) Append(v float64) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *FloatColumn) AppendNull() { c.appendNull() }
func (c *FloatColumn) appendNull() {
	c.data = append(c.data, 0)
	c.nulls = append(c.nulls, true)
}
func (c *FloatColumn) permute(idx []int) {
	c.data = permuteSlice(c.data, idx)
	c.nulls = permuteSlice(c.nulls, idx)
}

// Values returns the non-null values of the column in row order.
func (c *FloatColumn) Values() []float64 {
	out := make([]float64, 0, len(c.data))
	for i, v := range c.data {
		if !c.nulls[i] {
			out = append(out, v)
		}
	}
	return out
}

type StringColumn struct {
	name  string
	data  []string
	nulls []bool
}

func NewStringColumn(name string, n int) *StringColumn {
	return &StringColumn{name: name, data: make([]string, n), nulls: make([]bool, n)}
}
func (c *StringColumn) Name() string             { return c.name }
func (c *StringColumn) Kind() Kind               { return KindString }
func (c *StringColumn) Len() int                 { return len(c.data) }
func (c *StringColumn) IsNull(i int) bool        { return c.nulls[i] }
func (c *StringColumn) SetNull(i int)            { c.nulls[i] = true }
func (c *StringColumn) Get(i int) (string, bool) { return c.data[i], !c.nulls[i] }
func (c *StringColumn) Set(i int, v string)      { c.data[i] = v; c.nulls[i] = false }
func (c *StringColumn) Append(v string) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *StringColumn) AppendNull() { c.appendNull() }
func (c *StringColumn) appendNull() {
	c.data = append(c.data, "")
	c.nulls = append(c.nulls, true)
}
func (c *StringColumn) permute(idx []int) {
	c.data = permuteSlice(c.data, idx)
	c.nulls = permuteSlice(c.nulls, idx)
}

type TimeColumn struct {
	name  string
	data  []time.Time
	nulls []bool
}

func NewTimeColumn(name string, n int) *TimeColumn {
	return &TimeColumn{name: name, data: make([]time.Time, n), nulls: make([]bool, n)}
}
func (c *TimeColumn) Name() string                { return c.name }
func (c *TimeColumn) Kind() Kind                  { return KindTime }
func (c *TimeColumn) Len() int                    { return len(c.data) }
func (c *TimeColumn) IsNull(i int) bool           { return c.nulls[i] }
func (c *TimeColumn) SetNull(i int)               { c.nulls[i] = true }
func (c *TimeColumn) Get(i int) (time.Time, bool) { return c.data[i], !c.nulls[i] }
func (c *TimeColumn) Set(i int, v time.Time)      { c.data[i] = v; c.nulls[i] = false }
func (c *TimeColumn) Append(v time.Time) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *TimeColumn) AppendNull() { c.appendNull() }
func (c *TimeColumn) appendNull() {
	c.data = append(c.data, time.Time{})
	c.nulls = append(c.nulls, true)
}
func (c *TimeColumn) permute(idx []int) {
	c.data = permuteSlice(c.data, idx)
	c.nulls = permuteSlice(c.nulls, idx)
}

func permuteSlice[T any](s []T, idx []int) []T {
	out := make([]T, len(s))
	for i, j := range idx {
		out[i] = s[j]
	}
	return out
}

func newColumn(cs ColumnSchema) Column {
	switch cs.Type {
	case KindInt:
		return NewIntColumn(cs.Name, 0)
	case KindFloat:
		return NewFloatColumn(cs.Name, 0)
	case KindString:
		return NewStringColumn(cs.Name, 0)
	case KindTime:
		return NewTimeColumn(cs.Name, 0)
	default:
		panic("invalid column kind")
	}
}

// Frame is a columnar container for tabular data.
type Frame struct {
	schema Schema
	cols   []Column
	index  map[string]int // name -> col index
	nrows  int
}

func New(s Schema) *Frame {
	f := &Frame{schema: s, cols: make([]Column, len(s.Columns)), index: make(map[string]int)}
	for i, cs := range s.Columns {
		f.cols[i] = newColumn(cs)
		f.index[cs.Name] = i
	}
	return f
}

func (f *Frame) Schema() Schema { return f.schema }
func (f *Frame) Rows() int      { return f.nrows }
func (f *Frame) Cols() int      { return len(f.cols) }

func (f *Frame) ColumnByName(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// AppendNullRow appends a row with all-null values.
func (f *Frame) AppendNullRow() {
	for _, c := range f.cols {
		c.appendNull()
	}
	f.nrows++
}

// SetCell sets a single cell value by column name (row must exist). A nil
// value sets the cell null regardless of column kind.
func (f *Frame) SetCell(row int, name string, v any) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	c := f.cols[i]
	if v == nil {
		c.SetNull(row)
		return nil
	}
	switch col := c.(type) {
	case *IntColumn:
		switch t := v.(type) {
		case int:
			col.Set(row, int64(t))
		case int64:
			col.Set(row, t)
		case float64:
			col.Set(row, int64(t))
		default:
			return fmt.Errorf("column %s expects int/int64", name)
		}
	case *FloatColumn:
		switch t := v.(type) {
		case float32:
			col.Set(row, float64(t))
		case float64:
			col.Set(row, t)
		case int:
			col.Set(row, float64(t))
		case int64:
			col.Set(row, float64(t))
		default:
			return fmt.Errorf("column %s expects float64", name)
		}
	case *StringColumn:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %s expects string", name)
		}
		col.Set(row, s)
	case *TimeColumn:
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("column %s expects time.Time", name)
		}
		col.Set(row, t)
	default:
		return fmt.Errorf("unknown column kind")
	}
	return nil
}

// AddColumn appends a new all-null column to the frame. It is an error to
// reuse an existing name.
func (f *Frame) AddColumn(cs ColumnSchema) (Column, error) {
	if _, ok := f.index[cs.Name]; ok {
		return nil, fmt.Errorf("column already exists: %s", cs.Name)
	}
	c := newColumn(cs)
	for i := 0; i < f.nrows; i++ {
		c.appendNull()
	}
	f.schema.Columns = append(f.schema.Columns, cs)
	f.cols = append(f.cols, c)
	f.index[cs.Name] = len(f.cols) - 1
	return c, nil
}

// ReplaceColumn swaps a column for one of the same length under the same
// name, updating the schema kind. Used by type-coercion transforms.
func (f *Frame) ReplaceColumn(name string, c Column) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	if c.Len() != f.nrows {
		return fmt.Errorf("column %s: length %d does not match %d rows", name, c.Len(), f.nrows)
	}
	f.cols[i] = c
	f.schema.Columns[i].Type = c.Kind()
	return nil
}

// SortBy reorders all rows by the given less function over row indices.
// The sort is stable.
func (f *Frame) SortBy(less func(i, j int) bool) {
	idx := make([]int, f.nrows)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return less(idx[a], idx[b]) })
	for _, c := range f.cols {
		c.permute(idx)
	}
}

// FloatAt reads a cell from an int or float column as a float64. The second
// return is false for nulls and for non-numeric columns.
func (f *Frame) FloatAt(name string, row int) (float64, bool) {
	col, ok := f.ColumnByName(name)
	if !ok {
		return 0, false
	}
	switch c := col.(type) {
	case *FloatColumn:
		return c.Get(row)
	case *IntColumn:
		v, ok := c.Get(row)
		return float64(v), ok
	}
	return 0, false
}

// NumericColumns returns the names of all int and float columns in schema
// order.
func (f *Frame) NumericColumns() []string {
	var names []string
	for _, cs := range f.schema.Columns {
		if cs.Type == KindInt || cs.Type == KindFloat {
			names = append(names, cs.Name)
		}
	}
	return names
}

// StringColumns returns the names of all string columns in schema order.
func (f *Frame) StringColumns() []string {
	var names []string
	for _, cs := range f.schema.Columns {
		if cs.Type == KindString {
			names = append(names, cs.Name)
		}
	}
	return names
}
