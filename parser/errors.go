package parser

import (
	"maps"
	"slices"
)

type ErrorKind string

const (
	UnexpectedMacro   ErrorKind = "unexpected_macro"
	DuplicatedMacro   ErrorKind = "duplicated_macro"
	RemainingTemplate ErrorKind = "remaining_template"
	NoDescription     ErrorKind = "no_desc"
	WrongMacroToken   ErrorKind = "wrong_macro_token"
	OtherError        ErrorKind = "other"
)

// StructuredError is a syntax problem found while tokenizing one line.
// Name holds the offending macro, token, placeholder or marker text. RefLine
// points to an earlier line the error depends on: the first definition of a
// duplicated macro, the definition of a macro that brought in a placeholder
// or the open major token.
type StructuredError struct {
	Line    int
	Kind    ErrorKind
	Message string
	Name    string
	RefLine int
}

func (e StructuredError) Error() string {
	return e.Message
}

type Row struct {
	Line   int
	Errors []StructuredError
}

// Collector keeps every error of one validation pass grouped by line.
type Collector struct {
	rows  map[int][]StructuredError
	count int
}

func NewCollector() *Collector {
	return &Collector{
		rows: make(map[int][]StructuredError),
	}
}

func (c *Collector) Add(errs ...StructuredError) {
	for _, e := range errs {
		c.rows[e.Line] = append(c.rows[e.Line], e)
		c.count++
	}
}

func (c *Collector) Len() int {
	return c.count
}

// Rows returns the collected errors in line order, each row in discovery order.
func (c *Collector) Rows() []Row {
	lines := slices.Sorted(maps.Keys(c.rows))
	rows := make([]Row, len(lines))

	for i, line := range lines {
		rows[i] = Row{
			Line:   line,
			Errors: slices.Clone(c.rows[line]),
		}
	}

	return rows
}

func (c *Collector) All() []StructuredError {
	list := make([]StructuredError, 0, c.count)

	for _, row := range c.Rows() {
		list = append(list, row.Errors...)
	}

	return list
}
