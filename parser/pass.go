package parser

import (
	"strings"
)

// Pass tokenizes a whole document. Every pass starts from an empty State,
// so macros of a previous run never leak into the next one.
type Pass struct {
	state   State
	details []DetailRecord
	errors  *Collector
}

func NewPass() *Pass {
	return &Pass{
		details: make([]DetailRecord, 0),
		errors:  NewCollector(),
	}
}

// Feed processes one line. Blank lines are skipped.
func (p *Pass) Feed(line string, lineNo int) {
	if strings.TrimSpace(line) == "" {
		return
	}

	record, next, errs := Process(line, lineNo, p.state)

	p.state = next
	p.errors.Add(errs...)

	if record != nil && record.Novel {
		p.details = append(p.details, *record)
	}
}

// Run feeds all lines, numbering them from 1.
func (p *Pass) Run(lines []string) *Pass {
	for i, line := range lines {
		p.Feed(line, i+1)
	}

	return p
}

func (p *Pass) State() State {
	return p.state
}

// Details returns the novel token records in document order.
func (p *Pass) Details() []DetailRecord {
	return p.details
}

func (p *Pass) Errors() *Collector {
	return p.errors
}

func Tokenize(lines []string) *Pass {
	return NewPass().Run(lines)
}

// SplitLines splits text on "\n", dropping a trailing "\r" from each line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
