package validation

import (
	"errors"
	"fmt"

	"github.com/mfdls/medford-lsp/parser"
	. "github.com/mfdls/medford-lsp/types"
	"github.com/tliron/commonlog"
	"go.uber.org/multierr"
)

var log = commonlog.GetLogger("mfdls.validation")

var ErrInternal = errors.New("internal validation error")

type Result struct {
	Details     []parser.DetailRecord
	Macros      parser.MacroTable
	Errors      []parser.StructuredError
	Diagnostics []Diagnostic

	// the pass stopped on an internal fault
	Aborted bool
}

// Failed reports whether the document could not be tokenized cleanly.
func (res *Result) Failed() bool {
	return res.Aborted || len(res.Errors) > 0
}

// Validate tokenizes the whole text from a fresh state and translates every
// collected error into a diagnostic. The returned error aggregates internal
// problems only; the diagnostics translated so far are always returned.
func Validate(uri Uri, text string) (res *Result, err error) {
	res = &Result{
		Details:     make([]parser.DetailRecord, 0),
		Macros:      parser.MacroTable{},
		Errors:      make([]parser.StructuredError, 0),
		Diagnostics: make([]Diagnostic, 0),
	}

	defer func() {
		if r := recover(); r != nil {
			res.Aborted = true
			err = multierr.Append(err, fmt.Errorf("%w: %v", ErrInternal, r))
			log.Criticalf("%s: %v", uri, r)
		}
	}()

	lines := parser.SplitLines(text)
	pass := parser.Tokenize(lines)

	res.Details = pass.Details()
	res.Macros = pass.State().Macros()
	res.Errors = pass.Errors().All()

	for _, e := range res.Errors {
		d, translateErr := Translate(e, lines, uri)

		if translateErr != nil {
			log.Errorf("%s: %s", uri, translateErr.Error())
			err = multierr.Append(err, translateErr)
		}

		res.Diagnostics = append(res.Diagnostics, d)
	}

	log.Debugf("%s: %d details, %d macros, %d diagnostics", uri, len(res.Details), len(res.Macros), len(res.Diagnostics))

	return
}
