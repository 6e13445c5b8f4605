package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mfdls/medford-lsp/i18n"
	"github.com/mfdls/medford-lsp/parser"
	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/multierr"
)

const Source = "MEDFORD"

var (
	ErrSpanNotFound   = errors.New("error span not found")
	ErrLineOutOfRange = errors.New("error line out of range")
)

// Translate converts a parser error into a diagnostic, finding the exact span
// by scanning the source line again. When the span can not be found the
// diagnostic covers the whole line and the returned error describes the
// mismatch between the error and the source.
func Translate(e parser.StructuredError, lines []string, uri Uri) (d Diagnostic, err error) {
	d = Diagnostic{
		Severity: P(proto.DiagnosticSeverityError),
		Code:     &proto.IntegerOrString{Value: string(e.Kind)},
		Source:   P(Source),
		Message:  e.Message,
	}

	if e.Kind == parser.DuplicatedMacro {
		return translateDuplicate(d, e, lines, uri)
	}

	index, line, err := sourceLine(lines, e.Line)
	d.Range = wholeLine(index, line)

	if err != nil {
		return
	}

	var ok bool

	switch e.Kind {
	case parser.UnexpectedMacro:
		d.Range, ok = macroSpan(index, line, e.Name, definitionEnd(line))

	case parser.RemainingTemplate:
		d.Range, ok = placeholderSpan(index, line, e.Name)

	case parser.NoDescription:
		d.Range, ok = tokenSpan(index, line, e.Name)

	case parser.WrongMacroToken:
		d.Range, ok = markerSpan(index, line, e.Name)

	default:
		ok = true
	}

	if !ok {
		d.Range = wholeLine(index, line)
		err = notFound(e, e.Line)
	}

	return
}

func translateDuplicate(d Diagnostic, e parser.StructuredError, lines []string, uri Uri) (Diagnostic, error) {
	refIndex, refLine, err := sourceLine(lines, e.RefLine)
	d.Range = wholeLine(refIndex, refLine)

	if err != nil {
		return d, err
	}

	index, line, lineErr := sourceLine(lines, e.Line)
	err = multierr.Append(err, lineErr)

	primary, ok := macroSpan(refIndex, refLine, e.Name, 0)

	if !ok {
		primary = wholeLine(refIndex, refLine)
		err = multierr.Append(err, notFound(e, e.RefLine))
	}

	related, ok := macroSpan(index, line, e.Name, 0)

	if !ok || lineErr != nil {
		related = wholeLine(index, line)
	}

	if !ok {
		err = multierr.Append(err, notFound(e, e.Line))
	}

	d.Range = primary
	d.RelatedInformation = []proto.DiagnosticRelatedInformation{
		{
			Location: proto.Location{
				URI:   uri,
				Range: related,
			},
			Message: i18n.L("duplicate_macro_definition", e.Name),
		},
	}

	return d, err
}

// "`@name" at or after byte from, highlighting only the name
func macroSpan(index int, line string, name string, from int) (Range, bool) {
	loc := findMacroRef(line, name, from)

	if loc == nil {
		return Range{}, false
	}

	return LineRange(index, line, loc[0]+len(parser.MacroPrefix), loc[1]), true
}

func findMacroRef(line string, name string, from int) []int {
	if name == "" || from > len(line) {
		return nil
	}

	re := regexp.MustCompile(regexp.QuoteMeta(parser.MacroPrefix+name) + `\b`)
	loc := re.FindStringIndex(line[from:])

	if loc == nil {
		return nil
	}

	return []int{loc[0] + from, loc[1] + from}
}

// definitionEnd is the byte offset after the name of a macro definition
// line, or 0 for other lines.
func definitionEnd(line string) int {
	text := strings.TrimLeftFunc(line, unicode.IsSpace)

	if !strings.HasPrefix(text, parser.MacroPrefix) {
		return 0
	}

	rest := text[len(parser.MacroPrefix):]
	i := strings.IndexFunc(rest, unicode.IsSpace)

	if i == -1 {
		return len(line)
	}

	return len(line) - len(rest) + i
}

// "@name", highlighting only the name
func tokenSpan(index int, line string, name string) (Range, bool) {
	if name == "" {
		return Range{}, false
	}

	re := regexp.MustCompile(regexp.QuoteMeta(parser.TokenMarker+name) + `(?:\s|$)`)
	loc := re.FindStringIndex(line)

	if loc == nil {
		return Range{}, false
	}

	start := loc[0] + len(parser.TokenMarker)

	return LineRange(index, line, start, start+len(name)), true
}

// The placeholder itself, or the whole "`@name" reference of the macro that
// brought it in.
func placeholderSpan(index int, line string, placeholder string) (Range, bool) {
	if name, ok := strings.CutPrefix(placeholder, parser.MacroPrefix); ok {
		loc := findMacroRef(line, name, definitionEnd(line))

		if loc == nil {
			return Range{}, false
		}

		return LineRange(index, line, loc[0], loc[1]), true
	}

	if placeholder != "" {
		if i := strings.Index(line, placeholder); i != -1 {
			return LineRange(index, line, i, i+len(placeholder)), true
		}
	}

	loc := parser.PlaceholderRegexp.FindStringIndex(line)

	if loc == nil {
		return Range{}, false
	}

	return LineRange(index, line, loc[0], loc[1]), true
}

// The span is the malformed marker itself, wherever it is on the line.
func markerSpan(index int, line string, marker string) (Range, bool) {
	if marker == "" {
		return Range{}, false
	}

	i := strings.Index(line, marker)

	if i == -1 {
		return Range{}, false
	}

	return LineRange(index, line, i, i+len(marker)), true
}

func wholeLine(index int, line string) Range {
	return LineRange(index, line, 0, len(line))
}

// sourceLine returns the 0-based index and text of a 1-based line number,
// clamped to the document.
func sourceLine(lines []string, lineNo int) (index int, line string, err error) {
	if len(lines) == 0 {
		return 0, "", fmt.Errorf("%w: line %d of empty document", ErrLineOutOfRange, lineNo)
	}

	index = lineNo - 1

	if index < 0 || index >= len(lines) {
		err = fmt.Errorf("%w: line %d of %d", ErrLineOutOfRange, lineNo, len(lines))
		index = min(max(index, 0), len(lines)-1)
	}

	return index, lines[index], err
}

func notFound(e parser.StructuredError, lineNo int) error {
	return fmt.Errorf("%w: %s %q on line %d", ErrSpanNotFound, e.Kind, e.Name, lineNo)
}
