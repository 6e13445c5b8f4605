package parser

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

const (
	TokenMarker    = "@"
	MacroMarker    = "`"
	MacroPrefix    = MacroMarker + TokenMarker
	MinorSeparator = "-"
	CommentMarker  = "#"
)

var (
	MacroRefRegexp    = regexp.MustCompile("`@(\\w+)")
	PlaceholderRegexp = regexp.MustCompile(`\[..\]`)
	macroNameRegexp   = regexp.MustCompile(`^\w+$`)

	// markers people type instead of "`@"
	malformedPrefixes = []string{"'@", "´@", "@`"}
)

type Macro struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

type MacroTable map[string]Macro

func (t MacroTable) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// DetailRecord is the token read from one non-blank line.
type DetailRecord struct {
	Line         int
	Text         string
	Major        string
	Minor        string
	Value        string
	Novel        bool
	Continuation bool
}

// State is carried from one line to the next. The zero value is the state
// before the first line of a document. A State is never modified after it
// is returned, Process always builds a new one.
type State struct {
	macros    MacroTable
	major     string
	majorLine int
}

// Macros returns a copy of the macros defined so far.
func (s State) Macros() MacroTable {
	if s.macros == nil {
		return MacroTable{}
	}

	return maps.Clone(s.macros)
}

func (s State) Macro(name string) (m Macro, ok bool) {
	m, ok = s.macros[name]
	return
}

// Major is the name of the token the next continuation or minor line belongs to.
func (s State) Major() string {
	return s.major
}

func (s State) withMacro(name string, m Macro) State {
	next := s
	next.macros = make(MacroTable, len(s.macros)+1)
	maps.Copy(next.macros, s.macros)
	next.macros[name] = m
	return next
}

// Process tokenizes one line. Blank lines must be skipped by the caller.
func Process(line string, lineNo int, prior State) (*DetailRecord, State, []StructuredError) {
	text := strings.TrimSpace(line)
	errs := make([]StructuredError, 0)

	switch {
	case text == "", strings.HasPrefix(text, CommentMarker):
		return nil, prior, errs

	case strings.HasPrefix(text, MacroPrefix):
		return processMacro(text, lineNo, prior, errs)
	}

	for _, prefix := range malformedPrefixes {
		if strings.HasPrefix(text, prefix) {
			errs = append(errs, StructuredError{
				Line:    lineNo,
				Kind:    WrongMacroToken,
				Message: fmt.Sprintf("Malformed token marker '%s' on line %d", prefix, lineNo),
				Name:    prefix,
			})

			return nil, prior, errs
		}
	}

	raw := text
	text, errs = substitute(text, lineNo, prior, errs)
	errs = checkPlaceholders(raw, text, lineNo, prior, errs)

	if !strings.HasPrefix(text, TokenMarker) {
		if prior.major == "" {
			errs = append(errs, StructuredError{
				Line:    lineNo,
				Kind:    OtherError,
				Message: fmt.Sprintf("Line %d continues a token, but no token was started", lineNo),
			})
		}

		return &DetailRecord{
			Line:         lineNo,
			Text:         text,
			Major:        prior.major,
			Value:        text,
			Continuation: true,
		}, prior, errs
	}

	head, value := splitField(text[len(TokenMarker):])

	if head == "" {
		errs = append(errs, StructuredError{
			Line:    lineNo,
			Kind:    WrongMacroToken,
			Message: fmt.Sprintf("Malformed token marker '%s' on line %d: missing token name", TokenMarker, lineNo),
			Name:    TokenMarker,
		})

		return nil, prior, errs
	}

	major, minor, isMinor := strings.Cut(head, MinorSeparator)

	if !isMinor {
		if value == "" {
			errs = append(errs, StructuredError{
				Line:    lineNo,
				Kind:    NoDescription,
				Message: fmt.Sprintf("Novel token @%s on line %d has no description", major, lineNo),
				Name:    major,
			})
		}

		next := prior
		next.major = major
		next.majorLine = lineNo

		return &DetailRecord{
			Line:  lineNo,
			Text:  text,
			Major: major,
			Value: value,
			Novel: true,
		}, next, errs
	}

	if major != prior.major {
		msg := fmt.Sprintf("Minor token @%s on line %d does not follow a @%s token", head, lineNo, major)

		if prior.major != "" {
			msg += fmt.Sprintf(" (open token is @%s from line %d)", prior.major, prior.majorLine)
		}

		errs = append(errs, StructuredError{
			Line:    lineNo,
			Kind:    OtherError,
			Message: msg,
			Name:    head,
			RefLine: prior.majorLine,
		})
	}

	return &DetailRecord{
		Line:  lineNo,
		Text:  text,
		Major: major,
		Minor: minor,
		Value: value,
	}, prior, errs
}

func processMacro(text string, lineNo int, prior State, errs []StructuredError) (*DetailRecord, State, []StructuredError) {
	name, value := splitField(text[len(MacroPrefix):])

	if !macroNameRegexp.MatchString(name) {
		errs = append(errs, StructuredError{
			Line:    lineNo,
			Kind:    WrongMacroToken,
			Message: fmt.Sprintf("Malformed token marker '%s' on line %d: invalid macro name '%s'", MacroPrefix, lineNo, name),
			Name:    MacroPrefix,
		})

		return nil, prior, errs
	}

	raw := value
	value, errs = substitute(value, lineNo, prior, errs)
	errs = checkPlaceholders(raw, value, lineNo, prior, errs)

	if first, exist := prior.macros[name]; exist {
		errs = append(errs, StructuredError{
			Line:    lineNo,
			Kind:    DuplicatedMacro,
			Message: fmt.Sprintf("Duplicated macro '%s' on lines %d and %d", name, first.Line, lineNo),
			Name:    name,
			RefLine: first.Line,
		})

		return nil, prior, errs
	}

	return nil, prior.withMacro(name, Macro{Line: lineNo, Text: value}), errs
}

func substitute(text string, lineNo int, state State, errs []StructuredError) (string, []StructuredError) {
	if !strings.Contains(text, MacroPrefix) {
		return text, errs
	}

	text = MacroRefRegexp.ReplaceAllStringFunc(text, func(ref string) string {
		name := ref[len(MacroPrefix):]
		m, ok := state.macros[name]

		if ok {
			return m.Text
		}

		errs = append(errs, StructuredError{
			Line:    lineNo,
			Kind:    UnexpectedMacro,
			Message: fmt.Sprintf("Unexpected macro '%s' on line %d", name, lineNo),
			Name:    name,
		})

		return ref
	})

	return text, errs
}

// checkPlaceholders reports the first placeholder of a line. Name is the
// placeholder itself when it is written on the line, or the "`@name"
// reference of the macro that brought it in.
func checkPlaceholders(raw string, text string, lineNo int, state State, errs []StructuredError) []StructuredError {
	placeholder := PlaceholderRegexp.FindString(raw)

	if placeholder != "" {
		return append(errs, StructuredError{
			Line:    lineNo,
			Kind:    RemainingTemplate,
			Message: fmt.Sprintf("Template placeholder %s remains on line %d", placeholder, lineNo),
			Name:    placeholder,
		})
	}

	for _, ref := range MacroRefRegexp.FindAllStringSubmatch(raw, -1) {
		m, ok := state.macros[ref[1]]

		if !ok {
			continue
		}

		if placeholder = PlaceholderRegexp.FindString(m.Text); placeholder != "" {
			return append(errs, StructuredError{
				Line:    lineNo,
				Kind:    RemainingTemplate,
				Message: fmt.Sprintf("Template placeholder %s from macro '%s' remains on line %d", placeholder, ref[1], lineNo),
				Name:    ref[0],
				RefLine: m.Line,
			})
		}
	}

	if placeholder = PlaceholderRegexp.FindString(text); placeholder != "" {
		errs = append(errs, StructuredError{
			Line:    lineNo,
			Kind:    RemainingTemplate,
			Message: fmt.Sprintf("Template placeholder %s remains on line %d", placeholder, lineNo),
			Name:    placeholder,
		})
	}

	return errs
}

func splitField(text string) (head string, rest string) {
	i := strings.IndexFunc(text, unicode.IsSpace)

	if i == -1 {
		return text, ""
	}

	return text[:i], strings.TrimSpace(text[i:])
}
