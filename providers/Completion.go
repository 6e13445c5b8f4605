package providers

import (
	"strings"
	"unicode"

	"github.com/mfdls/medford-lsp/i18n"
	"github.com/mfdls/medford-lsp/parser"
	"github.com/mfdls/medford-lsp/tokens"
	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

var CompletionTriggers = []string{parser.TokenMarker, parser.MinorSeparator}

func Completion(ctx *Ctx, params *proto.CompletionParams) (any, error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return nil, err
	}

	doc, err := docs.Load(uri)

	if err != nil {
		return nil, err
	}

	line := doc.Line(int(params.Position.Line))

	return CompleteLine(catalog, doc.Macros, line, int(params.Position.Character)), nil
}

// CompleteLine suggests tokens for the cursor at UTF-16 column char of line:
// major tokens right after a leading "@", macros after "`@" and the minor
// tokens of a known major after "@Major-".
func CompleteLine(catalog tokens.Catalog, macros parser.MacroTable, line string, char int) *proto.CompletionList {
	prefix := line[:UTF16ToByte(line, char)]
	prefix = strings.TrimLeftFunc(prefix, unicode.IsSpace)
	list := make([]proto.CompletionItem, 0)

	switch {
	case prefix == parser.TokenMarker:
		for _, major := range catalog.Majors() {
			list = append(list, proto.CompletionItem{
				Kind:  P(proto.CompletionItemKindKeyword),
				Label: major,
			})
		}

	case strings.HasSuffix(prefix, parser.MacroPrefix):
		for _, name := range macros.Names() {
			m := macros[name]

			list = append(list, proto.CompletionItem{
				Kind:          P(proto.CompletionItemKindVariable),
				Label:         name,
				Detail:        P(m.Text),
				Documentation: i18n.L("macro_defined_on_line", m.Line),
			})
		}

	case isRequestingMinor(prefix):
		major := prefix[len(parser.TokenMarker) : len(prefix)-len(parser.MinorSeparator)]
		minors, _ := catalog.Minors(major)

		for _, minor := range minors {
			list = append(list, proto.CompletionItem{
				Kind:  P(proto.CompletionItemKindField),
				Label: minor,
			})
		}
	}

	return &proto.CompletionList{
		IsIncomplete: false,
		Items:        list,
	}
}

// "@Major-" with nothing but the major name between the marker and separator
func isRequestingMinor(prefix string) bool {
	if !strings.HasPrefix(prefix, parser.TokenMarker) || !strings.HasSuffix(prefix, parser.MinorSeparator) {
		return false
	}

	major := strings.TrimSuffix(prefix[len(parser.TokenMarker):], parser.MinorSeparator)

	return major != "" && !strings.ContainsFunc(major, func(r rune) bool {
		return unicode.IsSpace(r) || string(r) == parser.MinorSeparator
	})
}
