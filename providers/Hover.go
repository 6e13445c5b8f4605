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

func Hover(ctx *Ctx, params *proto.HoverParams) (h *proto.Hover, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := docs.Load(uri)

	if err != nil {
		return
	}

	index := int(params.Position.Line)

	return HoverLine(catalog, doc.Line(index), index), nil
}

// HoverLine describes the token at the start of line. It returns nil when
// the line has no "@token " prefix or the major token is unknown.
func HoverLine(catalog tokens.Catalog, line string, index int) *proto.Hover {
	text := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent := len(line) - len(text)
	space := strings.IndexFunc(text, unicode.IsSpace)

	if !strings.HasPrefix(text, parser.TokenMarker) || space == -1 {
		return nil
	}

	token := text[len(parser.TokenMarker):space]
	major, _, isMinor := strings.Cut(token, parser.MinorSeparator)
	minors, ok := catalog.Minors(major)

	if !ok {
		return nil
	}

	var message string

	if isMinor {
		message = i18n.L("other_minor_tokens", major, strings.Join(minors, ", "))
	} else {
		message = i18n.L("major_token", major) + "\n\n" + i18n.L("associated_minor_tokens", strings.Join(minors, ", "))
	}

	r := LineRange(index, line, indent, indent+space)

	return &proto.Hover{
		Range: &r,
		Contents: proto.MarkupContent{
			Kind:  proto.MarkupKindMarkdown,
			Value: message,
		},
	}
}
