package providers

import (
	"strings"
	"unicode"

	"github.com/mfdls/medford-lsp/parser"
	"github.com/mfdls/medford-lsp/state"
	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func DocSymbols(ctx *Ctx, params *proto.DocumentSymbolParams) (res any, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := docs.Load(uri)

	if err != nil {
		return
	}

	return BlockSymbols(doc), nil
}

// BlockSymbols lists novel tokens with their minor tokens as children.
func BlockSymbols(doc *state.Doc) []proto.DocumentSymbol {
	list := make([]proto.DocumentSymbol, 0)

	for _, block := range doc.Blocks() {
		record := block.Record
		line := doc.Line(block.Start)
		sr, ok := headRange(line)

		if !ok {
			continue
		}

		symbol := proto.DocumentSymbol{
			Kind:           proto.SymbolKindClass,
			Name:           parser.TokenMarker + record.Major,
			Detail:         P(record.Value),
			Range:          LineRange(block.Start, line, sr.startByte, len(line)),
			SelectionRange: LineRange(block.Start, line, sr.startByte, sr.endByte),
			Children:       make([]proto.DocumentSymbol, 0),
		}

		if block.End > block.Start {
			last := doc.Line(block.End)
			symbol.Range.End = LineRange(block.End, last, 0, len(last)).End
		}

		prefix := parser.TokenMarker + record.Major + parser.MinorSeparator

		for index := block.Start + 1; index <= block.End; index++ {
			line := doc.Line(index)
			text := strings.TrimLeftFunc(line, unicode.IsSpace)

			if !strings.HasPrefix(text, prefix) {
				continue
			}

			r, ok := headRange(line)

			if !ok {
				continue
			}

			minor := text[len(prefix) : r.endByte-r.startByte]

			symbol.Children = append(symbol.Children, proto.DocumentSymbol{
				Kind:           proto.SymbolKindField,
				Name:           minor,
				Detail:         P(strings.TrimSpace(text[r.endByte-r.startByte:])),
				Range:          LineRange(index, line, r.startByte, len(line)),
				SelectionRange: LineRange(index, line, r.startByte, r.endByte),
			})
		}

		list = append(list, symbol)
	}

	return list
}

type byteSpan struct {
	startByte int
	endByte   int
}

// "@token" at the start of the line, after the indent
func headRange(line string) (byteSpan, bool) {
	text := strings.TrimLeftFunc(line, unicode.IsSpace)

	if !strings.HasPrefix(text, parser.TokenMarker) {
		return byteSpan{}, false
	}

	indent := len(line) - len(text)
	end := strings.IndexFunc(text, unicode.IsSpace)

	if end == -1 {
		end = len(text)
	}

	return byteSpan{startByte: indent, endByte: indent + end}, true
}
