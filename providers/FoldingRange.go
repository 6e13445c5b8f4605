package providers

import (
	"github.com/mfdls/medford-lsp/state"
	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func FoldingRange(ctx *Ctx, params *proto.FoldingRangeParams) (res []proto.FoldingRange, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := docs.Load(uri)

	if err != nil {
		return
	}

	return FoldBlocks(doc), nil
}

// FoldBlocks folds every token that spans more than one line.
func FoldBlocks(doc *state.Doc) []proto.FoldingRange {
	res := make([]proto.FoldingRange, 0)

	for _, block := range doc.Blocks() {
		if block.Start == block.End {
			continue
		}

		res = append(res, proto.FoldingRange{
			StartLine: UInt(block.Start),
			EndLine:   UInt(block.End),
			Kind:      P(string(proto.FoldingRangeKindRegion)),
		})
	}

	return res
}
