package providers

import (
	"strings"
	"testing"

	"github.com/mfdls/medford-lsp/tokens"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func hoverText(h *proto.Hover) string {
	return h.Contents.(proto.MarkupContent).Value
}

func TestHoverLine(t *testing.T) {
	cat := tokens.Catalog{
		"Sample": {"Depth", "Location"},
	}

	h := HoverLine(cat, "@Sample-Location details here", 4)

	if h == nil {
		t.Fatal("no hover for minor token")
	}

	text := hoverText(h)

	if !strings.Contains(text, "Location") || !strings.Contains(text, "Depth") || !strings.Contains(text, "@Sample") {
		t.Errorf("minor hover %q", text)
	}

	if h.Range == nil || h.Range.Start.Line != 4 || h.Range.Start.Character != 0 || h.Range.End.Character != 16 {
		t.Errorf("range %+v", h.Range)
	}

	h = HoverLine(cat, "  @Sample a sample", 0)

	if h == nil {
		t.Fatal("no hover for major token")
	}

	if text = hoverText(h); !strings.Contains(text, "Major Token: @Sample") || !strings.Contains(text, "Depth, Location") {
		t.Errorf("major hover %q", text)
	}

	if h.Range.Start.Character != 2 || h.Range.End.Character != 9 {
		t.Errorf("range %+v", h.Range)
	}

	for i, line := range []string{"@Sample", "@Other thing", "@Other-Depth x", "Sample text", ""} {
		if h := HoverLine(cat, line, 0); h != nil {
			t.Errorf("%d - unexpected hover %+v", i+1, h)
		}
	}
}
