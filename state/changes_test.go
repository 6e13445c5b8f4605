package state

import (
	"testing"

	proto "github.com/tliron/glsp/protocol_3_16"
)

func TestChangeText(t *testing.T) {
	list := []struct {
		Start proto.Position
		End   proto.Position
		Text  string
		Test  string
	}{
		{
			Start: proto.Position{Line: 0, Character: 0},
			End:   proto.Position{Line: 0, Character: 4},
			Text:  "Fam",
			Test:  "Fam\n\nName+Name",
		},
		{
			Start: proto.Position{Line: 0, Character: 0},
			End:   proto.Position{Line: 0, Character: 5},
			Text:  "",
			Test:  "\n\nName+Name",
		},
		{
			Start: proto.Position{Line: 0, Character: 2},
			End:   proto.Position{Line: 2, Character: 1},
			Text:  "",
			Test:  "Teame+Name",
		},
		{
			Start: proto.Position{Line: 0, Character: 2},
			End:   proto.Position{Line: 2, Character: 2},
			Text:  "+",
			Test:  "Te+me+Name",
		},
		{
			Start: proto.Position{Line: 0, Character: 0},
			End:   proto.Position{Line: 0, Character: 0},
			Text:  "Fam-",
			Test:  "Fam-Test\n\nName+Name",
		},
		{
			Start: proto.Position{Line: 3, Character: 0},
			End:   proto.Position{Line: 3, Character: 0},
			Text:  "\nName",
			Test:  "Test\n\nName+Name\nName",
		},
		{
			Start: proto.Position{Line: 2, Character: 1},
			End:   proto.Position{Line: 2, Character: 1},
			Text:  "tt",
			Test:  "Test\n\nNttame+Name",
		},
	}

	for i, item := range list {
		text := ChangeText("Test\n\nName+Name", proto.Range{Start: item.Start, End: item.End}, item.Text)

		if text != item.Test {
			t.Errorf("%d - got: %q; expect: %q", i+1, text, item.Test)
		}
	}
}

func TestChangeTextUTF16(t *testing.T) {
	// "😀" is two UTF-16 units
	text := ChangeText("@Keyword 😀x", proto.Range{
		Start: proto.Position{Line: 0, Character: 11},
		End:   proto.Position{Line: 0, Character: 12},
	}, "y")

	if text != "@Keyword 😀y" {
		t.Errorf("got %q", text)
	}
}
