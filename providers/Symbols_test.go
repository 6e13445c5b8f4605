package providers

import (
	"testing"

	"github.com/mfdls/medford-lsp/state"
)

func validatedDoc(t *testing.T, text string) *state.Doc {
	store := state.NewStore()
	store.Open(testUri, text)

	doc, err := store.Validate(testUri)

	if err != nil {
		t.Fatal(err)
	}

	return doc
}

const blocksText = "@MEDFORD 1.0\n@MEDFORD-Version 2.0\n\n@Contributor Jane\n  @Contributor-Email jane@example.org\n@Keyword Ocean\n"

func TestFoldBlocks(t *testing.T) {
	list := FoldBlocks(validatedDoc(t, blocksText))

	expect := [][2]uint32{{0, 1}, {3, 4}}

	if len(list) != len(expect) {
		t.Fatalf("ranges %+v", list)
	}

	for i, r := range list {
		if got := [2]uint32{r.StartLine, r.EndLine}; got != expect[i] {
			t.Errorf("%d - got: %v; expect: %v", i+1, got, expect[i])
		}
	}
}

func TestBlockSymbols(t *testing.T) {
	list := BlockSymbols(validatedDoc(t, blocksText))

	if len(list) != 3 {
		t.Fatalf("symbols %+v", list)
	}

	c := list[1]

	if c.Name != "@Contributor" || *c.Detail != "Jane" || c.Range.End.Line != 4 {
		t.Errorf("symbol %+v", c)
	}

	if c.SelectionRange.Start.Character != 0 || c.SelectionRange.End.Character != 12 {
		t.Errorf("selection %+v", c.SelectionRange)
	}

	if len(c.Children) != 1 {
		t.Fatalf("children %+v", c.Children)
	}

	email := c.Children[0]

	if email.Name != "Email" || *email.Detail != "jane@example.org" {
		t.Errorf("child %+v", email)
	}

	if r := email.SelectionRange; r.Start.Line != 4 || r.Start.Character != 2 || r.End.Character != 20 {
		t.Errorf("child selection %+v", r)
	}

	if len(list[2].Children) != 0 || list[2].Range.End.Line != 5 {
		t.Errorf("keyword %+v", list[2])
	}
}
