package state

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	proto "github.com/tliron/glsp/protocol_3_16"
)

const uri = "file:///tmp/doc.mfd"

func TestStoreValidateReplacesMacros(t *testing.T) {
	store := NewStore()
	store.Open(uri, "`@Lab Tufts\n@Contributor Jane\n")

	doc, err := store.Validate(uri)

	if err != nil {
		t.Fatal(err)
	}

	if _, ok := doc.Macros["Lab"]; !ok || len(doc.Diagnostics) != 0 {
		t.Fatalf("macros %v diagnostics %v", doc.Macros, doc.Diagnostics)
	}

	list := []struct {
		Text        string
		Diagnostics int
		Macros      []string
	}{
		{
			Text:        "`@Lab Tufts\n@Contributor Jane [..]\n",
			Diagnostics: 1,
			Macros:      []string{"Lab"},
		},
		{
			Text:        "`@Site Boston\n@Contributor\n",
			Diagnostics: 1,
			Macros:      []string{"Site"},
		},
		{
			Text:        "`@Site Boston\n`@Site Again\n`@Who `@Nope\n",
			Diagnostics: 2,
			Macros:      []string{"Site", "Who"},
		},
		{
			Text:        "@Contributor Jane\n",
			Diagnostics: 0,
			Macros:      []string{},
		},
	}

	for i, item := range list {
		store.SetText(uri, item.Text)
		doc, err = store.Validate(uri)

		if err != nil {
			t.Fatalf("%d - %v", i+1, err)
		}

		if len(doc.Diagnostics) != item.Diagnostics {
			t.Errorf("%d - diagnostics %v", i+1, doc.Diagnostics)
		}

		if got := doc.Macros.Names(); !slices.Equal(got, item.Macros) {
			t.Errorf("%d - got: %v; expect: %v", i+1, got, item.Macros)
		}
	}
}

func TestStoreChange(t *testing.T) {
	store := NewStore()
	store.Open(uri, "@Paper A\n")

	ok := store.Change(uri, &proto.Range{
		Start: proto.Position{Line: 0, Character: 7},
		End:   proto.Position{Line: 0, Character: 8},
	}, "B")

	if !ok {
		t.Fatal("change failed")
	}

	doc := store.Get(uri)

	if doc.Text != "@Paper B\n" || doc.Line(0) != "@Paper B" || doc.Line(5) != "" {
		t.Errorf("text %q", doc.Text)
	}

	if store.Change("file:///nope", nil, "") {
		t.Error("change of unknown document")
	}

	store.Close(uri)

	if store.Get(uri) != nil || len(store.Uris()) != 0 {
		t.Error("document was not closed")
	}

	if _, err := store.Validate(uri); err == nil {
		t.Error("validate of closed document")
	}
}

func TestStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.mfd")

	if err := os.WriteFile(path, []byte("@Keyword Ocean\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore()
	doc, err := store.Load("file://" + path)

	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Lines) != 1 || doc.Lines[0] != "@Keyword Ocean" {
		t.Errorf("lines %q", doc.Lines)
	}

	if len(doc.Details) != 1 || doc.Details[0].Value != "Ocean" {
		t.Errorf("loaded document was not validated: %+v", doc.Details)
	}

	if _, err = store.Load("file:///not/exist.mfd"); err == nil {
		t.Error("expected error")
	}
}

func TestDocBlocks(t *testing.T) {
	store := NewStore()
	store.Open(uri, strings.Join([]string{
		"# header",
		"@MEDFORD 1.0",
		"@MEDFORD-Version 2.0",
		"",
		"`@Lab Tufts",
		"@Contributor Jane",
		"  at `@Lab",
		"@Contributor-Email jane@example.org",
		"# end",
		"",
	}, "\n"))

	doc, err := store.Validate(uri)

	if err != nil {
		t.Fatal(err)
	}

	blocks := doc.Blocks()
	expect := [][3]any{
		{"MEDFORD", 1, 2},
		{"Contributor", 5, 7},
	}

	if len(blocks) != len(expect) {
		t.Fatalf("blocks %+v", blocks)
	}

	for i, b := range blocks {
		got := [3]any{b.Record.Major, b.Start, b.End}

		if got != expect[i] {
			t.Errorf("%d - got: %v; expect: %v", i+1, got, expect[i])
		}
	}
}
