package providers

import (
	"testing"

	. "github.com/mfdls/medford-lsp/types"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

const testUri = "file:///tmp/test.mfd"

type published struct {
	Method string
	Params any
}

func createCtx(list *[]published) *Ctx {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*list = append(*list, published{Method: method, Params: params})
		},
	}
}

func lastDiagnostics(t *testing.T, list []published) []Diagnostic {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Method == proto.ServerTextDocumentPublishDiagnostics {
			return list[i].Params.(proto.PublishDiagnosticsParams).Diagnostics
		}
	}

	t.Fatal("no diagnostics published")

	return nil
}

func TestDocSync(t *testing.T) {
	ResetDocs()
	supportDiagnostics = true
	defer func() { supportDiagnostics = false }()

	notes := make([]published, 0)
	ctx := createCtx(&notes)

	err := DocOpen(ctx, &proto.DidOpenTextDocumentParams{
		TextDocument: proto.TextDocumentItem{
			URI:  testUri,
			Text: "`@Lab Tufts\n@Contributor Jane\n`@Lab Boston\n",
		},
	})

	if err != nil {
		t.Fatal(err)
	}

	list := lastDiagnostics(t, notes)

	if len(list) != 1 || list[0].Code.Value != "duplicated_macro" || list[0].Range.Start.Line != 0 {
		t.Fatalf("open diagnostics %+v", list)
	}

	err = DocChange(ctx, &proto.DidChangeTextDocumentParams{
		ContentChanges: []any{
			proto.TextDocumentContentChangeEvent{
				Range: &proto.Range{
					Start: proto.Position{Line: 2, Character: 2},
					End:   proto.Position{Line: 2, Character: 5},
				},
				Text: "Site",
			},
		},
		TextDocument: proto.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: proto.TextDocumentIdentifier{URI: testUri},
		},
	})

	if err != nil {
		t.Fatal(err)
	}

	debouncer.Flush()

	if list = lastDiagnostics(t, notes); len(list) != 0 {
		t.Errorf("diagnostics after fix %+v", list)
	}

	doc := GetDoc(testUri)

	if _, ok := doc.Macros["Site"]; !ok {
		t.Errorf("macros %v", doc.Macros)
	}

	text := "`@Site Boston\n@Keyword\n"
	err = DocSave(ctx, &proto.DidSaveTextDocumentParams{
		TextDocument: proto.TextDocumentIdentifier{URI: testUri},
		Text:         &text,
	})

	if err != nil {
		t.Fatal(err)
	}

	if list = lastDiagnostics(t, notes); len(list) != 1 || list[0].Code.Value != "no_desc" {
		t.Errorf("save diagnostics %+v", list)
	}

	if got := GetDoc(testUri).Macros.Names(); len(got) != 1 || got[0] != "Site" {
		t.Errorf("macros after save %v", got)
	}

	err = DocChange(ctx, &proto.DidChangeTextDocumentParams{
		ContentChanges: []any{
			proto.TextDocumentContentChangeEventWhole{Text: "@Keyword Ocean\n"},
		},
		TextDocument: proto.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: proto.TextDocumentIdentifier{URI: testUri},
		},
	})

	if err != nil {
		t.Fatal(err)
	}

	err = DocClose(ctx, &proto.DidCloseTextDocumentParams{
		TextDocument: proto.TextDocumentIdentifier{URI: testUri},
	})

	if err != nil {
		t.Fatal(err)
	}

	if list = lastDiagnostics(t, notes); len(list) != 0 || GetDoc(testUri) != nil {
		t.Errorf("close diagnostics %+v", list)
	}

	if debouncer.Pending(testUri) {
		t.Error("closed document is still waiting for diagnostics")
	}
}

func TestCompletionAndHoverRequests(t *testing.T) {
	ResetDocs()

	if _, err := Initialize(nil, &proto.InitializeParams{}); err != nil {
		t.Fatal(err)
	}

	_ = DocOpen(nil, &proto.DidOpenTextDocumentParams{
		TextDocument: proto.TextDocumentItem{
			URI:  testUri,
			Text: "`@Lab Tufts\n@Contributor Jane\n@Contributor-\n@Contributor-Role `@Lab",
		},
	})

	res, err := Completion(nil, &proto.CompletionParams{
		TextDocumentPositionParams: proto.TextDocumentPositionParams{
			TextDocument: proto.TextDocumentIdentifier{URI: testUri},
			Position:     proto.Position{Line: 2, Character: 13},
		},
	})

	if err != nil {
		t.Fatal(err)
	}

	if got := labels(res.(*proto.CompletionList)); len(got) == 0 || got[0] != "Association" {
		t.Errorf("minor completion %v", got)
	}

	res, _ = Completion(nil, &proto.CompletionParams{
		TextDocumentPositionParams: proto.TextDocumentPositionParams{
			TextDocument: proto.TextDocumentIdentifier{URI: testUri},
			Position:     proto.Position{Line: 3, Character: 20},
		},
	})

	if got := labels(res.(*proto.CompletionList)); len(got) != 1 || got[0] != "Lab" {
		t.Errorf("macro completion %v", got)
	}

	h, err := Hover(nil, &proto.HoverParams{
		TextDocumentPositionParams: proto.TextDocumentPositionParams{
			TextDocument: proto.TextDocumentIdentifier{URI: testUri},
			Position:     proto.Position{Line: 1, Character: 3},
		},
	})

	if err != nil || h == nil {
		t.Fatalf("hover %v %v", h, err)
	}

	tokens, err := Tokens(nil, &TokensParams{URI: testUri})

	if err != nil {
		t.Fatal(err)
	}

	if _, ok := tokens.Tokens["MEDFORD"]; !ok || tokens.Macros["Lab"].Text != "Tufts" {
		t.Errorf("tokens %+v", tokens)
	}
}
