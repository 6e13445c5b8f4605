package providers

import (
	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func DocOpen(ctx *Ctx, params *proto.DidOpenTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	docs.Open(uri, params.TextDocument.Text)

	PublishDiagnostics(ctx, uri)

	return
}

func DocClose(ctx *Ctx, params *proto.DidCloseTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	debouncer.Remove(uri)
	docs.Close(uri)

	notifyDiagnostics(ctx, uri, []Diagnostic{})

	return
}

func DocChange(ctx *Ctx, params *proto.DidChangeTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	changed := false

	for _, wrap := range params.ContentChanges {
		switch change := wrap.(type) {
		case proto.TextDocumentContentChangeEventWhole:
			changed = docs.Change(uri, nil, change.Text) || changed

		case proto.TextDocumentContentChangeEvent:
			changed = docs.Change(uri, change.Range, change.Text) || changed
		}
	}

	if changed {
		debouncer.Set(uri, ctx)
	}

	return
}

func DocSave(ctx *Ctx, params *proto.DidSaveTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	if params.Text != nil {
		docs.SetText(uri, *params.Text)
	} else if _, err = docs.Load(uri); err != nil {
		return
	}

	PublishDiagnostics(ctx, uri)

	return
}
