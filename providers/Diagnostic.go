package providers

import (
	"errors"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/mfdls/medford-lsp/i18n"
	. "github.com/mfdls/medford-lsp/types"
	"github.com/mfdls/medford-lsp/validation"
	proto "github.com/tliron/glsp/protocol_3_16"
)

const defaultDebounce = 200 * time.Millisecond

// DocDebouncer collects changed documents and validates them once edits
// stop for a while.
type DocDebouncer struct {
	Docs     map[Uri]*Ctx
	Debounce func(func())

	lock sync.Mutex
}

// PublishDiagnostics re-validates the document from scratch and publishes
// the complete diagnostics list, replacing the previous one.
func PublishDiagnostics(ctx *Ctx, uri Uri) {
	doc, err := docs.Validate(uri)

	if err != nil {
		log.Errorf("Diagnostic %s: %s", uri, err.Error())

		if errors.Is(err, validation.ErrInternal) {
			showWarning(ctx, i18n.L("parse_failed"))
		}
	}

	if doc == nil {
		return
	}

	notifyDiagnostics(ctx, uri, doc.Diagnostics)
}

func notifyDiagnostics(ctx *Ctx, uri Uri, list []Diagnostic) {
	if !supportDiagnostics || ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(proto.ServerTextDocumentPublishDiagnostics, proto.PublishDiagnosticsParams{
		URI: uri,
		// TODO add version once documents track the client's version
		Diagnostics: list,
	})
}

func showWarning(ctx *Ctx, message string) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(proto.ServerWindowShowMessage, proto.ShowMessageParams{
		Type:    proto.MessageTypeWarning,
		Message: message,
	})
}

func diagnosticAllDocs(ctx *Ctx) {
	for _, uri := range docs.Uris() {
		PublishDiagnostics(ctx, uri)
	}
}

func createDocDebouncer(delay time.Duration) *DocDebouncer {
	return &DocDebouncer{
		Docs:     make(map[Uri]*Ctx),
		Debounce: debounce.New(delay),
	}
}

func (dd *DocDebouncer) SetDelay(delay time.Duration) {
	dd.lock.Lock()
	defer dd.lock.Unlock()

	dd.Debounce = debounce.New(delay)
}

func (dd *DocDebouncer) Set(uri Uri, ctx *Ctx) {
	dd.lock.Lock()
	defer dd.lock.Unlock()

	dd.Docs[uri] = ctx
	dd.Debounce(func() {
		dd.Flush()
	})
}

// Remove drops a pending document, e.g. one that was closed.
func (dd *DocDebouncer) Remove(uri Uri) {
	dd.lock.Lock()
	defer dd.lock.Unlock()

	delete(dd.Docs, uri)
}

func (dd *DocDebouncer) Pending(uri Uri) bool {
	dd.lock.Lock()
	defer dd.lock.Unlock()

	_, ok := dd.Docs[uri]

	return ok
}

func (dd *DocDebouncer) Flush() {
	dd.lock.Lock()
	pending := dd.Docs
	dd.Docs = make(map[Uri]*Ctx)
	dd.lock.Unlock()

	for uri, ctx := range pending {
		PublishDiagnostics(ctx, uri)
	}
}
