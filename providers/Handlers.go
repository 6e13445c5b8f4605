package providers

import (
	. "github.com/mfdls/medford-lsp/types"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func CreateRequestHandler() *RequestHandler {
	return &RequestHandler{
		Handlers: []glsp.Handler{
			NewProtocolHandlers(),
			&TokensHandlers{
				Tokens: Tokens,
			},
			&ConfigurationHandlers{
				Change: ConfigurationChange,
			},
		},
	}
}

func NewProtocolHandlers() *proto.Handler {
	return &proto.Handler{
		Initialize:             Initialize,
		Initialized:            Initialized,
		Shutdown:               Shutdown,
		SetTrace:               SetTrace,
		CancelRequest:          CancelRequest,
		TextDocumentDidOpen:    DocOpen,
		TextDocumentDidChange:  DocChange,
		TextDocumentDidSave:    DocSave,
		TextDocumentDidClose:   DocClose,
		TextDocumentCompletion: Completion,
		TextDocumentHover:      Hover,

		TextDocumentFoldingRange:   FoldingRange,
		TextDocumentDocumentSymbol: DocSymbols,
	}
}

type RequestHandler struct {
	Handlers []glsp.Handler
}

func (req *RequestHandler) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	for _, h := range req.Handlers {
		res, validMethod, validParams, err = h.Handle(ctx)

		if validMethod {
			return
		}
	}

	log.Debugf("unhandled method %s", ctx.Method)

	return
}
