package providers

import (
	. "github.com/mfdls/medford-lsp/types"
	proto "github.com/tliron/glsp/protocol_3_16"
)

var version = "0.1.0"

func Initialize(ctx *Ctx, params *proto.InitializeParams) (any, error) {
	if catalog == nil {
		err := Setup("")

		if err != nil {
			return nil, err
		}
	}

	options, err := GetClientConfiguration(params.InitializationOptions)

	if err == nil {
		err = applyConfiguration(&options)
	}

	if err != nil {
		log.Warningf("initializationOptions: %s", err.Error())
	}

	syncType := proto.TextDocumentSyncKindIncremental

	res := &proto.InitializeResult{
		ServerInfo: &proto.InitializeResultServerInfo{
			Name:    ServerName,
			Version: &version,
		},
		Capabilities: proto.ServerCapabilities{
			TextDocumentSync: proto.TextDocumentSyncOptions{
				OpenClose: &proto.True,
				Change:    &syncType,
				Save: proto.SaveOptions{
					IncludeText: &proto.True,
				},
			},
			CompletionProvider: &proto.CompletionOptions{
				TriggerCharacters: CompletionTriggers,
			},
			HoverProvider:          true,
			FoldingRangeProvider:   true,
			DocumentSymbolProvider: true,
		},
	}

	supportDiagnostics = params.Capabilities.TextDocument != nil && params.Capabilities.TextDocument.PublishDiagnostics != nil

	log.Debugf("initialize: diagnostics %t, locale %s", supportDiagnostics, options.Locale)

	return res, nil
}

func Initialized(ctx *Ctx, params *proto.InitializedParams) error {
	diagnosticAllDocs(ctx)

	return nil
}

func Shutdown(ctx *Ctx) error {
	debouncer.Flush()

	return nil
}

func SetTrace(ctx *Ctx, params *proto.SetTraceParams) error {
	log.Debugf("SetTrace: %v", params.Value)

	return nil
}

func CancelRequest(ctx *Ctx, params *proto.CancelParams) error {
	return nil
}
