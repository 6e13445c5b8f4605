package providers

import (
	"github.com/mfdls/medford-lsp/state"
	"github.com/mfdls/medford-lsp/tokens"
	"github.com/tliron/commonlog"
	serv "github.com/tliron/glsp/server"
)

const ServerName = "medford"

var (
	server    *serv.Server
	docs      = state.NewStore()
	catalog   tokens.Catalog
	debouncer = createDocDebouncer(defaultDebounce)
)

var log = commonlog.GetLogger("mfdls.providers")

var supportDiagnostics = false
