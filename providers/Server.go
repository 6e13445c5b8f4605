package providers

import (
	"fmt"

	"github.com/mfdls/medford-lsp/tokens"
	"github.com/tliron/glsp"
	serv "github.com/tliron/glsp/server"
)

type Options struct {
	SchemaPath string
	Tcp        bool
	WebSocket  bool
	Host       string
	Port       int
}

// Setup builds the token catalog. The embedded schema is used when path is empty.
func Setup(schemaPath string) (err error) {
	schema := tokens.DefaultSchema()

	if schemaPath != "" {
		schema, err = tokens.LoadSchema(schemaPath)

		if err != nil {
			return
		}
	}

	c, err := tokens.Build(schema)

	if err != nil {
		return
	}

	catalog = c
	log.Infof("token catalog: %d major tokens", len(catalog))

	return
}

func StartServer(opts Options) error {
	err := Setup(opts.SchemaPath)

	if err != nil {
		return err
	}

	server = CreateServer(CreateRequestHandler())
	address := fmt.Sprintf("%s:%d", opts.Host, opts.Port)

	switch {
	case opts.WebSocket:
		return server.RunWebSocket(address)

	case opts.Tcp:
		return server.RunTCP(address)
	}

	return server.RunStdio()
}

func CreateServer(handler glsp.Handler) *serv.Server {
	return serv.NewServer(handler, ServerName, false)
}
