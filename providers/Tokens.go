package providers

import (
	"encoding/json"

	"github.com/mfdls/medford-lsp/parser"
	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
)

// Tokens returns the token catalog and, when a document is given, the
// macros defined in it.
func Tokens(_ *Ctx, params *TokensParams) (*TokensResult, error) {
	res := &TokensResult{
		Tokens: make(map[string][]string, len(catalog)),
		Macros: parser.MacroTable{},
	}

	for major, minors := range catalog {
		res.Tokens[major] = minors
	}

	if params.URI == "" {
		return res, nil
	}

	uri, err := NormalizeUri(params.URI)

	if err != nil {
		return nil, err
	}

	if doc := docs.Get(uri); doc != nil {
		res.Macros = doc.Macros
	}

	return res, nil
}

type TokensHandlers struct {
	Tokens TokensFunc
}

func (req *TokensHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case TokensMethod:
		validMethod = true

		var params TokensParams
		if len(ctx.Params) == 0 {
			validParams = true
			res, err = req.Tokens(ctx, &params)
		} else if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Tokens(ctx, &params)
		}
	}

	return
}

const TokensMethod = "medford/tokens"

type TokensParams struct {
	URI Uri `json:"uri,omitempty"`
}

type TokensResult struct {
	Tokens map[string][]string `json:"tokens"`
	Macros parser.MacroTable   `json:"macros"`
}

type TokensFunc func(*Ctx, *TokensParams) (*TokensResult, error)
