package providers

import (
	"github.com/mfdls/medford-lsp/state"
	. "github.com/mfdls/medford-lsp/types"
)

// GetDoc returns a snapshot of an open document or nil.
func GetDoc(uri Uri) *state.Doc {
	return docs.Get(uri)
}

// ResetDocs drops every open document.
func ResetDocs() {
	docs = state.NewStore()
}
