package types

import (
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

type Ctx = glsp.Context
type Uri = proto.DocumentUri
type Position = proto.Position
type Range = proto.Range
type Diagnostic = proto.Diagnostic
