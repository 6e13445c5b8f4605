package tokens

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed schema.toml
var defaultSchema string

var ErrSchema = errors.New("invalid token schema")

const DefinitionsPath = "#/definitions/"

// Schema describes the MEDFORD entity: each top level property is a major
// token and refers to a definition whose properties are its minor tokens.
type Schema struct {
	Properties  map[string]Property   `toml:"properties" json:"properties"`
	Definitions map[string]Definition `toml:"definitions" json:"definitions"`
}

type Property struct {
	Title string `toml:"title" json:"title,omitempty"`
	Ref   string `toml:"ref" json:"ref,omitempty"`
}

type Definition struct {
	Properties map[string]Property `toml:"properties" json:"properties"`
}

func ParseSchema(text string) (*Schema, error) {
	schema := &Schema{}

	_, err := toml.Decode(text, schema)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return schema, nil
}

func LoadSchema(path string) (*Schema, error) {
	bytes, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return ParseSchema(string(bytes))
}

func DefaultSchema() *Schema {
	schema, err := ParseSchema(defaultSchema)

	if err != nil {
		panic(err)
	}

	return schema
}

// Resolve returns the name and definition a property refers to.
func (schema *Schema) Resolve(prop Property) (name string, def Definition, err error) {
	if !strings.HasPrefix(prop.Ref, DefinitionsPath) {
		err = fmt.Errorf("%w: property %q has no definition reference", ErrSchema, prop.Title)
		return
	}

	name = strings.TrimPrefix(prop.Ref, DefinitionsPath)
	def, ok := schema.Definitions[name]

	if !ok {
		err = fmt.Errorf("%w: unknown definition %q", ErrSchema, name)
	}

	return
}
